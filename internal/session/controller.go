package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/wheelbet/internal/domain"
	"github.com/osse101/wheelbet/internal/event"
	"github.com/osse101/wheelbet/internal/history"
	"github.com/osse101/wheelbet/internal/logger"
	"github.com/osse101/wheelbet/internal/payout"
	"github.com/osse101/wheelbet/internal/scheduler"
	"github.com/osse101/wheelbet/internal/spin"
	"github.com/osse101/wheelbet/internal/wheel"
)

// Options configures a Controller
type Options struct {
	SessionID    string
	Balance      int64
	Currency     string
	TickInterval time.Duration
	Layout       *wheel.Layout // nil means wheel.Default()
	Engine       *spin.Engine  // nil means spin.NewEngine()
}

// Controller owns the session state and sequences a round:
// validate bet -> spin -> resolve -> settle -> report.
//
// A Controller is not safe for concurrent use. Every method, and every
// callback it hands to the scheduler, must run on the same actor.
type Controller struct {
	state        domain.SessionState
	bet          domain.Bet
	currency     string
	tickInterval time.Duration

	layout  *wheel.Layout
	engine  *spin.Engine
	sched   scheduler.Scheduler
	display Display
	history History
	bus     event.Bus

	done chan struct{}
}

// New creates a controller for a freshly opened session. history must
// already be open; the controller closes it when the session ends.
func New(opts Options, display Display, hist History, sched scheduler.Scheduler, bus event.Bus) *Controller {
	if opts.Layout == nil {
		opts.Layout = wheel.Default()
	}
	if opts.Engine == nil {
		opts.Engine = spin.NewEngine()
	}
	if opts.SessionID == "" {
		opts.SessionID = logger.GenerateSessionID()
	}

	return &Controller{
		state: domain.SessionState{
			ID:      opts.SessionID,
			Balance: opts.Balance,
		},
		currency:     opts.Currency,
		tickInterval: opts.TickInterval,
		layout:       opts.Layout,
		engine:       opts.Engine,
		sched:        sched,
		display:      display,
		history:      hist,
		bus:          bus,
		done:         make(chan struct{}),
	}
}

// Begin paints the resting wheel and the opening balance
func (c *Controller) Begin(ctx context.Context) {
	c.display.ShowWheel(c.engine.State())
	c.display.ShowBalance(c.state.Balance)
}

// PlaceBet validates raw input and launches a spin.
// Invalid input is shown to the player and returned wrapped in
// domain.ErrValidation with no state change. A bet while the wheel is
// turning is ignored.
func (c *Controller) PlaceBet(ctx context.Context, raw string) error {
	log := logger.FromContext(ctx)

	if c.state.Ended {
		return domain.ErrSessionEnded
	}
	if c.state.Spinning {
		log.Debug(LogMsgBetIgnored)
		return nil
	}

	bet, err := ParseBet(raw, c.state.Balance, c.layout.MaxMultiplier())
	if err != nil {
		log.Info(LogMsgBetRejected, "input", raw, "error", err)
		c.display.ShowError(PlayerMessage(err))
		return err
	}

	if err := c.engine.Start(bet); err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			log.Debug(LogMsgBetIgnored)
			return nil
		}
		return fmt.Errorf("failed to start spin: %w", err)
	}

	c.bet = bet
	c.state.Spinning = true

	total := c.engine.State().TotalTicks
	log.Info(LogMsgSpinStarted, "bet", bet.Amount, "balance", c.state.Balance, "total_ticks", total)
	c.publish(ctx, event.NewSpinStartedEvent(c.state.ID, bet, total))

	c.scheduleTick(ctx)
	return nil
}

// Close ends the session at the player's request. Calling it again, or
// after game over, is a no-op.
func (c *Controller) Close(ctx context.Context) error {
	if c.state.Ended {
		logger.FromContext(ctx).Debug(LogMsgSessionCloseNoop)
		return nil
	}
	return c.end(ctx, domain.EndReasonManualClose)
}

// State returns a snapshot of the session
func (c *Controller) State() domain.SessionState {
	return c.state
}

// Spin returns a snapshot of the wheel rotation
func (c *Controller) Spin() domain.SpinState {
	return c.engine.State()
}

// Layout returns the wheel being played
func (c *Controller) Layout() *wheel.Layout {
	return c.layout
}

// Done is closed once the session has ended
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

func (c *Controller) scheduleTick(ctx context.Context) {
	c.sched.Schedule(c.tickInterval, func() { c.tick(ctx) })
}

func (c *Controller) tick(ctx context.Context) {
	if c.state.Ended {
		return
	}

	stopped, err := c.engine.Tick()
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgTickFailed, "error", err)
		return
	}

	frame := c.engine.State()
	c.display.ShowWheel(frame)
	c.publish(ctx, event.NewSpinFrameEvent(c.state.ID, frame))

	if !stopped {
		c.scheduleTick(ctx)
		return
	}
	c.complete(ctx)
}

func (c *Controller) complete(ctx context.Context) {
	log := logger.FromContext(ctx)

	segment := wheel.Resolve(c.engine.Offset(), c.layout)
	outcome := payout.Settle(c.bet, segment, c.state.Balance)

	c.state.Balance = outcome.NewBalance
	c.state.Spinning = false
	c.state.Rounds++
	c.bet = domain.Bet{}

	c.display.ShowResult(outcome)
	c.display.ShowBalance(c.state.Balance)

	if err := c.history.Record(outcome); err != nil {
		log.Error(LogMsgHistoryFailed, "error", err)
	}

	summary := history.FormatOutcome(outcome, c.currency)
	log.Info(LogMsgSpinCompleted, "label", segment.Label, "delta", outcome.Delta, "balance", outcome.NewBalance)
	c.publish(ctx, event.NewSpinCompletedEvent(c.state.ID, outcome, summary))

	if c.state.Balance <= 0 {
		c.display.ShowNotice(NoticeGameOver)
		if err := c.end(ctx, domain.EndReasonGameOver); err != nil {
			log.Error(LogMsgHistoryFailed, "error", err)
		}
	}
}

func (c *Controller) end(ctx context.Context, reason domain.EndReason) error {
	log := logger.FromContext(ctx)

	c.state.Ended = true
	c.state.Spinning = false
	c.state.Reason = reason

	herr := c.history.Close(ctx, reason)
	if err := c.display.Close(); err != nil {
		log.Warn(LogMsgDisplayClose, "error", err)
	}

	log.Info(LogMsgSessionEnded, "reason", reason, "balance", c.state.Balance, "rounds", c.state.Rounds)
	c.publish(ctx, event.NewSessionEndedEvent(c.state))
	close(c.done)

	return herr
}

func (c *Controller) publish(ctx context.Context, evt event.Event) {
	if c.bus == nil {
		return
	}
	if err := c.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
