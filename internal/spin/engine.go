package spin

import (
	"fmt"
	"math"

	"github.com/osse101/wheelbet/internal/domain"
	"github.com/osse101/wheelbet/internal/utils"
)

// Engine is the wheel animation state machine: Idle -> Spinning -> Idle.
// It is not safe for concurrent use; the session loop is its only caller.
type Engine struct {
	state domain.SpinState
	rng   func(min, max int) int // Injectable for testing
}

// Option configures an Engine
type Option func(*Engine)

// WithRNG replaces the tick-count sampler
func WithRNG(rng func(min, max int) int) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithOffset sets the resting angle the wheel starts from
func WithOffset(offset float64) Option {
	return func(e *Engine) {
		e.state.AngleOffset = utils.NormalizeAngle(offset)
	}
}

// NewEngine creates an idle engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{rng: sampleTicks}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// sampleTicks draws from crypto/rand, falling back to math/rand if the
// system source fails.
func sampleTicks(min, max int) int {
	n, err := utils.SecureRandomInt(min, max)
	if err != nil {
		return utils.RandomInt(min, max)
	}
	return n
}

// Start launches a spin for bet.
func (e *Engine) Start(bet domain.Bet) error {
	if e.state.Active {
		return domain.ErrInvalidState
	}
	if bet.Amount <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgNonPositiveBet)
	}

	total := e.rng(MinTicks, MaxTicks)
	if total < MinTicks || total > MaxTicks {
		return fmt.Errorf("tick sampler returned %d outside [%d,%d]", total, MinTicks, MaxTicks)
	}

	e.state.AngularSpeed = InitialSpeed
	e.state.TotalTicks = total
	e.state.ElapsedTicks = 0
	e.state.Active = true
	return nil
}

// Tick advances the animation by one step and reports whether the wheel stopped.
func (e *Engine) Tick() (bool, error) {
	if !e.state.Active {
		return false, fmt.Errorf("%w: %s", domain.ErrInvalidState, domain.ErrMsgNotSpinning)
	}

	e.state.AngleOffset = utils.NormalizeAngle(e.state.AngleOffset + e.state.AngularSpeed)
	e.state.AngularSpeed = math.Max(MinSpeed, e.state.AngularSpeed-SpeedDecay)
	e.state.ElapsedTicks++

	if e.state.ElapsedTicks < e.state.TotalTicks {
		return false, nil
	}

	// Stopped: keep the resting offset, drop the rest of the spin
	e.state = domain.SpinState{AngleOffset: e.state.AngleOffset}
	return true, nil
}

// State returns a snapshot of the rotation state
func (e *Engine) State() domain.SpinState {
	return e.state
}

// Active reports whether a spin is in progress
func (e *Engine) Active() bool {
	return e.state.Active
}

// Offset returns the current angle offset in degrees
func (e *Engine) Offset() float64 {
	return e.state.AngleOffset
}
