package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/wheelbet/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	SpinStarted   Type = domain.EventTypeSpinStarted
	SpinFrame     Type = domain.EventTypeSpinFrame
	SpinCompleted Type = domain.EventTypeSpinCompleted
	SessionEnded  Type = domain.EventTypeSessionEnded
)

// AllTypes lists every event type the session publishes
var AllTypes = []Type{SpinStarted, SpinFrame, SpinCompleted, SessionEnded}

// Type-safe event constructors

// NewSpinStartedEvent creates a new spin started event
func NewSpinStartedEvent(sessionID string, bet domain.Bet, totalTicks int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinStarted,
		Payload: domain.SpinStartedPayload{
			SessionID:  sessionID,
			BetAmount:  bet.Amount,
			TotalTicks: totalTicks,
			Balance:    bet.Balance,
		},
	}
}

// NewSpinFrameEvent creates a new spin frame event
func NewSpinFrameEvent(sessionID string, state domain.SpinState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinFrame,
		Payload: domain.SpinFramePayload{
			SessionID:    sessionID,
			AngleOffset:  state.AngleOffset,
			AngularSpeed: state.AngularSpeed,
			ElapsedTicks: state.ElapsedTicks,
			TotalTicks:   state.TotalTicks,
		},
	}
}

// NewSpinCompletedEvent creates a new spin completed event
func NewSpinCompletedEvent(sessionID string, outcome domain.Outcome, summary string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinCompleted,
		Payload: domain.SpinCompletedPayload{
			SessionID:  sessionID,
			Label:      outcome.Segment.Label,
			Color:      outcome.Segment.Color,
			BetAmount:  outcome.Bet,
			Gain:       outcome.Gain,
			Delta:      outcome.Delta,
			NewBalance: outcome.NewBalance,
			IsWin:      outcome.IsWin(),
			Summary:    summary,
		},
	}
}

// NewSessionEndedEvent creates a new session ended event
func NewSessionEndedEvent(state domain.SessionState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SessionEnded,
		Payload: domain.SessionEndedPayload{
			SessionID:    state.ID,
			Reason:       state.Reason,
			FinalBalance: state.Balance,
			Rounds:       state.Rounds,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the publishing goroutine.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
