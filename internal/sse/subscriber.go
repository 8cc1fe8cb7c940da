package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/wheelbet/internal/domain"
	"github.com/osse101/wheelbet/internal/event"
	"github.com/osse101/wheelbet/internal/utils"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub      *Hub
	bus      event.Bus
	currency string
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus, currency string) *Subscriber {
	return &Subscriber{
		hub:      hub,
		bus:      bus,
		currency: currency,
	}
}

// Subscribe registers handlers for every session event type
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(event.AllTypes))
	for _, t := range event.AllTypes {
		s.bus.Subscribe(t, s.handle)
		types = append(types, string(t))
	}
	slog.Info(LogMsgSubscriberReady, "types", types)
}

func (s *Subscriber) handle(ctx context.Context, evt event.Event) error {
	var payload interface{}

	switch p := evt.Payload.(type) {
	case domain.SpinStartedPayload, domain.SpinFramePayload:
		payload = p

	case domain.SpinCompletedPayload:
		payload = SpinCompletedPayload{
			SpinCompletedPayload: p,
			BalanceText:          utils.FormatAmount(p.NewBalance, s.currency),
			DeltaText:            utils.FormatAmount(p.Delta, s.currency),
		}

	case domain.SessionEndedPayload:
		payload = SessionEndedPayload{
			SessionEndedPayload: p,
			ReasonText:          utils.Title(string(p.Reason)),
			BalanceText:         utils.FormatAmount(p.FinalBalance, s.currency),
		}

	default:
		slog.Warn(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	if !s.hub.Broadcast(string(evt.Type), payload) {
		slog.Debug(LogMsgEventDropped, "type", evt.Type)
	}
	return nil
}
