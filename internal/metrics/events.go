package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/wheelbet/internal/domain"
	"github.com/osse101/wheelbet/internal/event"
	"github.com/osse101/wheelbet/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all session events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case domain.SpinStartedPayload:
		SpinsStarted.Inc()
		SpinTicks.Observe(float64(payload.TotalTicks))
		AmountWagered.Add(float64(payload.BetAmount))

	case domain.SpinFramePayload:
		// Frames only count toward events published

	case domain.SpinCompletedPayload:
		result := ResultLoss
		if payload.IsWin {
			result = ResultWin
			AmountPaidOut.Add(float64(payload.Gain))
		}
		SpinsCompleted.WithLabelValues(strconv.Itoa(payload.Label), result).Inc()
		Balance.Set(float64(payload.NewBalance))

	case domain.SessionEndedPayload:
		SessionsEnded.WithLabelValues(string(payload.Reason)).Inc()
		SessionRounds.Set(float64(payload.Rounds))
		Balance.Set(float64(payload.FinalBalance))

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	if evt.Type != event.SpinFrame {
		log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	}
	return nil
}
