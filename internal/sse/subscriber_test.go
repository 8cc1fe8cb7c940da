package sse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/wheelbet/internal/domain"
	"github.com/osse101/wheelbet/internal/event"
)

func TestSubscriber_ForwardsSessionEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register(nil)
	waitForClients(t, hub, 1)

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus, "MGA").Subscribe()
	ctx := context.Background()

	outcome := domain.Outcome{
		Segment:    domain.Segment{Label: 5, Multiplier: 5, Color: "#9b59b6"},
		Bet:        1000,
		Gain:       5000,
		Delta:      4000,
		NewBalance: 14000,
	}
	require.NoError(t, bus.Publish(ctx, event.NewSpinFrameEvent("s1", domain.SpinState{AngleOffset: 12, Active: true})))
	require.NoError(t, bus.Publish(ctx, event.NewSpinCompletedEvent("s1", outcome, "Won 5000 MGA | Result: 5")))
	require.NoError(t, bus.Publish(ctx, event.NewSessionEndedEvent(domain.SessionState{
		ID: "s1", Balance: 14000, Ended: true, Reason: domain.EndReasonManualClose, Rounds: 1,
	})))

	frame := receive(t, client)
	assert.Equal(t, EventTypeSpinFrame, frame.Type)
	assert.IsType(t, domain.SpinFramePayload{}, frame.Payload)

	completed := receive(t, client)
	require.Equal(t, EventTypeSpinCompleted, completed.Type)
	view, ok := completed.Payload.(SpinCompletedPayload)
	require.True(t, ok)
	assert.Equal(t, "14,000 MGA", view.BalanceText)
	assert.Equal(t, "4,000 MGA", view.DeltaText)
	assert.Equal(t, 5, view.Label)

	ended := receive(t, client)
	require.Equal(t, EventTypeSessionEnded, ended.Type)
	endView, ok := ended.Payload.(SessionEndedPayload)
	require.True(t, ok)
	assert.Equal(t, "Manual Close", endView.ReasonText)
}
