package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/wheelbet/internal/scheduler"
	"github.com/osse101/wheelbet/internal/testing/leaktest"
)

func TestReader_SnapshotThroughLoop(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		f := newFixture(t, 10000, singleLabel(t, 5))
		require.NoError(t, f.c.PlaceBet(context.Background(), "1000"))
		f.sched.Step()

		loop := scheduler.NewLoop()
		ctx, cancel := context.WithCancel(context.Background())
		go loop.Run(ctx)
		defer func() {
			cancel()
			<-loop.Done()
		}()

		snap, err := NewReader(loop, f.c).Snapshot(ctx)
		require.NoError(t, err)

		assert.True(t, snap.State.Spinning)
		assert.Equal(t, int64(10000), snap.State.Balance)
		assert.Equal(t, 1, snap.Spin.ElapsedTicks)
		assert.Equal(t, 5, snap.Pointer.Label)
	})
}
