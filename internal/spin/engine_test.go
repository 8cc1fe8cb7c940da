package spin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/wheelbet/internal/domain"
)

func fixedTicks(n int) func(int, int) int {
	return func(min, max int) int { return n }
}

func runToStop(t *testing.T, e *Engine) (ticks int, speeds []float64) {
	t.Helper()
	for i := 0; i < MaxTicks+1; i++ {
		speeds = append(speeds, e.State().AngularSpeed)
		done, err := e.Tick()
		require.NoError(t, err)
		ticks++
		if done {
			return ticks, speeds
		}
	}
	t.Fatalf("engine did not stop within %d ticks", MaxTicks+1)
	return 0, nil
}

func TestStart_InitialState(t *testing.T) {
	e := NewEngine(WithRNG(fixedTicks(75)))

	require.NoError(t, e.Start(domain.Bet{Amount: 100}))

	s := e.State()
	assert.True(t, s.Active)
	assert.True(t, e.Active())
	assert.Equal(t, InitialSpeed, s.AngularSpeed)
	assert.Equal(t, 75, s.TotalTicks)
	assert.Equal(t, 0, s.ElapsedTicks)
}

func TestStart_WhileSpinning(t *testing.T) {
	e := NewEngine(WithRNG(fixedTicks(60)))
	require.NoError(t, e.Start(domain.Bet{Amount: 100}))
	_, err := e.Tick()
	require.NoError(t, err)
	before := e.State()

	err = e.Start(domain.Bet{Amount: 100})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, before, e.State(), "rejected start must not touch state")
}

func TestStart_NonPositiveBet(t *testing.T) {
	e := NewEngine()
	assert.ErrorIs(t, e.Start(domain.Bet{Amount: 0}), domain.ErrValidation)
	assert.False(t, e.Active())
}

func TestStart_RejectsOutOfRangeSampler(t *testing.T) {
	e := NewEngine(WithRNG(fixedTicks(MaxTicks + 1)))
	assert.Error(t, e.Start(domain.Bet{Amount: 1}))
	assert.False(t, e.Active())
}

func TestTick_WhileIdle(t *testing.T) {
	e := NewEngine()
	done, err := e.Tick()
	assert.False(t, done)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestTick_FirstStep(t *testing.T) {
	e := NewEngine(WithRNG(fixedTicks(60)), WithOffset(350))
	require.NoError(t, e.Start(domain.Bet{Amount: 1}))

	done, err := e.Tick()
	require.NoError(t, err)
	assert.False(t, done)

	s := e.State()
	assert.InDelta(t, 20.0, s.AngleOffset, 1e-9, "offset wraps past 360")
	assert.InDelta(t, InitialSpeed-SpeedDecay, s.AngularSpeed, 1e-9)
	assert.Equal(t, 1, s.ElapsedTicks)
}

func TestTick_TerminatesAtSampledCount(t *testing.T) {
	for total := MinTicks; total <= MaxTicks; total++ {
		e := NewEngine(WithRNG(fixedTicks(total)))
		require.NoError(t, e.Start(domain.Bet{Amount: 1}))

		ticks, _ := runToStop(t, e)

		assert.Equal(t, total, ticks)
		assert.False(t, e.Active())
		assert.Equal(t, 0, e.State().ElapsedTicks)
	}
}

func TestTick_DefaultSamplerRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		e := NewEngine()
		require.NoError(t, e.Start(domain.Bet{Amount: 1}))
		total := e.State().TotalTicks
		assert.GreaterOrEqual(t, total, MinTicks)
		assert.LessOrEqual(t, total, MaxTicks)

		ticks, _ := runToStop(t, e)
		assert.Equal(t, total, ticks)
	}
}

func TestSampleTicks(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := sampleTicks(MinTicks, MaxTicks)
		require.GreaterOrEqual(t, n, MinTicks)
		require.LessOrEqual(t, n, MaxTicks)
		seen[n] = true
	}
	assert.Greater(t, len(seen), 1, "sampler should vary")

	assert.Equal(t, 7, sampleTicks(7, 7))
	assert.Equal(t, 5, sampleTicks(5, 1), "a failing secure draw falls back to math/rand")
}

func TestTick_SpeedNonIncreasingWithFloor(t *testing.T) {
	e := NewEngine(WithRNG(fixedTicks(MaxTicks)))
	require.NoError(t, e.Start(domain.Bet{Amount: 1}))

	_, speeds := runToStop(t, e)

	for i := 1; i < len(speeds); i++ {
		assert.LessOrEqual(t, speeds[i], speeds[i-1], "tick %d", i)
		assert.GreaterOrEqual(t, speeds[i], MinSpeed, "tick %d", i)
	}
	// 30 - 0.4*n hits the floor well before 100 ticks
	assert.Equal(t, MinSpeed, speeds[len(speeds)-1])
}

func TestTick_OffsetStaysInRangeAndPersists(t *testing.T) {
	e := NewEngine(WithRNG(fixedTicks(80)))

	for spin := 0; spin < 3; spin++ {
		require.NoError(t, e.Start(domain.Bet{Amount: 1}))
		for {
			done, err := e.Tick()
			require.NoError(t, err)
			off := e.Offset()
			assert.GreaterOrEqual(t, off, 0.0)
			assert.Less(t, off, 360.0)
			if done {
				break
			}
		}
		rest := e.Offset()
		require.NoError(t, e.Start(domain.Bet{Amount: 1}))
		assert.Equal(t, rest, e.Offset(), "new spin starts from the resting offset")
		for {
			done, err := e.Tick()
			require.NoError(t, err)
			if done {
				break
			}
		}
	}
}
