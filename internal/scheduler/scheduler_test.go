package scheduler

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/wheelbet/internal/logger"
	"github.com/osse101/wheelbet/internal/testing/leaktest"
)

// lockedBuffer lets the loop goroutine and the test share a log sink
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func captureDebugLogs(t *testing.T) *lockedBuffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	out := &lockedBuffer{}
	logger.InitLoggerWithWriter(logger.NewConfig("debug", "text", "test", "dev", "test", false), out)
	return out
}

func startLoop(t *testing.T) (*Loop, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop()
	go l.Run(ctx)
	return l, cancel
}

func TestLoop_RunsPostedFunctionsInOrder(t *testing.T) {
	l, cancel := startLoop(t)
	defer cancel()

	var got []int
	for i := 0; i < 10; i++ {
		i := i
		require.NoError(t, l.Post(func() { got = append(got, i) }))
	}
	require.NoError(t, l.Call(context.Background(), func() {}))

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestLoop_ScheduleRunsOnLoop(t *testing.T) {
	l, cancel := startLoop(t)
	defer cancel()

	fired := make(chan struct{})
	var count int32
	l.Schedule(5*time.Millisecond, func() {
		atomic.AddInt32(&count, 1)
		close(fired)
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for scheduled callback")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&count))
	assert.Eventually(t, func() bool { return l.Pending() == 0 }, time.Second, 5*time.Millisecond)
}

func TestLoop_SelfReschedulingChain(t *testing.T) {
	l, cancel := startLoop(t)
	defer cancel()

	done := make(chan int)
	ticks := 0
	var step func()
	step = func() {
		ticks++
		if ticks == 5 {
			done <- ticks
			return
		}
		l.Schedule(time.Millisecond, step)
	}
	require.NoError(t, l.Post(step))

	select {
	case n := <-done:
		assert.Equal(t, 5, n)
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for tick chain")
	}
}

func TestLoop_StopCancelsTimersAndRejectsWork(t *testing.T) {
	l, cancel := startLoop(t)
	defer cancel()

	var fired int32
	l.Schedule(50*time.Millisecond, func() { atomic.StoreInt32(&fired, 1) })
	assert.Equal(t, 1, l.Pending())

	l.Stop()
	l.Stop()
	<-l.Done()

	assert.Equal(t, 0, l.Pending())
	assert.ErrorIs(t, l.Post(func() {}), ErrStopped)
	assert.ErrorIs(t, l.Call(context.Background(), func() {}), ErrStopped)

	l.Schedule(time.Millisecond, func() { atomic.StoreInt32(&fired, 1) })
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestLoop_StopLogsDroppedTimers(t *testing.T) {
	logs := captureDebugLogs(t)
	l, cancel := startLoop(t)
	defer cancel()

	l.Schedule(time.Minute, func() {})
	l.Schedule(time.Minute, func() {})
	require.Equal(t, 2, l.Pending())

	l.Stop()
	<-l.Done()

	assert.Contains(t, logs.String(), LogMsgTimersDropped)
	assert.Contains(t, logs.String(), "count=2")
}

func TestLoop_StopWithoutTimersLogsNothingDropped(t *testing.T) {
	logs := captureDebugLogs(t)
	l, cancel := startLoop(t)
	defer cancel()

	l.Stop()
	<-l.Done()

	assert.NotContains(t, logs.String(), LogMsgTimersDropped)
}

func TestLoop_ContextCancelStops(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		l, cancel := startLoop(t)
		l.Schedule(time.Hour, func() {})
		cancel()

		select {
		case <-l.Done():
		case <-time.After(time.Second):
			t.Fatal("loop did not stop on context cancel")
		}
	})
}

func TestManual_OrderAndVirtualTime(t *testing.T) {
	m := NewManual()
	var got []string

	m.Schedule(40*time.Millisecond, func() { got = append(got, "b") })
	m.Schedule(10*time.Millisecond, func() { got = append(got, "a") })
	m.Schedule(40*time.Millisecond, func() {
		got = append(got, "c")
		m.Schedule(40*time.Millisecond, func() { got = append(got, "d") })
	})
	assert.Equal(t, 3, m.Pending())

	n := m.RunAll(100)

	assert.Equal(t, 4, n)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	assert.Equal(t, 80*time.Millisecond, m.Now())
	assert.False(t, m.Step())
}

func TestManual_RunAllLimit(t *testing.T) {
	m := NewManual()
	var step func()
	step = func() { m.Schedule(time.Millisecond, step) }
	m.Schedule(0, step)

	assert.Equal(t, 10, m.RunAll(10))
	assert.Equal(t, 1, m.Pending())
}
