package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/wheelbet/internal/logger"
)

// ErrStopped is returned when work is handed to a loop that has shut down
var ErrStopped = errors.New("event loop stopped")

// Scheduler runs fn once after delay on the owning actor.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// Loop is a single-goroutine actor. Every posted function and every
// scheduled callback runs on the goroutine inside Run, one at a time, so
// state touched only from the loop needs no locking.
type Loop struct {
	inbox    chan func()
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

// NewLoop creates a loop; call Run to start processing.
func NewLoop() *Loop {
	return &Loop{
		inbox:  make(chan func(), InboxBufferSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		timers: make(map[uuid.UUID]*time.Timer),
	}
}

// Run processes posted functions until ctx is cancelled or Stop is called.
func (l *Loop) Run(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgLoopStarted)
	defer close(l.done)
	defer log.Debug(LogMsgLoopStopped)

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return
		case <-l.quit:
			return
		case fn := <-l.inbox:
			fn()
		}
	}
}

// Post queues fn to run on the loop. It returns ErrStopped once the loop is stopping.
func (l *Loop) Post(fn func()) error {
	select {
	case <-l.quit:
		return ErrStopped
	default:
	}

	select {
	case l.inbox <- fn:
		return nil
	case <-l.quit:
		return ErrStopped
	}
}

// Call runs fn on the loop and waits for it to finish.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if err := l.Post(func() {
		defer close(finished)
		fn()
	}); err != nil {
		return err
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Schedule posts fn to the loop after delay.
func (l *Loop) Schedule(delay time.Duration, fn func()) {
	id := uuid.New()

	l.mu.Lock()
	defer l.mu.Unlock()
	select {
	case <-l.quit:
		return
	default:
	}

	l.timers[id] = time.AfterFunc(delay, func() {
		l.removeTimer(id)
		_ = l.Post(fn)
	})
}

// Pending returns the number of scheduled callbacks that have not fired yet
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

// Stop ends Run and cancels pending timers. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		close(l.quit)
		dropped := len(l.timers)
		for id, timer := range l.timers {
			timer.Stop()
			delete(l.timers, id)
		}
		l.mu.Unlock()

		if dropped > 0 {
			logger.Debug(LogMsgTimersDropped, "count", dropped)
		}
	})
}

// Done is closed when Run returns
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) removeTimer(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.timers, id)
}
