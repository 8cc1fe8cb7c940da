package scheduler

import "time"

type pendingCall struct {
	at time.Duration
	fn func()
}

// Manual is a deterministic Scheduler for tests and replays. Nothing runs
// until Step or RunAll is called; calls fire in due order, FIFO on ties.
type Manual struct {
	now     time.Duration
	pending []pendingCall
}

// NewManual creates an empty manual scheduler
func NewManual() *Manual {
	return &Manual{}
}

// Schedule records fn to run delay after the current virtual time
func (m *Manual) Schedule(delay time.Duration, fn func()) {
	call := pendingCall{at: m.now + delay, fn: fn}

	i := len(m.pending)
	for i > 0 && m.pending[i-1].at > call.at {
		i--
	}
	m.pending = append(m.pending, pendingCall{})
	copy(m.pending[i+1:], m.pending[i:])
	m.pending[i] = call
}

// Step runs the next due call and reports whether one existed
func (m *Manual) Step() bool {
	if len(m.pending) == 0 {
		return false
	}
	call := m.pending[0]
	m.pending = m.pending[1:]
	m.now = call.at
	call.fn()
	return true
}

// RunAll drains the queue, including calls scheduled while draining, up to
// limit steps. It returns the number of calls run.
func (m *Manual) RunAll(limit int) int {
	n := 0
	for n < limit && m.Step() {
		n++
	}
	return n
}

// Pending returns the number of queued calls
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Now returns the virtual time elapsed since creation
func (m *Manual) Now() time.Duration {
	return m.now
}
