package session

import (
	"context"

	"github.com/osse101/wheelbet/internal/domain"
	"github.com/osse101/wheelbet/internal/wheel"
)

// Snapshot is a consistent view of the session for read-only consumers
type Snapshot struct {
	State   domain.SessionState `json:"state"`
	Spin    domain.SpinState    `json:"spin"`
	Pointer domain.Segment      `json:"pointer"`
}

// Snapshot captures the current session and wheel position.
// Like every Controller method it must run on the actor.
func (c *Controller) Snapshot() Snapshot {
	spin := c.engine.State()
	return Snapshot{
		State:   c.state,
		Spin:    spin,
		Pointer: wheel.Resolve(spin.AngleOffset, c.layout),
	}
}

// Caller runs fn on the actor that owns a Controller and waits for it
type Caller interface {
	Call(ctx context.Context, fn func()) error
}

// Reader hands out snapshots to goroutines outside the actor
type Reader struct {
	caller     Caller
	controller *Controller
}

// NewReader creates a Reader that snapshots c through caller
func NewReader(caller Caller, c *Controller) *Reader {
	return &Reader{caller: caller, controller: c}
}

// Snapshot reads the session state on the actor
func (r *Reader) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := r.caller.Call(ctx, func() {
		snap = r.controller.Snapshot()
	})
	return snap, err
}
