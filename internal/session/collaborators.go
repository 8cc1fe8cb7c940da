package session

import (
	"context"

	"github.com/osse101/wheelbet/internal/domain"
)

// Display renders the game for the player. Implementations must not block
// for long: every call is made from the session loop.
type Display interface {
	ShowWheel(state domain.SpinState)
	ShowBalance(balance int64)
	ShowResult(outcome domain.Outcome)
	ShowError(message string)
	ShowNotice(message string)
	Close() error
}

// History persists one line per spin for the lifetime of a session
type History interface {
	Record(outcome domain.Outcome) error
	Close(ctx context.Context, reason domain.EndReason) error
}
