package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Bet errors
	ErrMsgValidation      = "invalid bet"
	ErrMsgNotANumber      = "please enter a valid amount"
	ErrMsgNonPositiveBet  = "bet must be a positive amount"
	ErrMsgInsufficientBet = "invalid bet or insufficient balance"
	ErrMsgBetTooLarge     = "bet is too large to be paid out"

	// Spin errors
	ErrMsgInvalidState = "a spin is already in progress"
	ErrMsgNotSpinning  = "no spin in progress"

	// Session errors
	ErrMsgSessionEnded = "session has ended"

	// Resource errors
	ErrMsgResource = "resource unavailable"

	// Layout errors
	ErrMsgInvalidLayout = "invalid wheel layout"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrValidation covers non-numeric, non-positive, over-balance or unpayable bets.
	// Recoverable: the player is told and may retry.
	ErrValidation = errors.New(ErrMsgValidation)

	// ErrInvalidState is returned when a spin is requested while one is active,
	// or a tick arrives while the engine is idle.
	ErrInvalidState = errors.New(ErrMsgInvalidState)

	// ErrSessionEnded is returned for actions attempted after game over or close.
	ErrSessionEnded = errors.New(ErrMsgSessionEnded)

	// ErrResource is fatal at session start (history log cannot be opened).
	ErrResource = errors.New(ErrMsgResource)

	// ErrInvalidLayout is returned when a wheel cannot be built from its cycle.
	ErrInvalidLayout = errors.New(ErrMsgInvalidLayout)
)
