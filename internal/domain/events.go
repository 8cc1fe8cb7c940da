package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "spin.completed")
const (
	// EventTypeSpinStarted is published when a validated bet starts the wheel
	EventTypeSpinStarted = "spin.started"

	// EventTypeSpinFrame is published once per animation tick with the current offset
	EventTypeSpinFrame = "spin.frame"

	// EventTypeSpinCompleted is published when the wheel stops and the outcome is settled
	EventTypeSpinCompleted = "spin.completed"

	// EventTypeSessionEnded is published on game over or manual close
	EventTypeSessionEnded = "session.ended"
)

// SpinStartedPayload is the event payload for spin.started events
type SpinStartedPayload struct {
	SessionID  string `json:"session_id"`
	BetAmount  int64  `json:"bet_amount"`
	TotalTicks int    `json:"total_ticks"`
	Balance    int64  `json:"balance"`
}

// SpinFramePayload is the event payload for spin.frame events
type SpinFramePayload struct {
	SessionID    string  `json:"session_id"`
	AngleOffset  float64 `json:"angle_offset"`
	AngularSpeed float64 `json:"angular_speed"`
	ElapsedTicks int     `json:"elapsed_ticks"`
	TotalTicks   int     `json:"total_ticks"`
}

// SpinCompletedPayload is the event payload for spin.completed events
type SpinCompletedPayload struct {
	SessionID  string `json:"session_id"`
	Label      int    `json:"label"`
	Color      string `json:"color"`
	BetAmount  int64  `json:"bet_amount"`
	Gain       int64  `json:"gain"`
	Delta      int64  `json:"delta"`
	NewBalance int64  `json:"new_balance"`
	IsWin      bool   `json:"is_win"`
	Summary    string `json:"summary"`
}

// SessionEndedPayload is the event payload for session.ended events
type SessionEndedPayload struct {
	SessionID    string    `json:"session_id"`
	Reason       EndReason `json:"reason"`
	FinalBalance int64     `json:"final_balance"`
	Rounds       int       `json:"rounds"`
}
