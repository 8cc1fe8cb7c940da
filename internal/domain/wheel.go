package domain

// Segment is one fixed angular slice of the wheel.
// Multiplier always equals Label; label 0 is the house segment.
type Segment struct {
	Label      int    `json:"label"`
	Multiplier int    `json:"multiplier"`
	Color      string `json:"color"` // Hex display token, e.g. "#3498db"
}

// IsLosing reports whether landing on the segment loses the stake
func (s Segment) IsLosing() bool {
	return s.Label == 0
}

// SpinState is the rotation state owned by the spin engine
type SpinState struct {
	AngleOffset  float64 `json:"angle_offset"`  // Degrees, [0,360)
	AngularSpeed float64 `json:"angular_speed"` // Degrees per tick
	ElapsedTicks int     `json:"elapsed_ticks"`
	TotalTicks   int     `json:"total_ticks"`
	Active       bool    `json:"active"`
}

// Bet is a validated stake, immutable for the duration of one spin
type Bet struct {
	Amount int64 `json:"amount" validate:"gt=0,ltefield=Balance"`

	// Balance is the balance the bet was validated against
	Balance int64 `json:"-"`
}

// Outcome is the settled result of one completed spin
type Outcome struct {
	Segment    Segment `json:"segment"`
	Bet        int64   `json:"bet"`
	Gain       int64   `json:"gain"`  // bet * multiplier, 0 on the house segment
	Delta      int64   `json:"delta"` // signed balance change
	NewBalance int64   `json:"new_balance"`
}

// IsWin reports whether the spin paid out
func (o Outcome) IsWin() bool {
	return !o.Segment.IsLosing()
}

// EndReason explains why a session terminated
type EndReason string

const (
	EndReasonGameOver    EndReason = "game_over"
	EndReasonManualClose EndReason = "manual_close"
)

// SessionState is the per-process game state owned by the session controller
type SessionState struct {
	ID       string    `json:"id"`
	Balance  int64     `json:"balance"`
	Spinning bool      `json:"spinning"`
	Ended    bool      `json:"ended"`
	Reason   EndReason `json:"reason,omitempty"`
	Rounds   int       `json:"rounds"`
}
