package wheel

// Segment colors of the reference wheel
const (
	ColorBlue   = "#3498db"
	ColorGreen  = "#2ecc71"
	ColorYellow = "#f1c40f"
	ColorPurple = "#9b59b6"
	ColorTeal   = "#1abc9c"
	ColorRed    = "#e74c3c"
)

// DefaultRepeats is how many times the base cycle appears on the reference wheel
const DefaultRepeats = 6

// ReferenceAngle is the pointer position in drawing coordinates: 0° at the
// right, growing counter-clockwise, pointer at the top. Segments are drawn
// from the current offset, so the winner is whatever sits under 270° once
// the offset is undone.
const ReferenceAngle = 270.0

// DefaultCycle is the base sequence of the reference wheel
var DefaultCycle = []Entry{
	{Label: 0, Color: ColorBlue},
	{Label: 1, Color: ColorGreen},
	{Label: 2, Color: ColorYellow},
	{Label: 5, Color: ColorPurple},
	{Label: 8, Color: ColorTeal},
	{Label: 10, Color: ColorRed},
}
