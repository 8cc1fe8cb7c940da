package wheel

import "github.com/osse101/wheelbet/internal/domain"

// PointerIndex maps the fixed pointer back into the rotated wheel frame and
// returns the index of the segment under it.
func PointerIndex(finalOffset float64, layout *Layout) int {
	return layout.IndexAt(ReferenceAngle - finalOffset)
}

// Resolve returns the winning segment for a wheel that stopped at finalOffset.
// Total and deterministic for every offset.
func Resolve(finalOffset float64, layout *Layout) domain.Segment {
	return layout.Segment(PointerIndex(finalOffset, layout))
}
