package wheel

import (
	"fmt"
	"math"

	"github.com/osse101/wheelbet/internal/domain"
	"github.com/osse101/wheelbet/internal/utils"
)

// Entry is one distinct (label, color) pair of a base cycle
type Entry struct {
	Label int
	Color string
}

// Layout is an immutable ordered ring of equal-width segments
type Layout struct {
	segments      []domain.Segment
	width         float64
	maxMultiplier int
}

// NewLayout builds a wheel by repeating cycle `repeats` times.
func NewLayout(cycle []Entry, repeats int) (*Layout, error) {
	if len(cycle) == 0 {
		return nil, fmt.Errorf("%w: empty cycle", domain.ErrInvalidLayout)
	}
	if repeats < 1 {
		return nil, fmt.Errorf("%w: repeats must be at least 1, got %d", domain.ErrInvalidLayout, repeats)
	}

	segments := make([]domain.Segment, 0, len(cycle)*repeats)
	maxMultiplier := 0
	for r := 0; r < repeats; r++ {
		for _, e := range cycle {
			if e.Label < 0 {
				return nil, fmt.Errorf("%w: negative label %d", domain.ErrInvalidLayout, e.Label)
			}
			maxMultiplier = max(maxMultiplier, e.Label)
			segments = append(segments, domain.Segment{
				Label:      e.Label,
				Multiplier: e.Label,
				Color:      e.Color,
			})
		}
	}

	return &Layout{
		segments:      segments,
		width:         utils.FullTurn / float64(len(segments)),
		maxMultiplier: maxMultiplier,
	}, nil
}

// Default returns the reference 36-segment wheel
func Default() *Layout {
	l, err := NewLayout(DefaultCycle, DefaultRepeats)
	if err != nil {
		panic(fmt.Sprintf("default wheel layout: %v", err))
	}
	return l
}

// Len returns the number of segments
func (l *Layout) Len() int {
	return len(l.segments)
}

// Width returns the angular width of every segment in degrees
func (l *Layout) Width() float64 {
	return l.width
}

// MaxMultiplier returns the highest payout multiplier on the ring
func (l *Layout) MaxMultiplier() int {
	return l.maxMultiplier
}

// Segment returns the i-th segment in drawing order; i wraps around the ring.
func (l *Layout) Segment(i int) domain.Segment {
	n := len(l.segments)
	return l.segments[((i%n)+n)%n]
}

// Segments returns a copy of the ring in drawing order
func (l *Layout) Segments() []domain.Segment {
	out := make([]domain.Segment, len(l.segments))
	copy(out, l.segments)
	return out
}

// IndexAt returns the index of the segment whose range contains angle,
// measured in the wheel's own (unrotated) frame.
func (l *Layout) IndexAt(angle float64) int {
	a := utils.NormalizeAngle(angle)
	return int(math.Floor(a/l.width)) % len(l.segments)
}

// SegmentAt returns the segment whose angular range contains angle.
func (l *Layout) SegmentAt(angle float64) domain.Segment {
	return l.segments[l.IndexAt(angle)]
}
