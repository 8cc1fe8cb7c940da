package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/wheelbet/internal/domain"
)

func TestDefault_Shape(t *testing.T) {
	l := Default()

	require.Equal(t, 36, l.Len())
	assert.InDelta(t, 10.0, l.Width(), 1e-12)
	assert.InDelta(t, 360.0, l.Width()*float64(l.Len()), 1e-9, "widths must sum to a full turn")

	counts := map[int]int{}
	for _, s := range l.Segments() {
		assert.Equal(t, s.Label, s.Multiplier)
		assert.NotEmpty(t, s.Color)
		counts[s.Label]++
	}
	assert.Equal(t, map[int]int{0: 6, 1: 6, 2: 6, 5: 6, 8: 6, 10: 6}, counts)
	assert.Equal(t, 10, l.MaxMultiplier())
}

func TestDefault_CycleOrder(t *testing.T) {
	l := Default()
	labels := []int{0, 1, 2, 5, 8, 10}
	for i := 0; i < l.Len(); i++ {
		assert.Equal(t, labels[i%len(labels)], l.Segment(i).Label, "segment %d", i)
	}
	assert.Equal(t, ColorBlue, l.Segment(0).Color)
	assert.Equal(t, ColorRed, l.Segment(-1).Color, "negative index wraps")
}

func TestNewLayout_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		cycle   []Entry
		repeats int
	}{
		{name: "empty cycle", cycle: nil, repeats: 1},
		{name: "zero repeats", cycle: DefaultCycle, repeats: 0},
		{name: "negative label", cycle: []Entry{{Label: -1, Color: ColorRed}}, repeats: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLayout(tt.cycle, tt.repeats)
			assert.Nil(t, l)
			assert.ErrorIs(t, err, domain.ErrInvalidLayout)
		})
	}
}

func TestSegmentAt(t *testing.T) {
	l := Default()

	tests := []struct {
		angle float64
		label int
	}{
		{angle: 0, label: 0},
		{angle: 9.999, label: 0},
		{angle: 10, label: 1},
		{angle: 25, label: 2},
		{angle: 59.9, label: 10},
		{angle: 60, label: 0},
		{angle: 359.9, label: 10},
		{angle: 360, label: 0},
		{angle: -5, label: 10},
		{angle: 725, label: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, l.SegmentAt(tt.angle).Label, "angle %v", tt.angle)
	}
}
