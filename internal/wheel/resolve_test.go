package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_KnownOffsets(t *testing.T) {
	l := Default()

	tests := []struct {
		name   string
		offset float64
		label  int
	}{
		{name: "resting wheel points at index 27", offset: 0, label: 5},
		{name: "first segment under pointer", offset: 270, label: 0},
		{name: "inside first segment", offset: 265, label: 0},
		{name: "second segment", offset: 260, label: 1},
		{name: "last segment wraps", offset: 275, label: 10},
		{name: "fractional offset", offset: 359.6, label: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, Resolve(tt.offset, l).Label)
		})
	}
}

func TestResolve_TotalAndDeterministic(t *testing.T) {
	l := Default()

	for i := 0; i < 3600; i++ {
		offset := float64(i) / 10
		first := Resolve(offset, l)
		second := Resolve(offset, l)
		assert.Equal(t, first, second, "offset %v", offset)

		idx := PointerIndex(offset, l)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, l.Len())
	}
}

func TestResolve_UniformAcrossLabels(t *testing.T) {
	l := Default()
	counts := map[int]int{}

	// One sample in the middle of every segment width
	for i := 0; i < l.Len(); i++ {
		offset := float64(i)*l.Width() + l.Width()/2
		counts[Resolve(offset, l).Label]++
	}

	for label, n := range counts {
		assert.Equal(t, 6, n, "label %d", label)
	}
	assert.Len(t, counts, 6)
}
