package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func minutes(h, m int) int {
	return h*60 + m
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		aStart   int
		aEnd     int
		bStart   int
		bEnd     int
		expected bool
	}{
		{
			name:   "identical intervals",
			aStart: minutes(9, 0), aEnd: minutes(10, 0),
			bStart: minutes(9, 0), bEnd: minutes(10, 0),
			expected: true,
		},
		{
			name:   "identical degenerate intervals",
			aStart: minutes(9, 0), aEnd: minutes(9, 0),
			bStart: minutes(9, 0), bEnd: minutes(9, 0),
			expected: true,
		},
		{
			name:   "touching boundary, A ends where B starts",
			aStart: minutes(9, 0), aEnd: minutes(10, 0),
			bStart: minutes(10, 0), bEnd: minutes(11, 0),
			expected: false,
		},
		{
			name:   "touching boundary, B ends where A starts",
			aStart: minutes(10, 0), aEnd: minutes(11, 0),
			bStart: minutes(9, 0), bEnd: minutes(10, 0),
			expected: false,
		},
		{
			name:   "partial overlap at start",
			aStart: minutes(9, 30), aEnd: minutes(10, 30),
			bStart: minutes(9, 0), bEnd: minutes(10, 0),
			expected: true,
		},
		{
			name:   "partial overlap at end",
			aStart: minutes(8, 0), aEnd: minutes(9, 30),
			bStart: minutes(9, 0), bEnd: minutes(10, 0),
			expected: true,
		},
		{
			name:   "A fully contains B",
			aStart: minutes(8, 0), aEnd: minutes(12, 0),
			bStart: minutes(9, 0), bEnd: minutes(10, 0),
			expected: true,
		},
		{
			name:   "B fully contains A",
			aStart: minutes(9, 0), aEnd: minutes(10, 0),
			bStart: minutes(8, 0), bEnd: minutes(12, 0),
			expected: true,
		},
		{
			name:   "disjoint, A before B",
			aStart: minutes(8, 0), aEnd: minutes(9, 0),
			bStart: minutes(11, 0), bEnd: minutes(12, 0),
			expected: false,
		},
		{
			name:   "disjoint, A after B",
			aStart: minutes(14, 0), aEnd: minutes(15, 0),
			bStart: minutes(11, 0), bEnd: minutes(12, 0),
			expected: false,
		},
		{
			name:   "one minute of overlap",
			aStart: minutes(9, 0), aEnd: minutes(10, 1),
			bStart: minutes(10, 0), bEnd: minutes(11, 0),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected,
				intervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

// The predicate must be symmetric for every interval pair
func TestIntervalsOverlapSymmetry(t *testing.T) {
	intervals := [][2]int{
		{minutes(8, 0), minutes(9, 0)},
		{minutes(9, 0), minutes(10, 0)},
		{minutes(9, 30), minutes(10, 30)},
		{minutes(10, 0), minutes(11, 0)},
		{minutes(8, 0), minutes(12, 0)},
		{minutes(9, 15), minutes(9, 45)},
		{minutes(9, 0), minutes(9, 0)},
	}

	for _, a := range intervals {
		for _, b := range intervals {
			assert.Equal(t,
				intervalsOverlap(a[0], a[1], b[0], b[1]),
				intervalsOverlap(b[0], b[1], a[0], a[1]),
				"overlap(%v, %v) must equal overlap(%v, %v)", a, b, b, a)
		}
	}
}
