// SPDX-License-Identifier: MIT

package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcMinRun(t *testing.T) {
	t.Parallel()

	cases := []struct{ n, minMerge, want int }{
		{0, 32, 0},
		{1, 32, 1},
		{31, 32, 31},
		{32, 32, 16},
		{33, 32, 17},
		{64, 32, 16},
		{65, 32, 17},
		{100, 32, 25},
		{70, 4, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, calcMinRun(tc.n, tc.minMerge), "n=%d minMerge=%d", tc.n, tc.minMerge)
	}
}

func TestNextGap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, nextGap(0))
	assert.Equal(t, 1, nextGap(1))
	assert.Equal(t, 3, nextGap(5))
	assert.Equal(t, 7, nextGap(10))
}

// TestTracerRotate checks the multiset-preserving moves used by merges and
// the tree traversal.
func TestTracerRotate(t *testing.T) {
	t.Parallel()

	tr := newTracer(Merge, []float64{1, 2, 3, 4, 5}, DefaultOptions())
	tr.rotate(1, 3)
	assert.Equal(t, []float64{1, 4, 2, 3, 5}, tr.buf)
	tr.rotate(2, 2)
	assert.Equal(t, []float64{1, 4, 2, 3, 5}, tr.buf)
	assert.Equal(t, 2, tr.counters.Writes)

	tr.shift(4, 2)
	assert.Equal(t, []float64{1, 4, 5, 3, 2}, tr.buf)
}

func TestSpan(t *testing.T) {
	t.Parallel()

	assert.Nil(t, span(3, 3))
	assert.Equal(t, []int{2, 3, 4}, span(2, 5))
}
