// SPDX-License-Identifier: MIT

package render

import (
	"math"
	"slices"

	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/sortsteps/step"
)

// DefaultPlotHeight is the Progress height used for a non-positive height.
const DefaultPlotHeight = 10

// Progress plots the number of inversions of every step of t, a curve that
// falls to zero as the sequence becomes sorted.
func Progress(t *step.Trace, height int) string {
	if height <= 0 {
		height = DefaultPlotHeight
	}
	values := make([]float64, t.Len())
	for i, s := range t.Steps() {
		values[i] = float64(Inversions(s.Sequence()))
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Caption(t.Algorithm()+": inversions per step"))
}

// Inversions counts the pairs i < j with seq[i] > seq[j]. NaN values take
// part in no inversion.
//
// Complexity: O(n log n) time, O(n) space.
func Inversions(seq []float64) int {
	a := slices.DeleteFunc(slices.Clone(seq), math.IsNaN)
	return countInversions(a, make([]float64, len(a)))
}

// countInversions merge-sorts a using tmp and returns the inversions it
// removed.
func countInversions(a, tmp []float64) int {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	n := countInversions(a[:mid], tmp[:mid]) + countInversions(a[mid:], tmp[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		if a[j] < a[i] {
			n += mid - i
			tmp[k] = a[j]
			j++
		} else {
			tmp[k] = a[i]
			i++
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid])
	copy(tmp[k:], a[j:])
	copy(a, tmp)
	return n
}
