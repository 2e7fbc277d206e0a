// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/sortsteps/step"

var combListing = []string{
	"func combSort(a []float64) {",
	"  n := len(a)",
	"  gap, swapped := n, true",
	"  for gap > 1 || swapped {",
	"    gap = gap * 10 / 13",
	"    if gap < 1 {",
	"      gap = 1",
	"    }",
	"    swapped = false",
	"    for i := 0; i+gap < n; i++ {",
	"      if a[i] > a[i+gap] {",
	"        a[i], a[i+gap] = a[i+gap], a[i]",
	"        swapped = true",
	"      }",
	"    }",
	"  }",
	"}",
}

const (
	combLineGap     = 5
	combLineCompare = 11
	combLineSwap    = 12
)

// nextGap shrinks gap by the factor 10/13, floored, never below 1.
func nextGap(gap int) int {
	gap = gap * 10 / 13
	if gap < 1 {
		return 1
	}
	return gap
}

// combSort: bubble passes with a shrinking gap; runs until a gap-1 pass
// makes no swap.
func combSort(t *tracer) {
	n := t.n()
	gap, swapped := n, true
	for (gap > 1 || swapped) && !t.stopped() {
		gap = nextGap(gap)
		swapped = false
		t.emit(combLineGap, step.None{}, "Gap is %d", gap)

		for i := 0; i+gap < n; i++ {
			j := i + gap
			t.emitNotes(combLineCompare, step.Compare(i, j), t.compareNotes(i, j),
				"Comparing %s and %s, %d apart", fv(t.buf[i]), fv(t.buf[j]), gap)
			if t.greater(t.buf[i], t.buf[j]) {
				t.swap(i, j)
				swapped = true
				t.emit(combLineSwap, step.Compare(i, j), "Swapped %s and %s", fv(t.buf[j]), fv(t.buf[i]))
			}
		}
	}
}
