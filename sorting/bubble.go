// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/sortsteps/step"

var bubbleListing = []string{
	"func bubbleSort(a []float64) {",
	"  n := len(a)",
	"  for {",
	"    swapped := false",
	"    for i := 0; i < n-1; i++ {",
	"      if a[i] > a[i+1] {",
	"        a[i], a[i+1] = a[i+1], a[i]",
	"        swapped = true",
	"      }",
	"    }",
	"    n--",
	"    if !swapped {",
	"      return",
	"    }",
	"  }",
	"}",
}

const (
	bubbleLinePass    = 4
	bubbleLineCompare = 6
	bubbleLineSwap    = 7
	bubbleLineShrink  = 11
	bubbleLineDone    = 13
)

// bubbleSort: passes of adjacent compare-and-swap over a shrinking bound,
// until a pass makes no swap. Fewer than two values need no pass.
func bubbleSort(t *tracer) {
	n := t.n()
	if n < 2 {
		return
	}
	for pass := 1; !t.stopped(); pass++ {
		swaps := 0
		t.emit(bubbleLinePass, step.None{}, "Pass %d over indices 0..%d", pass, n-1)

		for i := 0; i < n-1; i++ {
			t.emitNotes(bubbleLineCompare, step.Compare(i, i+1), t.compareNotes(i, i+1),
				"Comparing %s and %s", fv(t.buf[i]), fv(t.buf[i+1]))
			if t.greater(t.buf[i], t.buf[i+1]) {
				t.swap(i, i+1)
				swaps++
				t.emit(bubbleLineSwap, step.Compare(i, i+1), "Swapped: %s now before %s", fv(t.buf[i]), fv(t.buf[i+1]))
			}
		}

		n--
		t.emit(bubbleLineShrink, step.None{}, "Pass %d done with %d swaps, bound is now %d", pass, swaps, n)
		if swaps == 0 {
			t.emit(bubbleLineDone, step.None{}, "No swaps in pass %d", pass)
			return
		}
	}
}
