// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/sortsteps/step"

var selectionListing = []string{
	"func selectionSort(a []float64) {",
	"  n := len(a)",
	"  for i := 0; i < n-1; i++ {",
	"    min := i",
	"    for j := i + 1; j < n; j++ {",
	"      if a[j] < a[min] {",
	"        min = j",
	"      }",
	"    }",
	"    if min != i {",
	"      a[i], a[min] = a[min], a[i]",
	"    }",
	"  }",
	"}",
}

const (
	selectionLineOuter   = 4
	selectionLineCompare = 6
	selectionLineNewMin  = 7
	selectionLineSwap    = 11
	selectionLineKeep    = 10
)

// selectionSort: for each position i, a strict-< scan finds the minimum of
// the suffix; a swap happens only when the minimum moved.
func selectionSort(t *tracer) {
	n := t.n()
	for i := 0; i < n-1 && !t.stopped(); i++ {
		minIdx := i
		t.emit(selectionLineOuter, step.Selection{Current: i, Minimum: minIdx},
			"Filling position %d, minimum so far %s", i, fv(t.buf[minIdx]))

		for j := i + 1; j < n; j++ {
			t.emitNotes(selectionLineCompare, step.Compare(minIdx, j), t.compareNotes(minIdx, j),
				"Is %s < current minimum %s?", fv(t.buf[j]), fv(t.buf[minIdx]))
			if t.less(t.buf[j], t.buf[minIdx]) {
				minIdx = j
				t.emit(selectionLineNewMin, step.Selection{Current: i, Minimum: minIdx},
					"New minimum %s at index %d", fv(t.buf[minIdx]), minIdx)
			}
		}

		if minIdx != i {
			t.swap(i, minIdx)
			t.emit(selectionLineSwap, step.Compare(i, minIdx),
				"Swapped minimum %s into position %d", fv(t.buf[i]), i)
		} else {
			t.emit(selectionLineKeep, step.Selection{Current: i, Minimum: i},
				"%s already in position %d", fv(t.buf[i]), i)
		}
	}
}
