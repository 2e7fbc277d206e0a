// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/sortsteps/step"

var gnomeListing = []string{
	"func gnomeSort(a []float64) {",
	"  pos := 0",
	"  for pos < len(a) {",
	"    if pos > 0 && a[pos-1] > a[pos] {",
	"      a[pos-1], a[pos] = a[pos], a[pos-1]",
	"      pos--",
	"    } else {",
	"      pos++",
	"    }",
	"  }",
	"}",
}

const (
	gnomeLineCompare = 4
	gnomeLineSwap    = 5
	gnomeLineForward = 8
)

// gnomeSort: one cursor, forward while in order, swap and step back
// otherwise. The cursor never goes below 0. Only a strict > swaps, so a
// NaN neighbour lets the cursor pass.
func gnomeSort(t *tracer) {
	n := t.n()
	for pos := 0; pos < n && !t.stopped(); {
		if pos > 0 {
			t.emitNotes(gnomeLineCompare, step.Compare(pos-1, pos), t.compareNotes(pos-1, pos),
				"Comparing %s and %s", fv(t.buf[pos-1]), fv(t.buf[pos]))
			if t.greater(t.buf[pos-1], t.buf[pos]) {
				t.swap(pos-1, pos)
				t.emit(gnomeLineSwap, step.Compare(pos-1, pos), "Swapped %s and %s, stepping back", fv(t.buf[pos]), fv(t.buf[pos-1]))
				pos--
				continue
			}
		}

		pos++
		if pos < n {
			t.emit(gnomeLineForward, step.Insertion{Key: pos}, "Step forward to index %d", pos)
		} else {
			t.emit(gnomeLineForward, step.None{}, "Cursor reached the end")
		}
	}
}
