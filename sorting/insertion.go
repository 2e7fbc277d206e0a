// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/sortsteps/step"

var insertionListing = []string{
	"func insertionSort(a []float64) {",
	"  for i := 1; i < len(a); i++ {",
	"    key := a[i]",
	"    j := i - 1",
	"    for j >= 0 && a[j] > key {",
	"      a[j+1] = a[j]",
	"      j--",
	"    }",
	"    a[j+1] = key",
	"  }",
	"}",
}

// insertionLines maps the phases of an insertion pass onto listing lines.
// Insertion, shell and tim sort share the pass with their own listings.
type insertionLines struct {
	key, compare, shift, place int
}

var insertionSortLines = insertionLines{key: 3, compare: 5, shift: 6, place: 9}

func insertionSort(t *tracer) {
	gappedInsertion(t, 0, t.n()-1, 1, insertionSortLines)
}

// gappedInsertion insertion-sorts the elements of buf[lo..hi] that lie gap
// apart.
//
// The key is never lifted out of the buffer. It stays in the hole, and each
// shift exchanges it with the larger element gap positions before it, so
// every snapshot holds the input multiset. Shifts and the final placement
// each count as one write.
func gappedInsertion(t *tracer, lo, hi, gap int, ln insertionLines) {
	for i := lo + gap; i <= hi && !t.stopped(); i++ {
		t.emit(ln.key, step.Insertion{Key: i}, "Key %s taken from index %d", fv(t.buf[i]), i)

		j := i
		for j-gap >= lo {
			t.emitNotes(ln.compare, step.Compare(j-gap, j), t.compareNotes(j-gap, j),
				"Is %s > key %s?", fv(t.buf[j-gap]), fv(t.buf[j]))
			if !t.greater(t.buf[j-gap], t.buf[j]) {
				break
			}
			t.shift(j, gap)
			j -= gap
			t.emit(ln.shift, step.Insertion{Key: j}, "Shifted %s right to index %d", fv(t.buf[j+gap]), j+gap)
		}

		t.counters.Writes++
		t.emit(ln.place, step.Insertion{Key: j}, "Key %s placed at index %d", fv(t.buf[j]), j)
	}
}
