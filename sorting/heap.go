// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/sortsteps/step"

var heapListing = []string{
	"func heapSort(a []float64) {",
	"  n := len(a)",
	"  for i := n/2 - 1; i >= 0; i-- {",
	"    heapify(a, n, i)",
	"  }",
	"  for end := n - 1; end > 0; end-- {",
	"    a[0], a[end] = a[end], a[0]",
	"    heapify(a, end, 0)",
	"  }",
	"}",
	"",
	"func heapify(a []float64, n, i int) {",
	"  largest, l, r := i, 2*i+1, 2*i+2",
	"  if l < n && a[l] > a[largest] {",
	"    largest = l",
	"  }",
	"  if r < n && a[r] > a[largest] {",
	"    largest = r",
	"  }",
	"  if largest != i {",
	"    a[i], a[largest] = a[largest], a[i]",
	"    heapify(a, n, largest)",
	"  }",
	"}",
}

const (
	heapLineBuild     = 3
	heapLineExtract   = 7
	heapLineHeapify   = 13
	heapLineLeft      = 14
	heapLineLeftWins  = 15
	heapLineRight     = 17
	heapLineRightWins = 18
	heapLineSwap      = 21
)

// heapSort: bottom-up max heap build, then repeated root extraction.
// Fewer than two values are already a heap.
func heapSort(t *tracer) {
	n := t.n()
	if n < 2 {
		return
	}
	t.emit(heapLineBuild, step.None{}, "Build a max heap from index %d down to 0", n/2-1)
	for i := n/2 - 1; i >= 0 && !t.stopped(); i-- {
		heapify(t, n, i)
	}

	for end := n - 1; end > 0 && !t.stopped(); end-- {
		t.swap(0, end)
		t.emit(heapLineExtract, step.Compare(0, end), "Moved max %s to index %d, heap size now %d", fv(t.buf[end]), end, end)
		heapify(t, end, 0)
	}
}

// heapify sifts buf[i] down within the heap buf[0:size]. Children are
// compared with strict >, so equal keys never move.
func heapify(t *tracer, size, i int) {
	for {
		largest, l, r := i, 2*i+1, 2*i+2
		nodes := func() step.HeapNodes {
			h := step.HeapNodes{Root: i, Left: step.Absent, Right: step.Absent, Largest: largest}
			if l < size {
				h.Left = l
			}
			if r < size {
				h.Right = r
			}
			return h
		}
		t.emit(heapLineHeapify, nodes(), "Heapify at index %d (heap size %d)", i, size)

		if l < size {
			t.emitNotes(heapLineLeft, nodes(), t.compareNotes(l, largest),
				"Is left child %s > %s?", fv(t.buf[l]), fv(t.buf[largest]))
			if t.greater(t.buf[l], t.buf[largest]) {
				largest = l
				t.emit(heapLineLeftWins, nodes(), "Largest is now left child %s", fv(t.buf[largest]))
			}
		}
		if r < size {
			t.emitNotes(heapLineRight, nodes(), t.compareNotes(r, largest),
				"Is right child %s > %s?", fv(t.buf[r]), fv(t.buf[largest]))
			if t.greater(t.buf[r], t.buf[largest]) {
				largest = r
				t.emit(heapLineRightWins, nodes(), "Largest is now right child %s", fv(t.buf[largest]))
			}
		}

		if largest == i {
			return
		}
		t.swap(i, largest)
		t.emit(heapLineSwap, step.Compare(i, largest), "Swapped %s down to index %d", fv(t.buf[largest]), largest)
		i = largest
	}
}
