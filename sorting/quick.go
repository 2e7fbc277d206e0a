// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/sortsteps/step"

var quickListing = []string{
	"func quickSort(a []float64, lo, hi int) {",
	"  if lo < hi {",
	"    p := partition(a, lo, hi)",
	"    quickSort(a, lo, p-1)",
	"    quickSort(a, p+1, hi)",
	"  }",
	"}",
	"",
	"func partition(a []float64, lo, hi int) int {",
	"  pivot := a[hi]",
	"  i := lo - 1",
	"  for j := lo; j < hi; j++ {",
	"    if a[j] < pivot {",
	"      i++",
	"      a[i], a[j] = a[j], a[i]",
	"    }",
	"  }",
	"  a[i+1], a[hi] = a[hi], a[i+1]",
	"  return i + 1",
	"}",
}

const (
	quickLineRange     = 2
	quickLinePivot     = 10
	quickLineCompare   = 13
	quickLineSwap      = 15
	quickLinePlace     = 18
	quickLinePartition = 19
)

func quickSort(t *tracer) {
	quickRange(t, 0, t.n()-1)
}

// quickRange sorts buf[lo..hi] with Lomuto partitioning.
func quickRange(t *tracer, lo, hi int) {
	if t.stopped() {
		return
	}
	if lo >= hi {
		// 0 or 1 elements: nothing to compare.
		t.emit(quickLineRange, step.None{}, "Range [%d..%d] needs no sorting", lo, hi)
		return
	}

	p := partition(t, lo, hi)
	quickRange(t, lo, p-1)
	quickRange(t, p+1, hi)
}

// partition places the pivot buf[hi] at its final index and returns it.
func partition(t *tracer, lo, hi int) int {
	pivot := t.buf[hi]
	t.emit(quickLinePivot, step.Pivot{Index: hi}, "Pivot is %s (index %d), partitioning [%d..%d]", fv(pivot), hi, lo, hi)

	i := lo - 1
	for j := lo; j < hi; j++ {
		t.emitNotes(quickLineCompare, step.Compare(j, hi), t.compareNotes(j, hi),
			"Is %s < pivot %s?", fv(t.buf[j]), fv(pivot))
		if !t.less(t.buf[j], pivot) {
			continue
		}
		i++
		t.swap(i, j)
		if i != j {
			t.emit(quickLineSwap, step.Compare(i, j), "Swapped %s into the low side at index %d", fv(t.buf[i]), i)
		} else {
			t.emit(quickLineSwap, step.Pivot{Index: hi}, "%s stays at index %d on the low side", fv(t.buf[i]), i)
		}
	}

	p := i + 1
	t.swap(p, hi)
	if p != hi {
		t.emit(quickLinePlace, step.Compare(p, hi), "Moved pivot %s to index %d", fv(pivot), p)
	} else {
		t.emit(quickLinePlace, step.Pivot{Index: p}, "Pivot %s already at index %d", fv(pivot), p)
	}
	t.emit(quickLinePartition, step.Pivot{Index: p}, "Pivot %s is in its final position %d", fv(pivot), p)
	return p
}
