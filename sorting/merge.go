// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/sortsteps/step"

var mergeListing = []string{
	"func mergeSort(a []float64, l, r int) {",
	"  if l >= r {",
	"    return",
	"  }",
	"  m := (l + r) / 2",
	"  mergeSort(a, l, m)",
	"  mergeSort(a, m+1, r)",
	"  merge(a, l, m, r)",
	"}",
	"",
	"func merge(a []float64, l, m, r int) {",
	"  left := clone(a[l : m+1])",
	"  right := clone(a[m+1 : r+1])",
	"  i, j, k := 0, 0, l",
	"  for i < len(left) && j < len(right) {",
	"    if left[i] <= right[j] {",
	"      a[k] = left[i]; i++",
	"    } else {",
	"      a[k] = right[j]; j++",
	"    }",
	"    k++",
	"  }",
	"  k += copy(a[k:], left[i:])",
	"  copy(a[k:], right[j:])",
	"}",
}

const (
	mergeLineBase  = 2
	mergeLineSplit = 5
	mergeLineMerge = 8
)

// mergeLines maps the phases of a two-run merge onto listing lines.
type mergeLines struct {
	compare, takeLeft, takeRight, rest int
}

var mergeSortLines = mergeLines{compare: 16, takeLeft: 17, takeRight: 19, rest: 23}

func mergeSort(t *tracer) {
	mergeRange(t, 0, t.n()-1)
}

// mergeRange sorts buf[l..r] top-down, splitting at floor((l+r)/2).
func mergeRange(t *tracer, l, r int) {
	if t.stopped() {
		return
	}
	if l >= r {
		if l == r {
			t.emit(mergeLineBase, step.MergeRange{Left: l, Right: r}, "[%d..%d] has one element", l, r)
		} else {
			t.emit(mergeLineBase, step.None{}, "Range is empty")
		}
		return
	}

	m := (l + r) / 2
	t.emit(mergeLineSplit, step.MergeRange{Left: l, Right: r}, "Split [%d..%d] at %d", l, r, m)
	mergeRange(t, l, m)
	mergeRange(t, m+1, r)

	t.emit(mergeLineMerge, step.MergeRange{Left: l, Right: r}, "Merge [%d..%d] with [%d..%d]", l, m, m+1, r)
	mergeRuns(t, l, m, r, mergeSortLines)
}

// mergeRuns stably merges the sorted runs buf[l..m] and buf[m+1..r].
//
// The textbook merge copies both runs to scratch space. Here the buffer
// always reads merged ++ leftRest ++ rightRest inside [l..r]: taking from
// the left run leaves the value where it is, taking from the right run
// rotates it down in front of the left rest. The snapshot therefore holds
// the input multiset at every step, and each placement counts as one write.
func mergeRuns(t *tracer, l, m, r int, ln mergeLines) {
	nl, nr := m-l+1, r-m
	i, j, k := 0, 0, l

	for i < nl && j < nr {
		li, ri := k, k+nl-i
		t.emitNotes(ln.compare, step.Compare(li, ri), t.compareNotes(li, ri),
			"Is %s <= %s?", fv(t.buf[li]), fv(t.buf[ri]))
		if t.lessOrEqual(t.buf[li], t.buf[ri]) {
			t.counters.Writes++
			i++
			t.emit(ln.takeLeft, step.Insertion{Key: k}, "Took %s from the left run into index %d", fv(t.buf[k]), k)
		} else {
			t.rotate(k, ri)
			j++
			t.emit(ln.takeRight, step.Insertion{Key: k}, "Took %s from the right run into index %d", fv(t.buf[k]), k)
		}
		k++
	}

	if k <= r {
		t.counters.Writes += r - k + 1
		t.emit(ln.rest, step.MergeRange{Left: k, Right: r}, "Copied the %d remaining value(s) into [%d..%d]", r-k+1, k, r)
	}
}
