// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/sortsteps/step"

var timListing = []string{
	"func timSort(a []float64) {",
	"  n := len(a)",
	"  minRun := calcMinRun(n)",
	"  for start := 0; start < n; start += minRun {",
	"    end := min(start+minRun-1, n-1)",
	"    insertionSort(a, start, end)",
	"  }",
	"  for size := minRun; size < n; size *= 2 {",
	"    for left := 0; left < n; left += 2 * size {",
	"      mid := left + size - 1",
	"      right := min(left+2*size-1, n-1)",
	"      if mid < right {",
	"        merge(a, left, mid, right)",
	"      }",
	"    }",
	"  }",
	"}",
	"",
	"func calcMinRun(n int) int {",
	"  r := 0",
	"  for n >= minMerge {",
	"    r |= n & 1",
	"    n >>= 1",
	"  }",
	"  return n + r",
	"}",
	"",
	"func insertionSort(a []float64, left, right int) {",
	"  for i := left + 1; i <= right; i++ {",
	"    key, j := a[i], i-1",
	"    for j >= left && a[j] > key {",
	"      a[j+1] = a[j]",
	"      j--",
	"    }",
	"    a[j+1] = key",
	"  }",
	"}",
	"",
	"func merge(a []float64, l, m, r int) {",
	"  left, right := clone(a[l:m+1]), clone(a[m+1:r+1])",
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
	timLineMinRun = 3
	timLineRun    = 6
	timLineSize   = 8
	timLineMerge  = 13
)

var (
	timInsertionLines = insertionLines{key: 30, compare: 31, shift: 32, place: 35}
	timMergeLines     = mergeLines{compare: 43, takeLeft: 44, takeRight: 46, rest: 50}
)

// calcMinRun halves n until it drops below minMerge, adding one if any bit
// shifted out was set. For n < minMerge it returns n itself, so short
// inputs are a single insertion-sorted run.
func calcMinRun(n, minMerge int) int {
	r := 0
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

// timSort: insertion sort runs of minRun, then bottom-up merges of
// doubling width.
func timSort(t *tracer) {
	n := t.n()
	minRun := calcMinRun(n, t.opts.MinMerge)
	t.emit(timLineMinRun, step.None{}, "Minimum run length for %d values is %d", n, minRun)

	for start := 0; start < n && !t.stopped(); start += minRun {
		end := min(start+minRun-1, n-1)
		t.emit(timLineRun, step.TimPhase{Phase: step.TimInsertion, Start: start, End: end, Mid: step.Absent},
			"Insertion sort run [%d..%d]", start, end)
		gappedInsertion(t, start, end, 1, timInsertionLines)
	}

	for size := minRun; size < n && !t.stopped(); size *= 2 {
		t.emit(timLineSize, step.None{}, "Merge runs of size %d", size)
		for left := 0; left < n; left += 2 * size {
			mid := left + size - 1
			right := min(left+2*size-1, n-1)
			if mid >= right {
				continue
			}
			t.emit(timLineMerge, step.TimPhase{Phase: step.TimMerge, Start: left, End: right, Mid: mid},
				"Merge [%d..%d] with [%d..%d]", left, mid, mid+1, right)
			mergeRuns(t, left, mid, right, timMergeLines)
		}
	}
}
