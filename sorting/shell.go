// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/sortsteps/step"

var shellListing = []string{
	"func shellSort(a []float64) {",
	"  n := len(a)",
	"  for gap := n / 2; gap > 0; gap /= 2 {",
	"    for i := gap; i < n; i++ {",
	"      tmp := a[i]",
	"      j := i",
	"      for ; j >= gap && a[j-gap] > tmp; j -= gap {",
	"        a[j] = a[j-gap]",
	"      }",
	"      a[j] = tmp",
	"    }",
	"  }",
	"}",
}

const shellLineGap = 3

var shellSortLines = insertionLines{key: 5, compare: 7, shift: 8, place: 10}

// shellSort: gapped insertion sort for gaps n/2, n/4, ..., 1.
func shellSort(t *tracer) {
	n := t.n()
	for gap := n / 2; gap > 0 && !t.stopped(); gap /= 2 {
		t.emit(shellLineGap, step.None{}, "Gap is %d", gap)
		gappedInsertion(t, 0, n-1, gap, shellSortLines)
	}
}
