// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/sortsteps/step"

var cocktailListing = []string{
	"func cocktailSort(a []float64) {",
	"  start, end := 0, len(a)-1",
	"  for swapped := true; swapped; {",
	"    swapped = false",
	"    for i := start; i < end; i++ {",
	"      if a[i] > a[i+1] {",
	"        a[i], a[i+1] = a[i+1], a[i]",
	"        swapped = true",
	"      }",
	"    }",
	"    if !swapped {",
	"      break",
	"    }",
	"    swapped = false",
	"    end--",
	"    for i := end - 1; i >= start; i-- {",
	"      if a[i] > a[i+1] {",
	"        a[i], a[i+1] = a[i+1], a[i]",
	"        swapped = true",
	"      }",
	"    }",
	"    start++",
	"  }",
	"}",
}

const (
	cocktailLineForward  = 5
	cocktailLineCompareF = 6
	cocktailLineSwapF    = 7
	cocktailLineBreak    = 12
	cocktailLineBackward = 16
	cocktailLineCompareB = 17
	cocktailLineSwapB    = 18
	cocktailLineStart    = 22
)

// cocktailSort: alternating forward and backward bubble passes over a
// window that shrinks from both ends. A forward pass without swaps ends
// the run; the backward pass that would follow could not swap either.
func cocktailSort(t *tracer) {
	start, end := 0, t.n()-1
	for swapped := true; swapped && !t.stopped(); {
		swapped = false
		if start <= end {
			t.emit(cocktailLineForward, step.CocktailRange{Start: start, End: end, Direction: step.Forward},
				"Forward pass over [%d..%d]", start, end)
		}
		for i := start; i < end; i++ {
			if cocktailStep(t, i, cocktailLineCompareF, cocktailLineSwapF) {
				swapped = true
			}
		}
		if !swapped {
			t.emit(cocktailLineBreak, step.None{}, "No swaps in the forward pass")
			break
		}

		swapped = false
		end--
		t.emit(cocktailLineBackward, step.CocktailRange{Start: start, End: end, Direction: step.Backward},
			"Backward pass over [%d..%d]", start, end)
		for i := end - 1; i >= start; i-- {
			if cocktailStep(t, i, cocktailLineCompareB, cocktailLineSwapB) {
				swapped = true
			}
		}
		start++
		t.emit(cocktailLineStart, step.None{}, "Window shrinks to [%d..%d]", start, end)
	}
}

// cocktailStep compares buf[i] with buf[i+1] and swaps them if out of
// order. It reports whether it swapped.
func cocktailStep(t *tracer, i, compareLine, swapLine int) bool {
	t.emitNotes(compareLine, step.Compare(i, i+1), t.compareNotes(i, i+1),
		"Comparing %s and %s", fv(t.buf[i]), fv(t.buf[i+1]))
	if !t.greater(t.buf[i], t.buf[i+1]) {
		return false
	}
	t.swap(i, i+1)
	t.emit(swapLine, step.Compare(i, i+1), "Swapped %s and %s", fv(t.buf[i+1]), fv(t.buf[i]))
	return true
}
