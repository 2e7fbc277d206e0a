// SPDX-License-Identifier: MIT

package step_test

import (
	"fmt"

	"github.com/katalvlaran/sortsteps/step"
)

// ExampleNew shows that a step keeps its own copy of the generator buffer.
func ExampleNew() {
	buf := []float64{5, 3, 8}
	s := step.New(buf, 6, step.Compare(0, 1), "Comparing 5 and 3")

	// The generator keeps working on its buffer.
	buf[0], buf[1] = buf[1], buf[0]

	fmt.Println(s.Sequence(), s.Highlight())
	fmt.Println(s)

	// Output:
	// [5 3 8] cmp[0 1]
	// L6 cmp[0 1] [5 3 8] Comparing 5 and 3
}

// ExampleValidate checks a hand-built two-step trace.
func ExampleValidate() {
	input := []float64{2, 1}
	tr, _ := step.NewTrace("handmade", []step.Step{
		step.New(input, 1, step.Compare(0, 1), "Swap 2 and 1"),
		step.New([]float64{1, 2}, 0, nil, "Sorted"),
	}, step.Counters{Comparisons: 1, Swaps: 1})

	fmt.Println(step.Validate(tr, input))
	fmt.Println(tr.Len(), tr.Last().Sequence())

	// Output:
	// <nil>
	// 2 [1 2]
}
