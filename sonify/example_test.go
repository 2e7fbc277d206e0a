// SPDX-License-Identifier: MIT

package sonify_test

import (
	"fmt"

	"github.com/katalvlaran/sortsteps/sonify"
	"github.com/katalvlaran/sortsteps/step"
)

func ExamplePitches() {
	s := step.New([]float64{5, 1, 9}, 0, step.Compare(0, 2), "")
	fmt.Println(sonify.Pitches(s, sonify.DefaultConfig()))

	// Output:
	// [550 880]
}
