// SPDX-License-Identifier: MIT

package sorting_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"

	"github.com/katalvlaran/sortsteps/sorting"
)

// TestDataDriven replays the golden traces in testdata/.
//
//	trace algo=<id> [minmerge=<k>]      one line per step (Step.String)
//	counters algo=<id> [minmerge=<k>]   comparisons, swaps and writes of the run
//
// The command input is the array, whitespace separated.
func TestDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/traces", func(t *testing.T, td *datadriven.TestData) string {
		var id sorting.AlgorithmID
		opts := []sorting.Option{sorting.WithoutNotes()}
		for _, arg := range td.CmdArgs {
			switch arg.Key {
			case "algo":
				id = sorting.AlgorithmID(arg.Vals[0])
			case "minmerge":
				k, err := strconv.Atoi(arg.Vals[0])
				if err != nil {
					return err.Error()
				}
				opts = append(opts, sorting.WithMinMerge(k))
			default:
				return fmt.Sprintf("unknown argument %q", arg.Key)
			}
		}

		var input []float64
		for _, f := range strings.Fields(td.Input) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return err.Error()
			}
			input = append(input, v)
		}

		tr, err := sorting.GenerateTrace(id, input, opts...)
		if err != nil {
			return err.Error()
		}

		var b strings.Builder
		switch td.Cmd {
		case "trace":
			for _, s := range tr.Steps() {
				fmt.Fprintln(&b, s)
			}
		case "counters":
			c := tr.Counters()
			fmt.Fprintf(&b, "comparisons=%d swaps=%d writes=%d\n", c.Comparisons, c.Swaps, c.Writes)
		default:
			return fmt.Sprintf("unknown command %q", td.Cmd)
		}
		return b.String()
	})
}
