// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortsteps/inputs"
	"github.com/katalvlaran/sortsteps/sorting"
	"github.com/katalvlaran/sortsteps/step"
)

// run executes sortviz with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	for _, id := range sorting.Algorithms() {
		assert.Contains(t, out, string(id))
	}
	assert.Contains(t, out, "Cocktail Shaker Sort")
}

func TestTrace_Lines(t *testing.T) {
	out, err := run(t, "trace", "bubble-sort", "--input", "2,1", "--format", "lines", "--check")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, sorting.MustGenerate(sorting.Bubble, []float64{2, 1}).Len(), len(lines))
	assert.Equal(t, "L1 none [2 1] Start Bubble Sort on 2 values", lines[0])
	assert.Equal(t, "L6 cmp[0 1] [2 1] Comparing 2 and 1", lines[2])
	assert.Equal(t, "L- none [1 2] Sorted", lines[len(lines)-1])
}

func TestTrace_JSON(t *testing.T) {
	out, err := run(t, "trace", "selection", "-i", "[3 1 2]", "-f", "json")
	require.NoError(t, err)

	// Highlights are written as plain objects and not read back.
	var doc struct {
		Algorithm string        `json:"algorithm"`
		Title     string        `json:"title"`
		Input     []float64     `json:"input"`
		Counters  step.Counters `json:"counters"`
		Steps     []struct {
			Sequence []float64 `json:"sequence"`
			Kind     string    `json:"kind"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "selection", doc.Algorithm)
	assert.Equal(t, "Selection Sort", doc.Title)
	assert.Equal(t, []float64{3, 1, 2}, doc.Input)
	assert.Equal(t, 3, doc.Counters.Comparisons)
	require.NotEmpty(t, doc.Steps)
	assert.Equal(t, "comparison", doc.Steps[2].Kind)
	assert.Equal(t, []float64{1, 2, 3}, doc.Steps[len(doc.Steps)-1].Sequence)
}

func TestTrace_Formats(t *testing.T) {
	for _, format := range formats {
		out, err := run(t, "trace", "gnome", "--dataset", "reversed", "--size", "4", "--format", format)
		require.NoError(t, err, format)
		assert.NotEmpty(t, out, format)
	}

	out, err := run(t, "trace", "quick", "-i", "3,1,2", "-f", "text", "--height", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "--- step 1/")
	assert.Contains(t, out, "Start Quick Sort on 3 values")
}

func TestTrace_DefaultInput(t *testing.T) {
	out, err := run(t, "trace", "heap", "-f", "lines")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "L1 none [5 3 8 9 10 2 1 4 6 7] "), out)
}

func TestTrace_EmptyInput(t *testing.T) {
	out, err := run(t, "trace", "merge", "--input", "[]", "--format", "lines", "--check")
	require.NoError(t, err)
	assert.Equal(t, "L1 none [] Start Merge Sort on 0 values\nL2 none [] Range is empty\nL- none [] Sorted\n", out)
}

func TestTrace_Errors(t *testing.T) {
	_, err := run(t, "trace", "bogo")
	assert.True(t, errors.Is(err, sorting.ErrUnknownAlgorithm))

	_, err = run(t, "trace", "bubble", "--input", "1,x")
	assert.True(t, errors.Is(err, inputs.ErrParse))

	_, err = run(t, "trace", "bubble", "--dataset", "spiral")
	assert.True(t, errors.Is(err, inputs.ErrUnknownKind))

	_, err = run(t, "trace", "bubble", "--dataset", "random", "--size", "0")
	assert.True(t, errors.Is(err, inputs.ErrBadSize))

	_, err = run(t, "trace", "bubble", "--input", "1,2", "--dataset", "sorted")
	assert.Error(t, err)

	_, err = run(t, "trace", "bubble", "--max-steps", "5")
	assert.True(t, errors.Is(err, sorting.ErrStepLimit))

	_, err = run(t, "trace", "bubble", "--format", "yaml")
	assert.Error(t, err)

	_, err = run(t, "trace")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	out, err := run(t, "stats", "bubble", "selection", "-i", "3,1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "input: [3 1 2]")
	assert.Contains(t, out, "bubble")
	assert.Contains(t, out, "selection")
	assert.NotContains(t, out, "gnome")

	out, err = run(t, "stats", "--dataset", "random", "--size", "12", "--seed", "3", "--plot", "--plot-height", "4")
	require.NoError(t, err)
	for _, id := range sorting.Algorithms() {
		assert.Contains(t, out, string(id)+": inversions per step")
	}

	_, err = run(t, "stats", "bubble", "nope")
	assert.True(t, errors.Is(err, sorting.ErrUnknownAlgorithm))
}

func TestVerbose(t *testing.T) {
	// --verbose logs through the standard logger; the trace itself is
	// unaffected.
	out, err := run(t, "trace", "comb", "-i", "2,1", "-f", "lines", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "Sorted")
}
