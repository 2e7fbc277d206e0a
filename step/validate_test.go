// SPDX-License-Identifier: MIT

package step_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortsteps/step"
)

func mustTrace(t *testing.T, steps ...step.Step) *step.Trace {
	t.Helper()
	tr, err := step.NewTrace("test", steps, step.Counters{})
	require.NoError(t, err)
	return tr
}

func TestValidate(t *testing.T) {
	t.Parallel()

	input := []float64{2, 1, 3}
	done := step.New([]float64{1, 2, 3}, 0, nil, "Sorted")

	cases := []struct {
		name  string
		steps []step.Step
		want  error
	}{
		{
			name: "ok",
			steps: []step.Step{
				step.New(input, 1, step.Compare(0, 1), ""),
				done,
			},
		},
		{
			name:  "length changed",
			steps: []step.Step{step.New([]float64{1, 2}, 1, nil, ""), done},
			want:  step.ErrLengthChanged,
		},
		{
			name:  "value invented",
			steps: []step.Step{step.New([]float64{2, 2, 3}, 1, nil, ""), done},
			want:  step.ErrValuesChanged,
		},
		{
			name:  "final unsorted",
			steps: []step.Step{step.New(input, 0, nil, "")},
			want:  step.ErrNotSorted,
		},
		{
			name:  "index out of range",
			steps: []step.Step{step.New(input, 1, step.Compare(1, 3), ""), done},
			want:  step.ErrIndexOutOfRange,
		},
		{
			name:  "single index comparison",
			steps: []step.Step{step.New(input, 1, step.Compare(1, 1), ""), done},
			want:  step.ErrBadHighlight,
		},
		{
			name:  "final highlights",
			steps: []step.Step{step.New([]float64{1, 2, 3}, 0, step.Pivot{Index: 0}, "")},
			want:  step.ErrBadHighlight,
		},
		{
			name: "strand lists overlap",
			steps: []step.Step{
				step.New(input, 1, step.Strand{Input: []int{0, 1}, Sublist: []int{1}, Compare: step.NoStrandCompare}, ""),
				done,
			},
			want: step.ErrBadHighlight,
		},
		{
			name:  "selection without minimum",
			steps: []step.Step{step.New(input, 1, step.Selection{Current: 0, Minimum: step.Absent}, ""), done},
			want:  step.ErrIndexOutOfRange,
		},
		{
			name: "inverted tim window",
			steps: []step.Step{
				step.New(input, 1, step.TimPhase{Phase: step.TimMerge, Start: 2, End: 0, Mid: 1}, ""),
				done,
			},
			want: step.ErrBadHighlight,
		},
		{
			name: "tim mid outside window",
			steps: []step.Step{
				step.New(input, 1, step.TimPhase{Phase: step.TimMerge, Start: 0, End: 1, Mid: 1}, ""),
				done,
			},
			want: step.ErrBadHighlight,
		},
		{
			name: "inverted cocktail window",
			steps: []step.Step{
				step.New(input, 1, step.CocktailRange{Start: 2, End: 1, Direction: step.Forward}, ""),
				done,
			},
			want: step.ErrBadHighlight,
		},
		{
			name: "single element cocktail window allowed",
			steps: []step.Step{
				step.New(input, 1, step.CocktailRange{Start: 1, End: 1, Direction: step.Forward}, ""),
				done,
			},
		},
		{
			name: "absent heap child allowed",
			steps: []step.Step{
				step.New(input, 1, step.HeapNodes{Root: 1, Left: step.Absent, Right: step.Absent, Largest: 1}, ""),
				done,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := step.Validate(mustTrace(t, tc.steps...), input)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestValidate_NilTrace(t *testing.T) {
	t.Parallel()
	assert.True(t, errors.Is(step.Validate(nil, nil), step.ErrEmptyTrace))
}

func TestValidate_BitwiseMultiset(t *testing.T) {
	t.Parallel()

	// -0 and +0 are different bit patterns; swapping one for the other is a
	// changed value even though they compare equal.
	input := []float64{math.Copysign(0, -1), 1}
	tr := mustTrace(t, step.New([]float64{0, 1}, 0, nil, ""))
	assert.True(t, errors.Is(step.Validate(tr, input), step.ErrValuesChanged))

	nan := math.NaN()
	tr = mustTrace(t, step.New([]float64{nan, 1}, 0, nil, ""))
	assert.NoError(t, step.Validate(tr, []float64{1, nan}))
}
