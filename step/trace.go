// SPDX-License-Identifier: MIT

package step

import (
	"math"
	"slices"

	"github.com/cockroachdb/errors"
)

// Counters records the primitive operations a generator performed.
//
//	Comparisons  element-to-element comparisons
//	Swaps        exchanges of two positions
//	Writes       single-position writes (placing a key, merging, rebuilding)
type Counters struct {
	Comparisons int `json:"comparisons"`
	Swaps       int `json:"swaps"`
	Writes      int `json:"writes"`
}

// Add returns the element-wise sum of c and o.
func (c Counters) Add(o Counters) Counters {
	return Counters{
		Comparisons: c.Comparisons + o.Comparisons,
		Swaps:       c.Swaps + o.Swaps,
		Writes:      c.Writes + o.Writes,
	}
}

// Trace is the finite ordered list of steps produced by one generator run.
// A Trace is read-only after construction and safe to share between
// goroutines.
type Trace struct {
	algorithm string
	steps     []Step
	counters  Counters
}

// NewTrace builds a Trace from steps. The slice is copied; the steps
// themselves are already immutable.
//
// Returns ErrEmptyTrace if steps is empty.
func NewTrace(algorithm string, steps []Step, c Counters) (*Trace, error) {
	if len(steps) == 0 {
		return nil, errors.Wrapf(ErrEmptyTrace, "algorithm %q", algorithm)
	}

	return &Trace{
		algorithm: algorithm,
		steps:     slices.Clone(steps),
		counters:  c,
	}, nil
}

// Algorithm returns the identifier of the generator that produced the trace.
func (t *Trace) Algorithm() string { return t.algorithm }

// Len returns the number of steps. Always >= 1.
func (t *Trace) Len() int { return len(t.steps) }

// At returns step i. It panics if i is out of range.
func (t *Trace) At(i int) Step { return t.steps[i] }

// First returns the initial step.
func (t *Trace) First() Step { return t.steps[0] }

// Last returns the final step, whose sequence is the sorted input.
func (t *Trace) Last() Step { return t.steps[len(t.steps)-1] }

// Steps returns a copy of the step list.
func (t *Trace) Steps() []Step { return slices.Clone(t.steps) }

// Counters returns the operation counts recorded while generating the trace.
func (t *Trace) Counters() Counters { return t.counters }

// Snapshots returns the exported form of every step, in order.
func (t *Trace) Snapshots() []Snapshot {
	out := make([]Snapshot, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.Snapshot()
	}
	return out
}

// sameFloat compares bit patterns so that NaN equals NaN and -0 differs
// from +0.
func sameFloat(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}
