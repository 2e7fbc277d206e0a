// SPDX-License-Identifier: MIT
// Package: sortsteps/step
//
// errors.go — sentinel errors for the step package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (step index, offending value) is attached with errors.Wrapf.

package step

import "github.com/cockroachdb/errors"

// ErrEmptyTrace indicates an attempt to build a trace with zero steps.
var ErrEmptyTrace = errors.New("step: trace has no steps")

// ErrLengthChanged indicates a record whose sequence length differs from the
// length of the input the trace was generated from.
var ErrLengthChanged = errors.New("step: sequence length changed")

// ErrValuesChanged indicates a record whose multiset of values differs from the
// input multiset (a value was invented or dropped).
var ErrValuesChanged = errors.New("step: sequence values changed")

// ErrNotSorted indicates that the final record of a trace is not sorted in
// non-decreasing order.
var ErrNotSorted = errors.New("step: final sequence not sorted")

// ErrIndexOutOfRange indicates a highlight referencing an index outside
// [0, len(sequence)).
var ErrIndexOutOfRange = errors.New("step: highlight index out of range")

// ErrBadHighlight indicates a structurally malformed highlight, e.g. a
// comparison naming fewer than two distinct indices, or a final record that
// still highlights something.
var ErrBadHighlight = errors.New("step: malformed highlight")
