// SPDX-License-Identifier: MIT

// Package step defines the immutable records that make up a sorting trace.
//
// What:
//
//   - Step: one snapshot of an algorithm's visible array, the pseudo-code line
//     it corresponds to, a human-readable description, optional per-index
//     notes, and exactly one Highlight describing which indices play which role.
//   - Highlight: a sealed set of variants (None, Comparison, Selection,
//     Insertion, MergeRange, Pivot, HeapNodes, TimPhase, CocktailRange, Strand).
//     A renderer switches on the concrete type (or on Kind) and never needs to
//     know which algorithm produced the step.
//   - Trace: the finite, ordered, read-only list of steps produced by one
//     generator run, together with the operation Counters of that run.
//
// Guarantees:
//
//   - New copies the sequence and clones the highlight; accessors return copies.
//     A generator may keep mutating its working buffer after emitting a step
//     without ever changing that step.
//   - Traces are never empty (NewTrace rejects zero steps with ErrEmptyTrace).
//   - Validate checks every trace invariant: constant length, identical
//     multiset of values, sorted final record, in-range highlight indices.
//
// Optional index fields (HeapNodes.Left, TimPhase.Mid, Strand.Compare, ...) use
// the Absent sentinel (-1).
//
// Complexity:
//
//   - New, Sequence, Highlight: O(n) copies, n = len(sequence).
//   - Validate: O(T·n log n) for T steps (multiset comparison sorts one copy).
//
// Errors:
//
//   - ErrEmptyTrace       a trace would contain zero steps
//   - ErrLengthChanged    a record's length differs from the input length
//   - ErrValuesChanged    a record's multiset differs from the input multiset
//   - ErrNotSorted        the final record is not sorted non-decreasing
//   - ErrIndexOutOfRange  a highlight references an index outside the record
//   - ErrBadHighlight     a highlight is malformed (e.g. comparison of one index)
package step
