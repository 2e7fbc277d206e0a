// SPDX-License-Identifier: MIT

package step

import (
	"math"
	"slices"

	"github.com/cockroachdb/errors"
)

// Validate checks t against the input it was generated from:
//
//  1. every record has len(input) values;
//  2. every record holds the input multiset (bitwise);
//  3. every highlight index lies in [0, len), comparisons name at least
//     two distinct indices and ranges are not inverted;
//  4. the final record is sorted non-decreasing and highlights nothing.
//
// The first violation is returned, wrapped with the offending step index.
// Complexity: O(T·n log n).
func Validate(t *Trace, input []float64) error {
	if t == nil || t.Len() == 0 {
		return ErrEmptyTrace
	}

	want := multiset(input)
	for i, s := range t.steps {
		// 1. length
		if s.Len() != len(input) {
			return errors.Wrapf(ErrLengthChanged, "step %d: len %d, want %d", i, s.Len(), len(input))
		}
		// 2. multiset
		if !slices.Equal(multiset(s.seq), want) {
			return errors.Wrapf(ErrValuesChanged, "step %d: %s", i, FormatValues(s.seq))
		}
		// 3. highlight
		if err := checkHighlight(s.Highlight(), s.Len()); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
	}

	// 4. final record
	last := t.Last()
	if !isSorted(last.seq) {
		return errors.Wrapf(ErrNotSorted, "final step %d: %s", t.Len()-1, FormatValues(last.seq))
	}
	if last.Kind() != KindNone {
		return errors.Wrapf(ErrBadHighlight, "final step %d highlights %s", t.Len()-1, last.Highlight())
	}

	return nil
}

func checkHighlight(h Highlight, n int) error {
	for _, idx := range h.Refs() {
		if idx < 0 || idx >= n {
			return errors.Wrapf(ErrIndexOutOfRange, "%s: index %d, len %d", h, idx, n)
		}
	}

	switch v := h.(type) {
	case Comparison:
		if len(v.Indices) < 2 {
			return errors.Wrapf(ErrBadHighlight, "%s: need two indices", h)
		}
		distinct := slices.Clone(v.Indices)
		slices.Sort(distinct)
		if len(slices.Compact(distinct)) < 2 {
			return errors.Wrapf(ErrBadHighlight, "%s: indices not distinct", h)
		}
	case MergeRange:
		if v.Left > v.Right {
			return errors.Wrapf(ErrBadHighlight, "%s: left > right", h)
		}
	case TimPhase:
		if v.Start > v.End {
			return errors.Wrapf(ErrBadHighlight, "%s: start > end", h)
		}
		if v.Mid != Absent && (v.Mid < v.Start || v.Mid >= v.End) {
			return errors.Wrapf(ErrBadHighlight, "%s: mid outside [start, end)", h)
		}
	case CocktailRange:
		if v.Start > v.End {
			return errors.Wrapf(ErrBadHighlight, "%s: start > end", h)
		}
	case Strand:
		seen := make(map[int]bool, n)
		for _, group := range [][]int{v.Input, v.Sublist, v.Result} {
			for _, idx := range group {
				if seen[idx] {
					return errors.Wrapf(ErrBadHighlight, "%s: index %d in two lists", h, idx)
				}
				seen[idx] = true
			}
		}
	}
	return nil
}

// multiset returns the bit patterns of vals, sorted, so that NaN payloads
// and signed zeros are compared exactly.
func multiset(vals []float64) []uint64 {
	bits := make([]uint64, len(vals))
	for i, v := range vals {
		bits[i] = math.Float64bits(v)
	}
	slices.Sort(bits)
	return bits
}

// isSorted reports non-decreasing order. A NaN never breaks order: strict
// comparisons against NaN are false, which matches how the generators treat
// it.
func isSorted(vals []float64) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i-1] > vals[i] {
			return false
		}
	}
	return true
}
