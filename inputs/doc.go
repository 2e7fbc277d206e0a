// SPDX-License-Identifier: MIT

// Package inputs produces the initial sequences that sorting traces start
// from: the fixed default array, deterministic synthetic datasets, and
// sequences parsed from user text.
//
// Datasets follow one contract:
//   - Build(kind, n, opts...) returns exactly n values or an error.
//   - Output is a pure function of (kind, n, options). Stochastic kinds
//     (Random, NearlySorted, FewUnique) require WithSeed or WithRand and fail
//     with ErrNeedRandSource otherwise.
//   - Values lie in the closed range set by WithRange (default [1, 100]).
//
// Option constructors panic on meaningless values; Build itself never panics.
//
// Example:
//
//	seq, err := inputs.Build(inputs.Random, 12, inputs.WithSeed(7), inputs.WithIntegers())
//	if err != nil {
//		return err
//	}
//	tr, err := sorting.GenerateTrace(sorting.Quick, seq)
package inputs
