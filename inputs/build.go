// SPDX-License-Identifier: MIT

package inputs

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind selects the shape of a synthetic dataset.
type Kind int

const (
	Random Kind = iota
	Sorted
	Reversed
	NearlySorted
	FewUnique
	AllEqual
	Sawtooth
	numKinds
)

var kindNames = [numKinds]string{
	Random:       "random",
	Sorted:       "sorted",
	Reversed:     "reversed",
	NearlySorted: "nearly-sorted",
	FewUnique:    "few-unique",
	AllEqual:     "all-equal",
	Sawtooth:     "sawtooth",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every dataset kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind resolves a kind name. Matching ignores case and the separators
// '-', '_' and ' ', so "nearly-sorted", "NearlySorted" and "nearly sorted"
// are the same kind.
func ParseKind(s string) (Kind, error) {
	want := normalizeKind(s)
	for k, name := range kindNames {
		if normalizeKind(name) == want {
			return Kind(k), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
}

func normalizeKind(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// Default returns the sequence traces start from when no input is given.
func Default() []float64 {
	return []float64{5, 3, 8, 9, 10, 2, 1, 4, 6, 7}
}

// Build returns a dataset of n values shaped by kind.
//
// Shapes, for the range [lo, hi]:
//
//	Random        independent uniform draws
//	Sorted        evenly spaced ascending ramp from lo to hi
//	Reversed      the Sorted ramp, descending
//	NearlySorted  the Sorted ramp with ceil(n/10) random adjacent swaps
//	FewUnique     uniform draws from 4 evenly spaced levels
//	AllEqual      n copies of the range midpoint
//	Sawtooth      3 ascending ramps laid end to end
//
// Errors: ErrUnknownKind, ErrBadSize (n < 1), ErrNeedRandSource.
// Complexity: O(n) time and space.
func Build(kind Kind, n int, opts ...Option) ([]float64, error) {
	if kind < 0 || kind >= numKinds {
		return nil, errors.Wrapf(ErrUnknownKind, "kind %d", int(kind))
	}
	if n < 1 {
		return nil, errors.Wrapf(ErrBadSize, "%s: n=%d", kind, n)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && kind.stochastic() {
		return nil, errors.Wrapf(ErrNeedRandSource, "%s", kind)
	}

	out := make([]float64, n)
	switch kind {
	case Random:
		for i := range out {
			out[i] = cfg.lo + cfg.rng.Float64()*(cfg.hi-cfg.lo)
		}
	case Sorted:
		for i := range out {
			out[i] = cfg.ramp(i, n)
		}
	case Reversed:
		for i := range out {
			out[i] = cfg.ramp(n-1-i, n)
		}
	case NearlySorted:
		for i := range out {
			out[i] = cfg.ramp(i, n)
		}
		if n > 1 {
			swaps := (n + nearlySortedDivisor - 1) / nearlySortedDivisor
			for s := 0; s < swaps; s++ {
				j := cfg.rng.Intn(n - 1)
				out[j], out[j+1] = out[j+1], out[j]
			}
		}
	case FewUnique:
		for i := range out {
			out[i] = cfg.ramp(cfg.rng.Intn(fewUniqueLevels), fewUniqueLevels)
		}
	case AllEqual:
		mid := cfg.lo + (cfg.hi-cfg.lo)/2
		for i := range out {
			out[i] = mid
		}
	case Sawtooth:
		period := (n + sawTeeth - 1) / sawTeeth
		for i := range out {
			out[i] = cfg.ramp(i%period, period)
		}
	}

	if cfg.integers {
		for i, v := range out {
			out[i] = math.Round(v)
		}
	}
	return out, nil
}

func (k Kind) stochastic() bool {
	return k == Random || k == NearlySorted || k == FewUnique
}

// ramp returns the i-th of m evenly spaced points from lo to hi; lo when m is 1.
func (c config) ramp(i, m int) float64 {
	if m < 2 {
		return c.lo
	}
	return c.lo + (c.hi-c.lo)*float64(i)/float64(m-1)
}
