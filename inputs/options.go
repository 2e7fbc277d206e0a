// SPDX-License-Identifier: MIT

package inputs

import (
	"fmt"
	"math/rand"
)

const (
	defaultLo = 1.0
	defaultHi = 100.0

	// fewUniqueLevels is the number of distinct values of a FewUnique dataset.
	fewUniqueLevels = 4
	// sawTeeth is the number of ascending ramps of a Sawtooth dataset.
	sawTeeth = 3
	// nearlySortedDivisor sets how many adjacent swaps disturb a
	// NearlySorted dataset: one per started group of this many values.
	nearlySortedDivisor = 10
)

// Option customizes Build.
type Option func(*config)

// config holds every knob Build reads. Passed by value.
type config struct {
	rng      *rand.Rand
	lo, hi   float64
	integers bool
}

// newConfig starts from deterministic defaults and applies opts in order;
// later options win.
func newConfig(opts ...Option) config {
	cfg := config{lo: defaultLo, hi: defaultHi}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches r as the RNG. The stream is shared, so consecutive Build
// calls with the same r draw different values. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("inputs: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange sets the closed value range. Panics unless lo < hi.
func WithRange(lo, hi float64) Option {
	if !(lo < hi) {
		panic(fmt.Sprintf("inputs: WithRange(%g, %g): lo must be below hi", lo, hi))
	}
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}

// WithIntegers rounds every generated value to the nearest integer.
func WithIntegers() Option {
	return func(c *config) {
		c.integers = true
	}
}
