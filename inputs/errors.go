// SPDX-License-Identifier: MIT

package inputs

import "github.com/cockroachdb/errors"

// Sentinel errors. Callers branch with errors.Is; context is attached by
// wrapping at the failure site.
var (
	// ErrBadSize indicates a dataset length below 1.
	ErrBadSize = errors.New("inputs: invalid size")

	// ErrNeedRandSource indicates a stochastic kind was requested without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("inputs: rng is required")

	// ErrUnknownKind indicates a dataset kind outside Kinds().
	ErrUnknownKind = errors.New("inputs: unknown dataset kind")

	// ErrParse indicates text that does not describe a list of finite numbers.
	ErrParse = errors.New("inputs: cannot parse values")
)
