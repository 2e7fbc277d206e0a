// SPDX-License-Identifier: MIT

package sorting

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/sortsteps/step"
)

// GenerateTrace runs algorithm id over a private copy of input and returns
// the complete trace.
//
// Steps:
//  1. Resolve id; an unknown id fails with ErrUnknownAlgorithm before any work.
//  2. Emit the start step (line 1 of the listing).
//  3. Run the generator against one owned working buffer.
//  4. Emit the final step: sorted sequence, no highlight, no code line.
//
// Generation is all-or-nothing: on ErrStepLimit, a cancelled context or a
// hook error no partial trace is returned. input is never modified.
//
// Complexity: the algorithm's own time, times O(n) per emitted step for the
// snapshot copy.
func GenerateTrace(id AlgorithmID, input []float64, opts ...Option) (*step.Trace, error) {
	// 1. resolve
	e, ok := lookup(id)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", string(id))
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. start
	t := newTracer(id, input, o)
	t.emit(1, step.None{}, "Start %s on %d values", e.title, len(input))

	// 3. run
	if !t.stopped() {
		e.run(t)
	}

	// 4. final
	t.emit(0, step.None{}, "Sorted")

	return t.trace()
}

// MustGenerate is GenerateTrace for known-good arguments; it panics on error.
// Intended for examples and tests.
func MustGenerate(id AlgorithmID, input []float64, opts ...Option) *step.Trace {
	tr, err := GenerateTrace(id, input, opts...)
	if err != nil {
		panic(err)
	}
	return tr
}
