// SPDX-License-Identifier: MIT

// Package sorting defines the algorithm identifiers, options and errors of the
// trace generators.
package sorting

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"

	"github.com/katalvlaran/sortsteps/step"
)

// AlgorithmID names one of the supported sorting algorithms.
type AlgorithmID string

const (
	Bubble    AlgorithmID = "bubble"
	Selection AlgorithmID = "selection"
	Insertion AlgorithmID = "insertion"
	Merge     AlgorithmID = "merge"
	Quick     AlgorithmID = "quick"
	Heap      AlgorithmID = "heap"
	Shell     AlgorithmID = "shell"
	Tree      AlgorithmID = "tree"
	Tim       AlgorithmID = "tim"
	Cocktail  AlgorithmID = "cocktail"
	Comb      AlgorithmID = "comb"
	Gnome     AlgorithmID = "gnome"
	Strand    AlgorithmID = "strand"
)

// SafeValue implements redact.SafeValue: identifiers are never sensitive.
func (AlgorithmID) SafeValue() {}

var _ redact.SafeValue = AlgorithmID("")

// DefaultMinMerge is the tim sort run-size threshold used by calcMinRun.
const DefaultMinMerge = 32

var (
	// ErrUnknownAlgorithm is returned by GenerateTrace and ParseAlgorithm for
	// an identifier outside Algorithms().
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrStepLimit indicates that a trace would exceed the MaxSteps option.
	ErrStepLimit = errors.New("sorting: step limit exceeded")
)

// Option configures optional behavior of GenerateTrace.
type Option func(*Options)

// Options holds the configurable parameters of one generator run.
type Options struct {
	// Ctx allows aborting a long generation; checked once per emitted step.
	Ctx context.Context

	// MaxSteps, if positive, caps the trace length. Exceeding it aborts the
	// run with ErrStepLimit. Default 0 (no limit).
	MaxSteps int

	// OnStep, if non-nil, is invoked for every emitted step with its index.
	// Returning an error aborts generation with that error.
	OnStep func(index int, s step.Step) error

	// MinMerge is the tim sort threshold below which a length is used as the
	// minimum run directly. Default DefaultMinMerge.
	MinMerge int

	// Notes enables per-index annotations on comparison steps. Default true.
	Notes bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - no step limit
//   - no hook
//   - MinMerge = DefaultMinMerge
//   - notes enabled
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnStep:   nil,
		MinMerge: DefaultMinMerge,
		Notes:    true,
	}
}

// WithContext sets the Context checked during generation. A nil context has
// no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps caps the number of steps a trace may hold. n <= 0 removes the
// cap.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithOnStep installs fn as a per-step hook.
func WithOnStep(fn func(index int, s step.Step) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMinMerge overrides the tim sort MIN_MERGE threshold.
// Panics if k < 2: a smaller threshold makes every run a single element.
func WithMinMerge(k int) Option {
	if k < 2 {
		panic("sorting: WithMinMerge(k) requires k >= 2")
	}
	return func(o *Options) {
		o.MinMerge = k
	}
}

// WithoutNotes disables per-index annotations.
func WithoutNotes() Option {
	return func(o *Options) {
		o.Notes = false
	}
}

// Algorithms returns every supported identifier in catalog order.
func Algorithms() []AlgorithmID {
	out := make([]AlgorithmID, len(catalog))
	for i, e := range catalog {
		out[i] = e.id
	}
	return out
}

// ParseAlgorithm resolves a user-supplied name. Matching ignores case and
// accepts a trailing "sort" in the forms "bubble-sort", "bubble sort",
// "bubble_sort" and "bubblesort".
func ParseAlgorithm(name string) (AlgorithmID, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, suffix := range []string{"-sort", " sort", "_sort", "sort"} {
		if trimmed, ok := strings.CutSuffix(s, suffix); ok && trimmed != "" {
			s = trimmed
			break
		}
	}
	id := AlgorithmID(s)
	if _, ok := lookup(id); !ok {
		return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
	return id, nil
}
