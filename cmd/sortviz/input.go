// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortsteps/inputs"
	"github.com/katalvlaran/sortsteps/sorting"
	"github.com/katalvlaran/sortsteps/step"
)

// inputFlags selects the sequence a trace starts from: explicit values,
// a synthetic dataset, or the default array.
type inputFlags struct {
	values   string
	dataset  string
	size     int
	seed     int64
	fraction bool
	maxSteps int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&f.values, "input", "i", "", `values to sort, e.g. "5,3,8" or "[5 3 8]"`)
	cmd.Flags().StringVarP(
		&f.dataset, "dataset", "d", "",
		"synthetic dataset: random, sorted, reversed, nearly-sorted, few-unique, all-equal, sawtooth")
	cmd.Flags().IntVarP(
		&f.size, "size", "n", 10, "dataset length")
	cmd.Flags().Int64Var(
		&f.seed, "seed", 1, "dataset seed")
	cmd.Flags().BoolVar(
		&f.fraction, "fractions", false, "keep fractional dataset values instead of rounding")
	cmd.Flags().IntVar(
		&f.maxSteps, "max-steps", 0, "abort when a trace grows beyond this many steps (0, unlimited)")
}

// sequence resolves the flags to the input sequence.
func (f *inputFlags) sequence() ([]float64, error) {
	switch {
	case f.values != "" && f.dataset != "":
		return nil, errors.New("--input and --dataset are mutually exclusive")
	case f.values != "":
		return inputs.Parse(f.values)
	case f.dataset != "":
		kind, err := inputs.ParseKind(f.dataset)
		if err != nil {
			return nil, err
		}
		opts := []inputs.Option{inputs.WithSeed(f.seed)}
		if !f.fraction {
			opts = append(opts, inputs.WithIntegers())
		}
		return inputs.Build(kind, f.size, opts...)
	default:
		return inputs.Default(), nil
	}
}

// generate builds the trace of id over seq, honoring --max-steps,
// --verbose and ctx.
func (c *config) generate(ctx context.Context, id sorting.AlgorithmID, seq []float64) (*step.Trace, error) {
	opts := []sorting.Option{
		sorting.WithContext(ctx),
		sorting.WithMaxSteps(c.input.maxSteps),
	}
	if c.verbose {
		opts = append(opts, sorting.WithOnStep(func(i int, s step.Step) error {
			log.Printf("%s %5d %s", id, i, s)
			return nil
		}))
	}
	tr, err := sorting.GenerateTrace(id, seq, opts...)
	return tr, errors.Wrapf(err, "%s", id)
}

// parseAlgorithms resolves command arguments; none means all algorithms.
func parseAlgorithms(args []string) ([]sorting.AlgorithmID, error) {
	if len(args) == 0 {
		return sorting.Algorithms(), nil
	}
	ids := make([]sorting.AlgorithmID, len(args))
	for i, a := range args {
		id, err := sorting.ParseAlgorithm(a)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// commandContext returns the context cmd was executed with, or Background.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
