// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sortsteps/render"
	"github.com/katalvlaran/sortsteps/step"
)

type statsConfig struct {
	*config
	plot       bool
	plotHeight int
}

func newStatsCmd(cfg *config) *cobra.Command {
	sc := &statsConfig{config: cfg}
	cmd := &cobra.Command{
		Use:   "stats [algorithm...]",
		Short: "compare operation counts across algorithms (all when none given)",
		RunE:  sc.run,
	}
	cmd.Flags().BoolVar(
		&sc.plot, "plot", false, "plot the inversion count per step of every trace")
	cmd.Flags().IntVar(
		&sc.plotHeight, "plot-height", render.DefaultPlotHeight, "height of each plot")
	return cmd
}

func (sc *statsConfig) run(cmd *cobra.Command, args []string) error {
	ids, err := parseAlgorithms(args)
	if err != nil {
		return err
	}
	seq, err := sc.input.sequence()
	if err != nil {
		return err
	}

	traces := make([]*step.Trace, len(ids))
	g, ctx := errgroup.WithContext(commandContext(cmd))
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range ids {
		g.Go(func() error {
			tr, err := sc.generate(ctx, id, seq)
			traces[i] = tr
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "input: %s\n", step.FormatValues(seq))
	rows := make([]render.CounterRow, len(ids))
	for i, id := range ids {
		rows[i] = render.RowOf(string(id), traces[i])
	}
	if err := render.Counters(w, rows); err != nil {
		return err
	}
	if sc.plot {
		for _, tr := range traces {
			fmt.Fprintf(w, "\n%s\n", render.Progress(tr, sc.plotHeight))
		}
	}
	return nil
}
