// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortsteps/render"
	"github.com/katalvlaran/sortsteps/sorting"
	"github.com/katalvlaran/sortsteps/step"
)

var formats = []string{"table", "text", "lines", "json", "debug"}

type traceConfig struct {
	*config
	format string
	height int
	check  bool
}

// traceDocument is the JSON form of a trace.
type traceDocument struct {
	Algorithm string          `json:"algorithm"`
	Title     string          `json:"title"`
	Input     []float64       `json:"input"`
	Counters  step.Counters   `json:"counters"`
	Steps     []step.Snapshot `json:"steps"`
}

func newTraceCmd(cfg *config) *cobra.Command {
	tc := &traceConfig{config: cfg}
	cmd := &cobra.Command{
		Use:   "trace <algorithm>",
		Short: "generate and print the step trace of one algorithm",
		Long: `Generate the complete step trace of one algorithm and print it.

Formats:
  table  one row per step
  text   every step drawn as bars with the listing
  lines  one compact line per step
  json   machine-readable document
  debug  Go-syntax dump of every step snapshot`,
		Args: cobra.ExactArgs(1),
		RunE: tc.run,
	}
	cmd.Flags().StringVarP(
		&tc.format, "format", "f", "table", fmt.Sprintf("output format %v", formats))
	cmd.Flags().IntVar(
		&tc.height, "height", render.DefaultHeight, "bar height of the text format")
	cmd.Flags().BoolVar(
		&tc.check, "check", false, "validate the trace invariants before printing")
	return cmd
}

func (tc *traceConfig) run(cmd *cobra.Command, args []string) error {
	id, err := sorting.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}
	seq, err := tc.input.sequence()
	if err != nil {
		return err
	}
	tr, err := tc.generate(commandContext(cmd), id, seq)
	if err != nil {
		return err
	}
	if tc.check {
		if err := step.Validate(tr, seq); err != nil {
			return errors.Wrapf(err, "%s trace is invalid", id)
		}
	}
	return tc.write(cmd.OutOrStdout(), id, seq, tr)
}

func (tc *traceConfig) write(w io.Writer, id sorting.AlgorithmID, seq []float64, tr *step.Trace) error {
	switch tc.format {
	case "table":
		return render.Table(w, tr)
	case "lines":
		for _, s := range tr.Steps() {
			if err := (render.Line{}).Render(w, s); err != nil {
				return err
			}
		}
		return nil
	case "text":
		r := &render.Text{Height: tc.height, Listing: sorting.Listing(id)}
		for i, s := range tr.Steps() {
			fmt.Fprintf(w, "--- step %d/%d ---\n", i+1, tr.Len())
			if err := r.Render(w, s); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(traceDocument{
			Algorithm: string(id),
			Title:     sorting.Title(id),
			Input:     seq,
			Counters:  tr.Counters(),
			Steps:     tr.Snapshots(),
		})
	case "debug":
		_, err := pretty.Fprintf(w, "%# v\n", tr.Snapshots())
		return err
	default:
		return errors.Newf("unknown format %q, want one of %v", tc.format, formats)
	}
}
