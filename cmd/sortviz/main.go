// SPDX-License-Identifier: MIT

// Command sortviz generates, inspects and replays sorting step traces.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// config carries the flag values shared by the subcommands.
type config struct {
	verbose bool
	input   inputFlags
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	rootCmd := &cobra.Command{
		Use:           "sortviz [command] (flags)",
		Short:         "sorting algorithm step tracer and player",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(
		&cfg.verbose, "verbose", "v", false, "log every generated step to stderr")

	traceCmd, statsCmd, playCmd := newTraceCmd(cfg), newStatsCmd(cfg), newPlayCmd(cfg)
	for _, cmd := range []*cobra.Command{traceCmd, statsCmd, playCmd} {
		cfg.input.register(cmd)
	}

	rootCmd.AddCommand(newListCmd(), traceCmd, statsCmd, playCmd)
	return rootCmd
}

func main() {
	log.SetFlags(0)
	cobra.EnableCommandSorting = false

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Printf("sortviz: %v", err)
		stop()
		os.Exit(1)
	}
}
