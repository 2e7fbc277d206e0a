// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortsteps/player"
	"github.com/katalvlaran/sortsteps/sonify"
	"github.com/katalvlaran/sortsteps/sorting"
	"github.com/katalvlaran/sortsteps/tui"
)

type playConfig struct {
	*config
	interval time.Duration
	sound    bool
}

func newPlayCmd(cfg *config) *cobra.Command {
	pc := &playConfig{config: cfg}
	cmd := &cobra.Command{
		Use:   "play <algorithm>",
		Short: "step through a trace interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  pc.run,
	}
	cmd.Flags().DurationVar(
		&pc.interval, "interval", tui.DefaultInterval, "autoplay delay between steps")
	cmd.Flags().BoolVar(
		&pc.sound, "sound", false, "play a tone for every step")
	return cmd
}

func (pc *playConfig) run(cmd *cobra.Command, args []string) error {
	id, err := sorting.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}
	seq, err := pc.input.sequence()
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)
	tr, err := pc.generate(ctx, id, seq)
	if err != nil {
		return err
	}
	p := player.New()
	if err := p.Load(tr); err != nil {
		return err
	}

	opts := []tui.Option{
		tui.WithTitle(sorting.Title(id)),
		tui.WithInterval(pc.interval),
	}
	if pc.sound {
		sp, err := sonify.NewSpeaker(sonify.DefaultConfig())
		if err != nil {
			return err
		}
		if err := sp.Init(); err != nil {
			// Non-fatal, the player works without sound.
			log.Printf("sound disabled: %v", err)
		} else {
			defer sp.Close()
			opts = append(opts, tui.WithSink(sp))
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "opening terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	defer screen.Fini()

	err = tui.New(screen, p, sorting.Listing(id), opts...).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
