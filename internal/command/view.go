// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/gridfilter/internal/grid"
	"github.com/tfctl/gridfilter/internal/log"
	"github.com/tfctl/gridfilter/internal/meta"
	"github.com/tfctl/gridfilter/internal/tui"
)

// ErrNotTerminal is returned when view is run without a terminal.
var ErrNotTerminal = errors.New("view needs a terminal; use query for batch output")

// viewCommandAction is the action handler for the "view" subcommand. It opens
// the interactive grid with a filter input in every filterable header.
func viewCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewGridActionRunner("view", runView).Run(ctx, cmd)
}

func runView(ctx context.Context, cmd *cli.Command, def *grid.Definition) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	s, err := def.OpenStore()
	if err != nil {
		return err
	}

	opts := ControllerOptions(cmd, def)
	log.Debugf("view %q: activateKey=%q delay=%s", def.Title, opts.ActivateKey, opts.Delay)

	m, err := tui.New(def.Title, s, def.BuildColumns(), opts)
	if err != nil {
		return err
	}

	return m.Run(tea.WithContext(ctx))
}

// viewCommandBuilder constructs the cli.Command for "view".
func viewCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "view",
		Usage:     "interactive filterable grid",
		UsageText: "gridfilter view GRID.yaml [options]",
		Flags: []cli.Flag{
			NewActivateKeyFlag("view", meta.Config.Source),
			NewDelayFlag("view", meta.Config.Source),
		},
		Action: viewCommandAction,
		Meta:   meta,
	}).Build()
}
