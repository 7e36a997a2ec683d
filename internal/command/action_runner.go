// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/gridfilter/internal/config"
	"github.com/tfctl/gridfilter/internal/grid"
)

// GridActionRunner encapsulates the action pattern shared by the grid
// subcommands. It handles the meta logging, the tldr short-circuit and the
// grid definition load, with the command's own work provided by RunFn.
type GridActionRunner struct {
	CommandName string
	RunFn       func(context.Context, *cli.Command, *grid.Definition) error
}

// Run executes the action with the provided context and command.
func (r *GridActionRunner) Run(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	if len(m.Args) > 1 {
		log.Debugf("Executing action for %v", m.Args[1:])
	}

	if ShortCircuitTLDR(ctx, cmd, r.CommandName) {
		return nil
	}

	config.Config.Namespace = r.CommandName

	def, err := LoadGrid(cmd)
	if err != nil {
		return err
	}

	return r.RunFn(ctx, cmd, def)
}

// NewGridActionRunner creates a GridActionRunner for commandName.
func NewGridActionRunner(
	commandName string,
	runFn func(context.Context, *cli.Command, *grid.Definition) error,
) *GridActionRunner {
	return &GridActionRunner{
		CommandName: commandName,
		RunFn:       runFn,
	}
}
