// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/gridfilter/internal/filterfield"
	"github.com/tfctl/gridfilter/internal/filters"
	"github.com/tfctl/gridfilter/internal/grid"
	"github.com/tfctl/gridfilter/internal/meta"
	"github.com/tfctl/gridfilter/internal/output"
	"github.com/tfctl/gridfilter/internal/store"
)

// queryCommandAction is the action handler for the "query" subcommand. It
// filters a grid's rows without a screen and emits the result.
func queryCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewGridActionRunner("query", runQuery).Run(ctx, cmd)
}

func runQuery(_ context.Context, cmd *cli.Command, def *grid.Definition) error {
	s, err := def.OpenStore()
	if err != nil {
		return err
	}

	if err := applyFilters(cmd, def, s); err != nil {
		return err
	}

	al, err := BuildAttrs(cmd, def)
	if err != nil {
		return err
	}
	log.Debugf("attrs: %v", al.String())

	records := s.Records(al.Keys())
	if cmd.Bool("titles") {
		cmd.Metadata["header"] = def.Title
		cmd.Metadata["footer"] = fmt.Sprintf("%s of %s rows",
			humanize.Comma(int64(len(records))), humanize.Comma(int64(s.Len())))
	}

	return output.SliceDiceSpit(records, al, cmd, cmd.Root().Writer)
}

// applyFilters types each --input into its column's filter, the way the
// interactive grid would, then adds the raw --filter spec on top.
func applyFilters(cmd *cli.Command, def *grid.Definition, s *store.Store) error {
	ctrl, err := filterfield.New(ControllerOptions(cmd, def))
	if err != nil {
		return err
	}
	defer ctrl.Close()

	host := grid.NewHeadless(s)
	if err := ctrl.Attach(host, def.BuildColumns()); err != nil {
		return err
	}
	if err := host.Type(ctrl, cmd.StringSlice("input")); err != nil {
		return err
	}

	for _, f := range filters.BuildFilters(cmd.String("filter")) {
		s.AddFilter(f)
	}

	log.Debugf("active filters: %v", s.Filters())
	return nil
}

// queryCommandBuilder constructs the cli.Command for "query".
func queryCommandBuilder(meta meta.Meta) *cli.Command {
	flags := append(NewGlobalFlags("query", meta.Config.Source),
		NewActivateKeyFlag("query", meta.Config.Source),
	)

	return (&CommandBuilder{
		Name:      "query",
		Usage:     "filter a grid and print the rows",
		UsageText: "gridfilter query GRID.yaml [options]",
		Flags:     flags,
		Action:    queryCommandAction,
		Meta:      meta,
	}).Build()
}
