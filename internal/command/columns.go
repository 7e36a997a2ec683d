// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/gridfilter/internal/attrs"
	"github.com/tfctl/gridfilter/internal/filterfield"
	"github.com/tfctl/gridfilter/internal/filters"
	"github.com/tfctl/gridfilter/internal/grid"
	"github.com/tfctl/gridfilter/internal/meta"
	"github.com/tfctl/gridfilter/internal/output"
	"github.com/tfctl/gridfilter/internal/store"
)

var columnsDefaultAttrs = attrs.FromColumns(
	[]string{"column", "property", "kind", "operator", "button"},
	[]string{"Column", "Property", "Kind", "Operator", "Button"},
)

// columnsCommandAction is the action handler for the "columns" subcommand. It
// lists the grid's filterable columns and how their filters behave.
func columnsCommandAction(ctx context.Context, cmd *cli.Command) error {
	return NewGridActionRunner("columns", runColumns).Run(ctx, cmd)
}

func runColumns(_ context.Context, cmd *cli.Command, def *grid.Definition) error {
	ctrl, err := filterfield.New(ControllerOptions(cmd, def))
	if err != nil {
		return err
	}
	defer ctrl.Close()

	host := grid.NewHeadless(&store.Store{})
	if err := ctrl.Attach(host, def.BuildColumns()); err != nil {
		return err
	}

	spec := filters.BuildFilters(cmd.String("filter"))

	var records []map[string]interface{}
	for _, f := range host.Fields() {
		rec := columnRecord(f)
		lookup := func(property string) any { return rec[property] }
		if filters.MatchAll(lookup, spec) {
			records = append(records, rec)
		}
	}

	al := append(attrs.AttrList{}, columnsDefaultAttrs...)
	if extras := cmd.String("attrs"); extras != "" {
		if err := al.Set(extras); err != nil {
			return fmt.Errorf("--attrs: %w", err)
		}
	}
	al.SetGlobalTransformSpec()

	return output.SliceDiceSpit(records, al, cmd, cmd.Root().Writer)
}

func columnRecord(f *filterfield.Field) map[string]interface{} {
	c := f.Column()

	button := "no"
	if f.HasOperatorButton() {
		button = "yes"
	}

	return map[string]interface{}{
		"column":   c.Name(),
		"property": c.Property(),
		"kind":     string(c.Kind()),
		"operator": f.EffectiveOperator(),
		"button":   button,
	}
}

// columnsCommandBuilder constructs the cli.Command for "columns".
func columnsCommandBuilder(meta meta.Meta) *cli.Command {
	var flags []cli.Flag
	for _, f := range NewGlobalFlags("columns", meta.Config.Source) {
		switch f.Names()[0] {
		case "ago", "input":
			continue
		}
		flags = append(flags, f)
	}
	flags = append(flags, NewActivateKeyFlag("columns", meta.Config.Source))

	return (&CommandBuilder{
		Name:      "columns",
		Usage:     "list a grid's filterable columns",
		UsageText: "gridfilter columns GRID.yaml [options]",
		Flags:     flags,
		Action:    columnsCommandAction,
		Meta:      meta,
	}).Build()
}
