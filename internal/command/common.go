// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/gridfilter/internal/attrs"
	"github.com/tfctl/gridfilter/internal/filterfield"
	"github.com/tfctl/gridfilter/internal/grid"
	"github.com/tfctl/gridfilter/internal/meta"
)

// ErrNoGrid is returned when a command is run without a grid definition.
var ErrNoGrid = errors.New("no grid definition given")

// BuildAttrs constructs an AttrList with one attr per grid column, merges
// --attrs and then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, def *grid.Definition) (attrs.AttrList, error) {
	columns := def.BuildColumns()
	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.Text
	}

	al := attrs.FromColumns(def.Keys(), titles)
	if extras := cmd.String("attrs"); extras != "" {
		if err := al.Set(extras); err != nil {
			return nil, fmt.Errorf("--attrs: %w", err)
		}
	}
	al.SetGlobalTransformSpec()

	return al, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// LoadGrid loads the grid definition named by the command's first argument,
// or the one recorded at startup, resolved against the starting directory.
func LoadGrid(cmd *cli.Command) (*grid.Definition, error) {
	path := cmd.Args().First()
	if path == "" {
		path = GetMeta(cmd).GridFile
	}
	if path == "" {
		return nil, ErrNoGrid
	}

	if !filepath.IsAbs(path) {
		if sd := GetMeta(cmd).StartingDir; sd != "" {
			path = filepath.Join(sd, path)
		}
	}

	return grid.Load(path)
}

// ControllerOptions returns the grid's options with --delay and
// --activate-key applied on top.
func ControllerOptions(cmd *cli.Command, def *grid.Definition) filterfield.Options {
	opts := def.Options()
	if key := cmd.String("activate-key"); key != "" {
		opts.ActivateKey = key
	}
	if delay := cmd.Int("delay"); delay > 0 {
		opts.Delay = time.Duration(delay) * time.Millisecond
	}
	return opts
}

// ShortCircuitTLDR shows the tldr page for subcmd when --tldr is set and
// reports whether it did.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "gridfilter", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}
