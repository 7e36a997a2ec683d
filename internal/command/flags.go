// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/gridfilter/internal/filterfield"
)

var tldrFlag *cli.BoolFlag = &cli.BoolFlag{
	Name:        "tldr",
	Usage:       "show tldr page",
	Hidden:      !pathHas("tldr"),
	HideDefault: true,
}

// NewGlobalFlags returns the flags shared by the batch commands. Values not
// given on the command line are looked up as ns.<flag> and then <flag> in the
// config file at path.
func NewGlobalFlags(ns string, path string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "ago",
			Usage:   "show dates as time ago",
			Value:   false,
			Sources: configSources(ns, "ago", path),
		},
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of columns to include in results",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
			Sources: configSources(ns, "color", path, "GRIDFILTER_COLOR"),
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringSliceFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "COLUMN[:OPERATOR]=TEXT typed into a column's filter input",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Sources: configSources(ns, "output", path),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:    "padding",
			Aliases: []string{"p"},
			Usage:   "spaces between text columns",
			Value:   2,
			Sources: configSources(ns, "padding", path),
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of columns to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
			Sources: configSources(ns, "titles", path),
		},
	}

	return
}

// NewDelayFlag constructs the --delay flag, in milliseconds. Zero keeps the
// grid's own delay.
func NewDelayFlag(ns string, path string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "delay",
		Aliases: []string{"d"},
		Usage:   "milliseconds of quiet input before a filter applies",
		Sources: configSources(ns, "delay", path, "GRIDFILTER_DELAY"),
		Validator: func(value int) error {
			return FlagValidators(value, NonNegativeValidator)
		},
	}
}

// NewActivateKeyFlag constructs the --activate-key flag naming the column
// config key that enables filtering.
func NewActivateKeyFlag(ns string, path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "activate-key",
		Aliases: []string{"k"},
		Usage:   "column config key that enables a filter (default \"" + filterfield.DefaultActivateKey + "\")",
		Sources: configSources(ns, "activateKey", path, "GRIDFILTER_ACTIVATE_KEY"),
	}
}

// configSources chains env vars, then ns.key and key from the config file at
// path.
func configSources(ns string, key string, path string, envs ...string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain()
	for _, e := range envs {
		chain.Chain = append(chain.Chain, cli.EnvVar(e))
	}

	if path != "" {
		if ns != "" {
			chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+key, altsrc.StringSourcer(path)))
		}
		chain.Chain = append(chain.Chain, yaml.YAML(key, altsrc.StringSourcer(path)))
	}

	return chain
}

// pathHas reports whether target is an executable on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
