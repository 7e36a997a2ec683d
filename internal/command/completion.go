// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/gridfilter/internal/meta"
)

const bashCompletionScript = `# bash completion for gridfilter
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_gridfilter()
{
    local cur prev cmd opts
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "view query columns completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--activate-key -k --tldr"
    local output="--attrs -a --color -c --filter -f --output -o --padding -p --sort -s --titles -t"

    case "$cmd" in
        view)
            opts="$common --delay -d"
            ;;
        query)
            opts="$common $output --ago --input -i"
            ;;
        columns)
            opts="$common $output"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise complete the GRID.yaml positional.
    COMPREPLY=( $(compgen -f -X '!*.y*ml' -- "$cur") $(compgen -d -- "$cur") )
    return 0
}

complete -F _gridfilter gridfilter
`

const zshCompletionScript = `#compdef gridfilter

_gridfilter() {
  local -a cmds
  cmds=(
    'view:interactive filterable grid'
    'query:filter a grid and print the rows'
    'columns:list a grid'"'"'s filterable columns'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-k --activate-key)'{-k,--activate-key}'[column config key enabling filters]:key'
  '--tldr[show tldr page]'
  )

  local -a output
  output=(
  '(-a --attrs)'{-a,--attrs}'[columns to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-p --padding)'{-p,--padding}'[spaces between columns]:padding'
  '(-s --sort)'{-s,--sort}'[sort columns]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'gridfilter commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    view)
      _arguments -C \
        $common \
        '(-d --delay)'{-d,--delay}'[debounce delay in ms]:ms' \
        '1:grid:_files -g "*.y(a|)ml"'
      ;;
    query)
      _arguments -C \
        $common \
        $output \
        '--ago[show dates as time ago]' \
        '*'{-i,--input}'[COLUMN=TEXT typed into a filter]:input' \
        '1:grid:_files -g "*.y(a|)ml"'
      ;;
    columns)
      _arguments -C \
        $common \
        $output \
        '1:grid:_files -g "*.y(a|)ml"'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _gridfilter gridfilter
`

func completionCommandAction(_ context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	shell := cmd.Args().First()
	if shell == "" {
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: gridfilter completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "gridfilter completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
