// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/gridfilter/internal/command"
	"github.com/tfctl/gridfilter/internal/config"
	"github.com/tfctl/gridfilter/internal/log"
	"github.com/tfctl/gridfilter/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.String())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip set expansion and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound && len(args) > 1 && args[1] != "completion" {
		args = deduplicateFlags(processSetOnly(args))
		log.Debugf("args after set processing: args=%v", args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands an @set argument into the argument list stored in
// the config under <command>.<set>. Each list entry may hold several
// space-separated arguments.
func processSetOnly(args []string) []string {
	idx := 2
	if len(args) <= idx {
		return args
	}

	removeIdx := -1
	set := ""
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	out := append([]string{}, args[:removeIdx]...)
	setArgs, err := config.GetStringSlice(args[1] + "." + set)
	if err != nil {
		log.Warnf("no argument set %q for %s: %v", set, args[1], err)
	}
	for _, arg := range setArgs {
		out = append(out, strings.Fields(arg)...)
	}
	return append(out, args[removeIdx+1:]...)
}

// repeatable flags accumulate values and are never deduplicated.
var repeatable = map[string]bool{"input": true, "i": true}

// deduplicateFlags drops earlier occurrences of a flag so that the last one
// wins. A flag's value travels with it, either inline (--output=json) or as
// the following non-flag argument. args[0:2] are left alone.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type token struct {
		key   string
		parts []string
	}

	var tokens []token
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		if !strings.HasPrefix(a, "-") || a == "-" {
			tokens = append(tokens, token{parts: []string{a}})
			continue
		}

		name, _, inline := strings.Cut(a, "=")
		t := token{key: name, parts: []string{a}}
		if !inline && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			t.parts = append(t.parts, rest[i+1])
			i++
		}
		if repeatable[strings.TrimLeft(name, "-")] {
			t.key = ""
		}
		tokens = append(tokens, t)
	}

	last := map[string]int{}
	for i, t := range tokens {
		if t.key != "" {
			last[t.key] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, t := range tokens {
		if t.key != "" && last[t.key] != i {
			continue
		}
		out = append(out, t.parts...)
	}
	return out
}
