// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for gridfilter's user
// configuration. The configuration is a YAML document located at
// $GRIDFILTER_CFG_FILE or, failing that, gridfilter.yaml in the directory
// returned by os.UserConfigDir.
//
// Keys are dotted paths. When a namespace (the subcommand name) is set,
// "query.padding" is preferred over "padding". Typical content:
//
//	delay: 500
//	activateKey: filter
//	query:
//	  padding: 2
//	  adults:
//	    - --filter age>=18
//	colors:
//	  title: "#f6be00"
package config
