// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters evaluates applied filters against row values and parses
// filter expressions given on the command line.
//
// Operators:
//
//   - eq, ne, gt, gte, lt, lte : ordered comparison. Numbers compare
//     numerically when the row value is a number and the target parses as
//     one, dates chronologically when the target is a time.Time, everything
//     else as strings.
//   - like : case-insensitive substring match.
//   - in : the row value (or any element of a list value) is one of the
//     targets.
//
// Expressions:
//
//   - "age>=30"      : age gte 30
//   - "name~jo"      : name like jo
//   - "state@CA|NY"  : state in [CA NY]
//   - "active!=true" : active ne true
//
// Entries are comma-delimited; set GRIDFILTER_FILTER_DELIM to use another
// delimiter when values contain commas. Invalid entries are logged and
// skipped.
package filters
