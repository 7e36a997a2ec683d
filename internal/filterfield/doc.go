// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filterfield puts filter inputs in the header of grid columns and
// turns what the user types into store filters.
//
// A column opts in by carrying a filter config under the controller's
// activate key (default "filter"):
//
//	columns:
//	  - dataIndex: age
//	    text: Age
//	    filter:
//	      kind: number
//	  - dataIndex: name
//	    text: Name
//	    filter:
//	      kind: text
//	      placeholder: search names
//
// Input is debounced per controller: only the last change within the delay
// (default 800ms) takes effect. An empty input removes the column's filter,
// anything else adds or replaces it. The operator is taken from the field's
// operator button (number and date columns), else the column config, else
// the kind default: like for text, in for choice, eq otherwise.
//
// The controller reaches the UI only through the Header interface and the
// store only through the Store interface, so any toolkit can host it.
package filterfield
