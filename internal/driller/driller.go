// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// segmentRegex matches one path segment: a key with an optional [n] or [*].
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

// Drill navigates a row using a dotted property path such as "address.city"
// or "tags[1]". A list without an index yields its only element when it has
// one element and the whole list otherwise. A row key containing dots is
// matched literally before the path is split.
func Drill(row gjson.Result, path string) gjson.Result {
	if strings.Contains(path, ".") {
		if v := row.Get(gjson.Escape(path)); v.Exists() {
			return v
		}
	}

	current := row
	for _, p := range strings.Split(path, ".") {
		matches := segmentRegex.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{}
		}

		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(gjson.Escape(matches[1]))
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 {
					val = arr[0]
				}
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}

// Value is Drill followed by conversion to a Go value. Missing paths and
// JSON null both yield nil.
func Value(row gjson.Result, path string) any {
	r := Drill(row, path)
	if !r.Exists() {
		return nil
	}
	return r.Value()
}
