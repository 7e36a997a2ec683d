// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filterfield

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tfctl/gridfilter/internal/log"
)

// DateLayout is the layout date inputs are typed in.
const DateLayout = "2006-01-02"

// ParseValue converts raw input text into the value a store filters with.
// Input that does not parse for its kind yields nil, which reads as empty.
func ParseValue(kind Kind, raw string) any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	switch kind {
	case KindNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Debugf("ignoring non-numeric input %q", raw)
			return nil
		}
		return n
	case KindDate:
		for _, layout := range []string{DateLayout, time.RFC3339} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t
			}
		}
		log.Debugf("ignoring unparseable date %q", raw)
		return nil
	case KindChoice:
		var choices []string
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				choices = append(choices, c)
			}
		}
		if len(choices) == 0 {
			return nil
		}
		return choices
	default:
		return raw
	}
}

// FormatValue renders a field value back to input text.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(DateLayout)
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// IsEmpty reports whether v counts as no input.
func IsEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case time.Time:
		return val.IsZero()
	}
	return false
}
