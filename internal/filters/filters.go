// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tfctl/gridfilter/internal/filterfield"
	"github.com/tfctl/gridfilter/internal/log"
)

// filterRegex splits a filter expression into property, operator and target.
// Two-character operators are listed first so ">=" is not read as ">".
var filterRegex = regexp.MustCompile(`^([^!=<>~@]*)(!=|>=|<=|=|>|<|~|@)(.*)$`)

// symbols maps expression operators onto store operator names.
var symbols = map[string]string{
	"=":  filterfield.OpEq,
	"!=": filterfield.OpNe,
	">":  filterfield.OpGt,
	">=": filterfield.OpGte,
	"<":  filterfield.OpLt,
	"<=": filterfield.OpLte,
	"~":  filterfield.OpLike,
	"@":  filterfield.OpIn,
}

// BuildFilters parses a filter specification such as
// "age>=30,name~jo,state@CA|NY" into applied filters. Invalid entries are
// logged and skipped. A later entry for the same property replaces an
// earlier one, as a store would.
func BuildFilters(spec string) []filterfield.AppliedFilter {
	//nolint:prealloc
	var result []filterfield.AppliedFilter

	if strings.TrimSpace(spec) == "" {
		return result
	}

	// Default delimiter is ",", allow an override for values containing commas.
	delim := ","
	if d, ok := os.LookupEnv("GRIDFILTER_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	index := make(map[string]int)
	for _, entry := range strings.Split(spec, delim) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(entry)
		if parts == nil {
			log.Errorf("invalid filter: %s", entry)
			continue
		}

		property := strings.TrimSpace(parts[1])
		if property == "" {
			log.Errorf("invalid filter: empty property in %s", entry)
			continue
		}

		f := filterfield.AppliedFilter{
			Property: property,
			Operator: symbols[parts[2]],
			Value:    parts[3],
		}
		if f.Operator == filterfield.OpIn {
			f.Value = strings.Split(parts[3], "|")
		}

		if i, ok := index[property]; ok {
			result[i] = f
			continue
		}
		index[property] = len(result)
		result = append(result, f)
	}

	return result
}

// Match reports whether a row value satisfies f. A missing value never
// matches.
func Match(value any, f filterfield.AppliedFilter) bool {
	if value == nil {
		return false
	}

	if f.Operator == filterfield.OpIn {
		return checkContainsOperand(value, f)
	}

	if target, ok := f.Value.(time.Time); ok {
		return checkDateOperand(value, target, f.Operator)
	}

	if num, ok := toFloat64(value); ok {
		if target, ok := numericTarget(f.Value); ok {
			return checkNumericOperand(num, target, f.Operator)
		}
	}

	return checkStringOperand(toString(value), toString(f.Value), f.Operator)
}

// MatchAll reports whether lookup satisfies every filter. lookup returns the
// row value for a property.
func MatchAll(lookup func(property string) any, filters []filterfield.AppliedFilter) bool {
	for _, f := range filters {
		if !Match(lookup(f.Property), f) {
			return false
		}
	}
	return true
}

// checkContainsOperand evaluates "in": the row value, or any element of a
// list row value, must be one of the filter's values.
func checkContainsOperand(value any, f filterfield.AppliedFilter) bool {
	var wanted []string
	switch v := f.Value.(type) {
	case []string:
		wanted = v
	case []any:
		for _, item := range v {
			wanted = append(wanted, toString(item))
		}
	case string:
		wanted = strings.Split(v, "|")
	default:
		wanted = []string{toString(v)}
	}

	has := func(s string) bool {
		for _, w := range wanted {
			if w == s {
				return true
			}
		}
		return false
	}

	switch val := value.(type) {
	case []any:
		for _, item := range val {
			if has(toString(item)) {
				return true
			}
		}
		return false
	case map[string]any:
		for key := range val {
			if has(key) {
				return true
			}
		}
		return false
	default:
		return has(toString(val))
	}
}

// checkDateOperand compares a row value holding a date against target. A
// target at midnight compares by calendar day.
func checkDateOperand(value any, target time.Time, op string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}

	var rowTime time.Time
	var err error
	for _, layout := range []string{time.RFC3339, filterfield.DateLayout} {
		if rowTime, err = time.Parse(layout, s); err == nil {
			break
		}
	}
	if err != nil {
		log.Debugf("not a date: %q", s)
		return false
	}

	// A date-only target compares calendar days, each in its own offset.
	if target.Equal(target.Truncate(24 * time.Hour)) {
		rowTime = calendarDay(rowTime)
		target = calendarDay(target)
	}

	return compare(rowTime.Compare(target), op)
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// checkNumericOperand compares numerically.
func checkNumericOperand(value, target float64, op string) bool {
	if op == filterfield.OpLike {
		return strings.Contains(toString(value), toString(target))
	}
	return compare(cmp.Compare(value, target), op)
}

// checkStringOperand compares strings. "like" is a case-insensitive substring
// match.
func checkStringOperand(value, target string, op string) bool {
	if op == filterfield.OpLike {
		return strings.Contains(strings.ToLower(value), strings.ToLower(target))
	}
	return compare(cmp.Compare(value, target), op)
}

// compare maps a three-way comparison result onto op.
func compare(c int, op string) bool {
	switch op {
	case filterfield.OpEq:
		return c == 0
	case filterfield.OpNe:
		return c != 0
	case filterfield.OpGt:
		return c > 0
	case filterfield.OpGte:
		return c >= 0
	case filterfield.OpLt:
		return c < 0
	case filterfield.OpLte:
		return c <= 0
	default:
		log.Errorf("unsupported filtering operator: %s", op)
		return false
	}
}

// numericTarget reads a filter value as a number.
func numericTarget(v any) (float64, bool) {
	if n, ok := toFloat64(v); ok {
		return n, true
	}
	if s, ok := v.(string); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return n, err == nil
	}
	return 0, false
}

// toString renders a value for string comparison.
func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []any, map[string]any:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// toFloat64 attempts to normalize various numeric types to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
