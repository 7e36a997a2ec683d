// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/gridfilter/internal/log"
)

// lengthRegex finds the length part of a transform spec.
var lengthRegex = regexp.MustCompile(`-?\d+`)

// Attr is one output column of a query: the row property it reads, the title
// it is shown under and an optional transform.
type Attr struct {
	// Row property, as a dotted path.
	Key string `yaml:"key" json:"Key"`
	// Included in output, or only there for sorting.
	Include bool `yaml:"include" json:"Include"`
	// Output key and column title.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// Transform spec: t local time, T time ago, u/l case, n/-n length.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

// Transform applies the attr's transform spec to a value. Only strings are
// transformed.
func (a *Attr) Transform(value interface{}) interface{} {
	result, ok := value.(string)
	if !ok {
		log.Tracef("non-string value: value=%v", value)
		return value
	}

	if strings.ContainsAny(a.TransformSpec, "tT") {
		if t, ok := parseTime(result); ok {
			if strings.Contains(a.TransformSpec, "T") {
				result = humanize.Time(t)
				log.Tracef("time ago: result=%s", result)
			} else {
				result = t.Local().Format("2006-01-02T15:04:05MST")
				log.Tracef("time local: result=%s", result)
			}
		}
	}

	// The last case letter wins so a per-attr spec overrides a global one.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")
	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	// Same for length: the last number wins.
	if match := lengthRegex.FindAllString(a.TransformSpec, -1); len(match) != 0 {
		l, _ := strconv.Atoi(match[len(match)-1])
		abs := int(math.Abs(float64(l)))
		runes := []rune(result)
		if len(runes) > abs {
			if l < 0 {
				lr := max(abs/2-1, 0)
				result = string(runes[:lr]) + ".." + string(runes[len(runes)-lr:])
				log.Tracef("length middle: result=%s", result)
			} else {
				result = string(runes[:l])
				log.Tracef("length trunc: result=%s", result)
			}
		}
	}

	return result
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AttrList is the ordered set of output columns.
type AttrList []Attr

// FromColumns builds an AttrList with one included attr per key. titles, when
// given, supplies the output key for the key at the same index.
func FromColumns(keys []string, titles []string) AttrList {
	a := make(AttrList, 0, len(keys))
	for i, k := range keys {
		out := k
		if i < len(titles) && titles[i] != "" {
			out = titles[i]
		}
		a = append(a, Attr{Key: k, Include: true, OutputKey: out})
	}
	return a
}

// Set parses an --attrs spec such as "name,age:Years,joined::T,!notes" and
// merges it into the list. Each entry is key[:outputKey[:transform]]. A
// leading ! hides the attr and "*" carries a transform for every attr.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		log.Debugf("early return: value=%s", value)
		return nil
	}

	const (
		keyIdx = iota
		outputIdx
		transformIdx
	)

specloop:
	for _, spec := range strings.Split(value, ",") {
		attr := Attr{Include: true}
		fields := strings.Split(spec, ":")

		attr.Key = strings.TrimSpace(fields[keyIdx])
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}
		if attr.Key == "" {
			return fmt.Errorf("empty attr key in %q", spec)
		}
		if attr.Key == "*" {
			attr.Include = false
		}

		// Without an output key, the last path segment is used.
		if len(fields) == 1 || strings.TrimSpace(fields[outputIdx]) == "" {
			segments := strings.Split(attr.Key, ".")
			attr.OutputKey = segments[len(segments)-1]
		} else {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		}

		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}
		log.Tracef("attr parsed: key=%s output=%s spec=%s include=%v",
			attr.Key, attr.OutputKey, attr.TransformSpec, attr.Include)

		// An attr already in the list is updated in place. Only a rename
		// replaces its output key.
		for i := range *a {
			if (*a)[i].Key == attr.Key || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				if len(fields) > outputIdx && strings.TrimSpace(fields[outputIdx]) != "" {
					(*a)[i].OutputKey = attr.OutputKey
				}
				(*a)[i].TransformSpec = attr.TransformSpec
				continue specloop
			}
		}

		*a = append(*a, attr)
	}

	return nil
}

// SetGlobalTransformSpec prepends the transform of the "*" attr, if any, to
// every attr.
func (a *AttrList) SetGlobalTransformSpec() {
	spec := ""
	for _, attr := range *a {
		if attr.Key == "*" {
			spec = attr.TransformSpec
			break
		}
	}
	if spec == "" {
		return
	}

	log.Debugf("global spec: spec=%s", spec)
	for i := range *a {
		(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
	}
}

// Included returns the attrs shown in output.
func (a AttrList) Included() AttrList {
	out := make(AttrList, 0, len(a))
	for _, attr := range a {
		if attr.Include {
			out = append(out, attr)
		}
	}
	return out
}

// Keys returns every attr key except "*".
func (a AttrList) Keys() []string {
	keys := make([]string, 0, len(a))
	for _, attr := range a {
		if attr.Key != "*" {
			keys = append(keys, attr.Key)
		}
	}
	return keys
}

// String renders the list in --attrs form.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}
