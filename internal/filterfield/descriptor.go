// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filterfield

import (
	"fmt"
	"sort"
	"strings"
)

// Descriptor is the filter configuration of one column.
type Descriptor struct {
	// Store property to filter on. Defaults to the column's data key.
	Property string `yaml:"property" json:"property"`
	// Operator overriding the kind default. Empty means use the default.
	Operator string `yaml:"operator" json:"operator"`
	// Input kind.
	Kind Kind `yaml:"kind" json:"kind"`
	// Remaining keys, passed through to the input widget.
	Options map[string]any `yaml:"options" json:"options"`
}

// reservedKeys are consumed by the descriptor and not passed through.
var reservedKeys = map[string]bool{
	"property": true,
	"operator": true,
	"kind":     true,
	"xtype":    true,
}

// NewDescriptor builds a Descriptor for column from its raw filter config.
// raw may be a map decoded from YAML or JSON, or a Descriptor.
func NewDescriptor(column *Column, raw any) (*Descriptor, error) {
	var d Descriptor

	switch cfg := raw.(type) {
	case Descriptor:
		d = cfg
	case *Descriptor:
		if cfg == nil {
			return nil, fmt.Errorf("%w: column %q: nil descriptor", ErrConfig, column.Name())
		}
		d = *cfg
	case map[string]any:
		if err := d.fromMap(cfg); err != nil {
			return nil, fmt.Errorf("column %q: %w", column.Name(), err)
		}
	case map[string]string:
		m := make(map[string]any, len(cfg))
		for k, v := range cfg {
			m[k] = v
		}
		if err := d.fromMap(m); err != nil {
			return nil, fmt.Errorf("column %q: %w", column.Name(), err)
		}
	case bool:
		// "filter: true" enables a text filter with defaults.
		if !cfg {
			return nil, fmt.Errorf("%w: column %q: filter is disabled", ErrConfig, column.Name())
		}
		d.Kind = KindText
	default:
		return nil, fmt.Errorf("%w: column %q: filter config must be a map, got %T", ErrConfig, column.Name(), raw)
	}

	if d.Kind == "" {
		d.Kind = KindText
	} else {
		k, err := ParseKind(string(d.Kind))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", column.Name(), err)
		}
		d.Kind = k
	}

	if d.Operator != "" && !IsOperator(d.Operator) {
		return nil, fmt.Errorf("%w: column %q: unknown operator %q", ErrConfig, column.Name(), d.Operator)
	}

	if d.Property == "" {
		d.Property = column.DataKey
	}
	if d.Property == "" {
		return nil, fmt.Errorf("%w: column %q: no property and no data key", ErrConfig, column.Name())
	}

	return &d, nil
}

func (d *Descriptor) fromMap(m map[string]any) error {
	str := func(key string) (string, error) {
		v, ok := m[key]
		if !ok || v == nil {
			return "", nil
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("%w: %s must be a string, got %T", ErrConfig, key, v)
		}
		return strings.TrimSpace(s), nil
	}

	var err error
	if d.Property, err = str("property"); err != nil {
		return err
	}
	if d.Operator, err = str("operator"); err != nil {
		return err
	}

	kind, err := str("kind")
	if err != nil {
		return err
	}
	if kind == "" {
		// Older definitions name the widget type instead.
		if kind, err = str("xtype"); err != nil {
			return err
		}
	}
	d.Kind = Kind(kind)

	for k, v := range m {
		if reservedKeys[k] {
			continue
		}
		if d.Options == nil {
			d.Options = make(map[string]any)
		}
		d.Options[k] = v
	}

	return nil
}

// Option returns the passthrough widget option named key.
func (d *Descriptor) Option(key string) (any, bool) {
	v, ok := d.Options[key]
	return v, ok
}

// StringOption returns a passthrough option as a string, or def.
func (d *Descriptor) StringOption(key, def string) string {
	if v, ok := d.Options[key].(string); ok {
		return v
	}
	return def
}

// Choices returns the "choices" option of a choice column, sorted when it was
// given as a map.
func (d *Descriptor) Choices() []string {
	switch v := d.Options["choices"].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case map[string]any:
		out := make([]string, 0, len(v))
		for k := range v {
			out = append(out, k)
		}
		sort.Strings(out)
		return out
	}
	return nil
}
