// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package grid

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tfctl/gridfilter/internal/filterfield"
	"github.com/tfctl/gridfilter/internal/log"
	"github.com/tfctl/gridfilter/internal/store"
)

// ErrDefinition marks a grid definition that cannot be used.
var ErrDefinition = errors.New("invalid grid definition")

// Definition is a grid described in YAML.
//
//	title: People
//	data: people.json
//	delay: 500
//	columns:
//	  - dataIndex: name
//	    text: Name
//	    filter: {kind: text}
type Definition struct {
	Title string `yaml:"title"`
	// Path of a JSON dataset, relative to the definition file.
	Data string `yaml:"data"`
	// Inline rows, used when Data is empty.
	Rows []map[string]interface{} `yaml:"rows"`
	// Column config key enabling filters. Empty means "filter".
	ActivateKey string `yaml:"activateKey"`
	// Debounce delay in milliseconds. Zero means the default.
	Delay int `yaml:"delay"`
	// Raw column configs.
	Columns []map[string]interface{} `yaml:"columns"`

	dir string
}

// Load reads and validates a definition file.
func Load(path string) (*Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid definition: %w", err)
	}

	d, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.dir = filepath.Dir(path)

	log.Debugf("loaded grid %q from %s with %d columns", d.Title, path, len(d.Columns))
	return d, nil
}

// Parse decodes and validates a definition.
func Parse(raw []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, err)
	}

	if len(d.Columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrDefinition)
	}
	if d.Delay < 0 {
		return nil, fmt.Errorf("%w: negative delay %d", ErrDefinition, d.Delay)
	}
	for i, c := range d.Columns {
		if key, _ := c["dataIndex"].(string); key == "" {
			return nil, fmt.Errorf("%w: column %d has no dataIndex", ErrDefinition, i+1)
		}
	}

	return &d, nil
}

// Options returns controller options carrying the definition's overrides.
func (d *Definition) Options() filterfield.Options {
	return filterfield.Options{
		ActivateKey: d.ActivateKey,
		Delay:       time.Duration(d.Delay) * time.Millisecond,
	}
}

// BuildColumns converts the raw column configs into controller columns. The
// whole map is kept as the column config so any activate key works.
func (d *Definition) BuildColumns() []*filterfield.Column {
	columns := make([]*filterfield.Column, 0, len(d.Columns))
	for _, c := range d.Columns {
		col := &filterfield.Column{Config: c}
		col.DataKey, _ = c["dataIndex"].(string)
		col.Text, _ = c["text"].(string)
		if col.Text == "" {
			col.Text = col.DataKey
		}
		if w, ok := c["width"].(int); ok {
			col.Width = w
		}
		columns = append(columns, col)
	}
	return columns
}

// Keys returns the data keys of all columns, in order.
func (d *Definition) Keys() []string {
	keys := make([]string, 0, len(d.Columns))
	for _, c := range d.Columns {
		key, _ := c["dataIndex"].(string)
		keys = append(keys, key)
	}
	return keys
}

// OpenStore loads the definition's dataset into a store.
func (d *Definition) OpenStore() (*store.Store, error) {
	if d.Data != "" {
		path := d.Data
		if !filepath.IsAbs(path) {
			path = filepath.Join(d.dir, path)
		}
		return store.Load(path)
	}

	raw, err := json.Marshal(d.Rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode inline rows: %w", err)
	}
	return store.New(raw)
}
