// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package store is an in-memory grid store over a JSON array of rows. It
// holds the filters pushed by the filter controller and returns the rows
// that satisfy all of them.
package store

import (
	"fmt"
	"os"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/tfctl/gridfilter/internal/driller"
	"github.com/tfctl/gridfilter/internal/filterfield"
	"github.com/tfctl/gridfilter/internal/filters"
	"github.com/tfctl/gridfilter/internal/log"
)

// Store holds rows and the active filter list. It satisfies
// filterfield.Store.
type Store struct {
	rows []gjson.Result

	mu          sync.Mutex
	filters     []filterfield.AppliedFilter
	subscribers []func()
}

// New parses a JSON document holding an array of row objects. A document
// with a top-level "data" or "rows" array is accepted too.
func New(raw []byte) (*Store, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("dataset is not valid JSON")
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		for _, key := range []string{"data", "rows"} {
			if v := doc.Get(key); v.IsArray() {
				doc = v
				break
			}
		}
	}
	if !doc.IsArray() {
		return nil, fmt.Errorf("dataset must be a JSON array of rows")
	}

	s := &Store{}
	for _, row := range doc.Array() {
		if !row.IsObject() {
			log.Warnf("skipping non-object row: %s", row.Raw)
			continue
		}
		s.rows = append(s.rows, row)
	}

	log.Debugf("store loaded %d rows", len(s.rows))
	return s, nil
}

// Load reads a dataset file.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	s, err := New(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// AddFilter adds f, replacing any filter on the same property in place.
func (s *Store) AddFilter(f filterfield.AppliedFilter) {
	s.mu.Lock()
	replaced := false
	for i := range s.filters {
		if s.filters[i].Property == f.Property {
			s.filters[i] = f
			replaced = true
			break
		}
	}
	if !replaced {
		s.filters = append(s.filters, f)
	}
	subs := s.subscribers
	s.mu.Unlock()

	notify(subs)
}

// RemoveFilter drops the filter on property, if any.
func (s *Store) RemoveFilter(property string) {
	s.mu.Lock()
	removed := false
	for i := range s.filters {
		if s.filters[i].Property == property {
			s.filters = append(s.filters[:i], s.filters[i+1:]...)
			removed = true
			break
		}
	}
	subs := s.subscribers
	s.mu.Unlock()

	if removed {
		notify(subs)
	}
}

// ClearFilters drops every filter.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.filters = nil
	subs := s.subscribers
	s.mu.Unlock()

	notify(subs)
}

// Filters returns a copy of the active filters in the order added.
func (s *Store) Filters() []filterfield.AppliedFilter {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]filterfield.AppliedFilter, len(s.filters))
	copy(out, s.filters)
	return out
}

// Subscribe registers fn to run after every filter change.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Len is the number of rows before filtering.
func (s *Store) Len() int {
	return len(s.rows)
}

// Rows returns the rows matching every active filter.
func (s *Store) Rows() []gjson.Result {
	active := s.Filters()

	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var out []gjson.Result
	for _, row := range s.rows {
		lookup := func(property string) any { return driller.Value(row, property) }
		if filters.MatchAll(lookup, active) {
			out = append(out, row)
		}
	}
	return out
}

// Records returns the matching rows projected onto keys, ready for output.
func (s *Store) Records(keys []string) []map[string]interface{} {
	rows := s.Rows()
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]interface{}, len(keys))
		for _, k := range keys {
			rec[k] = driller.Value(row, k)
		}
		out = append(out, rec)
	}
	return out
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
