// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/gridfilter/internal/filterfield"
)

const people = `[
  {"name": "John", "age": 30, "state": "CA", "joined": "2023-05-01"},
  {"name": "Joanna", "age": 17, "state": "NY", "joined": "2024-01-15"},
  {"name": "Mary", "age": 45, "state": "TX", "joined": "2022-11-30"},
  {"name": "Ann", "state": "CA", "joined": "2024-02-01", "address": {"city": "Springfield"}}
]`

func names(s *Store) []string {
	var out []string
	for _, row := range s.Rows() {
		out = append(out, row.Get("name").String())
	}
	return out
}

func newPeople(t *testing.T) *Store {
	t.Helper()
	s, err := New([]byte(people))
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := newPeople(t)
	assert.Equal(t, 4, s.Len())
	assert.Len(t, s.Rows(), 4, "no filters, every row")

	wrapped, err := New([]byte(`{"data": [{"a": 1}, 2, {"a": 3}]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, wrapped.Len(), "non-object rows are skipped")

	_, err = New([]byte(`{"a": 1}`))
	assert.Error(t, err)

	_, err = New([]byte(`[{"a": `))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.json")
	require.NoError(t, os.WriteFile(path, []byte(people), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestAddFilterReplacesByProperty(t *testing.T) {
	s := newPeople(t)

	s.AddFilter(filterfield.AppliedFilter{Property: "name", Operator: "like", Value: "jo"})
	s.AddFilter(filterfield.AppliedFilter{Property: "state", Operator: "in", Value: []string{"CA", "NY"}})
	s.AddFilter(filterfield.AppliedFilter{Property: "name", Operator: "like", Value: "john"})

	got := s.Filters()
	require.Len(t, got, 2)
	assert.Equal(t, "name", got[0].Property, "replacement keeps position")
	assert.Equal(t, "john", got[0].Value)
	assert.Equal(t, []string{"John"}, names(s))
}

func TestRowsCombineWithAnd(t *testing.T) {
	s := newPeople(t)

	s.AddFilter(filterfield.AppliedFilter{Property: "age", Operator: "gte", Value: 18.0})
	assert.Equal(t, []string{"John", "Mary"}, names(s), "rows without age are excluded")

	s.AddFilter(filterfield.AppliedFilter{Property: "state", Operator: "in", Value: []string{"CA"}})
	assert.Equal(t, []string{"John"}, names(s))

	s.RemoveFilter("age")
	assert.Equal(t, []string{"John", "Ann"}, names(s))

	s.ClearFilters()
	assert.Len(t, s.Rows(), 4)
}

func TestRowsDatesAndNestedPaths(t *testing.T) {
	s := newPeople(t)

	s.AddFilter(filterfield.AppliedFilter{
		Property: "joined",
		Operator: "gte",
		Value:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, []string{"Joanna", "Ann"}, names(s))

	s.ClearFilters()
	s.AddFilter(filterfield.AppliedFilter{Property: "address.city", Operator: "like", Value: "spring"})
	assert.Equal(t, []string{"Ann"}, names(s))
}

func TestSubscribe(t *testing.T) {
	s := newPeople(t)
	calls := 0
	s.Subscribe(func() { calls++ })

	s.AddFilter(filterfield.AppliedFilter{Property: "name", Operator: "eq", Value: "Mary"})
	s.RemoveFilter("name")
	s.RemoveFilter("name")
	assert.Equal(t, 2, calls, "removing an absent filter is not a change")
}

func TestRecords(t *testing.T) {
	s := newPeople(t)
	s.AddFilter(filterfield.AppliedFilter{Property: "name", Operator: "eq", Value: "Ann"})

	got := s.Records([]string{"name", "age", "address.city"})
	require.Len(t, got, 1)
	assert.Equal(t, "Ann", got[0]["name"])
	assert.Nil(t, got[0]["age"])
	assert.Equal(t, "Springfield", got[0]["address.city"])
}

func TestStoreSatisfiesInterface(t *testing.T) {
	var _ filterfield.Store = newPeople(t)
}
