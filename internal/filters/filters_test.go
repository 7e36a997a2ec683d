// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/gridfilter/internal/filterfield"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testBuildFiltersCase represents a single test case for TestBuildFilters.
type testBuildFiltersCase struct {
	Name      string                      `yaml:"name"`
	Spec      string                      `yaml:"spec"`
	Delimiter string                      `yaml:"delimiter"`
	Want      []filterfield.AppliedFilter `yaml:"want"`
	WantCount int                         `yaml:"wantCount"`
}

// testMatchCase represents a single test case for TestMatch.
type testMatchCase struct {
	Name   string                    `yaml:"name"`
	Value  interface{}               `yaml:"value"`
	Filter filterfield.AppliedFilter `yaml:"filter"`
	Want   bool                      `yaml:"want"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

// normalize turns YAML-decoded []interface{} into []string so expected and
// parsed "in" values compare equal.
func normalize(v interface{}) interface{} {
	list, ok := v.([]interface{})
	if !ok {
		return v
	}
	out := make([]string, len(list))
	for i, item := range list {
		out[i], _ = item.(string)
	}
	return out
}

func TestBuildFilters(t *testing.T) {
	var tests []testBuildFiltersCase
	require.NoError(t, loadTestData("build_filters.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			if tt.Delimiter != "" {
				t.Setenv("GRIDFILTER_FILTER_DELIM", tt.Delimiter)
			}

			got := BuildFilters(tt.Spec)
			require.Len(t, got, tt.WantCount)
			for i, want := range tt.Want {
				assert.Equal(t, want.Property, got[i].Property)
				assert.Equal(t, want.Operator, got[i].Operator)
				assert.Equal(t, normalize(want.Value), got[i].Value)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	var tests []testMatchCase
	require.NoError(t, loadTestData("match.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, Match(tt.Value, tt.Filter))
		})
	}
}

func TestMatchDates(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	noon := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value interface{}
		op    string
		at    time.Time
		want  bool
	}{
		{"same day eq", "2024-01-02T15:04:05Z", filterfield.OpEq, day, true},
		{"plain date eq", "2024-01-02", filterfield.OpEq, day, true},
		{"next day gt", "2024-01-03", filterfield.OpGt, day, true},
		{"earlier lt", "2023-12-31T23:00:00Z", filterfield.OpLt, day, true},
		{"gte same day", "2024-01-02T00:00:01Z", filterfield.OpGte, day, true},
		{"exact time compare", "2024-01-02T11:00:00Z", filterfield.OpLt, noon, true},
		{"exact time eq miss", "2024-01-02T11:00:00Z", filterfield.OpEq, noon, false},
		{"offset row keeps its own day", "2024-01-02T20:00:00-08:00", filterfield.OpEq, day, true},
		{"offset row before target day", "2024-01-01T20:00:00-08:00", filterfield.OpLt, day, true},
		{"positive offset row keeps its own day", "2024-01-02T01:00:00+09:00", filterfield.OpEq, day, true},
		{"not a date", "soon", filterfield.OpEq, day, false},
		{"not a string", 42.0, filterfield.OpEq, day, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filterfield.AppliedFilter{Property: "d", Operator: tt.op, Value: tt.at}
			assert.Equal(t, tt.want, Match(tt.value, f))
		})
	}
}

func TestMatchAll(t *testing.T) {
	row := map[string]interface{}{"age": 30.0, "name": "John"}
	lookup := func(p string) interface{} { return row[p] }

	assert.True(t, MatchAll(lookup, nil))
	assert.True(t, MatchAll(lookup, []filterfield.AppliedFilter{
		{Property: "age", Operator: "gte", Value: 18.0},
		{Property: "name", Operator: "like", Value: "jo"},
	}))
	assert.False(t, MatchAll(lookup, []filterfield.AppliedFilter{
		{Property: "age", Operator: "gte", Value: 18.0},
		{Property: "missing", Operator: "eq", Value: "x"},
	}))
}

func TestToFloat64(t *testing.T) {
	for _, v := range []interface{}{1, int8(1), int16(1), int32(1), int64(1), uint(1), uint8(1), uint16(1), uint32(1), uint64(1), float32(1), 1.0} {
		got, ok := toFloat64(v)
		assert.True(t, ok, "%T", v)
		assert.Equal(t, 1.0, got)
	}

	_, ok := toFloat64("1")
	assert.False(t, ok)
}
