// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package grid

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/gridfilter/internal/filterfield"
	"github.com/tfctl/gridfilter/internal/store"
)

func TestLoad(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "people.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "People", d.Title)
	assert.Equal(t, []string{"name", "age", "state", "joined", "notes"}, d.Keys())

	opts := d.Options()
	assert.Equal(t, 250*time.Millisecond, opts.Delay)
	assert.Empty(t, opts.ActivateKey)

	columns := d.BuildColumns()
	require.Len(t, columns, 5)
	assert.Equal(t, "Name", columns[0].Text)
	assert.Equal(t, 12, columns[0].Width)
	assert.Equal(t, "joined", columns[3].Text, "text defaults to the data key")
	assert.Contains(t, columns[0].Config, "filter")
	assert.NotContains(t, columns[4].Config, "filter")

	s, err := d.OpenStore()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
}

func TestLoadInlineRows(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "inline.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "search", d.Options().ActivateKey)

	s, err := d.OpenStore()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nocolumns.yaml"))
	assert.ErrorIs(t, err, ErrDefinition)

	_, err = Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("columns:\n  - text: Name\n"))
	assert.ErrorIs(t, err, ErrDefinition)

	_, err = Parse([]byte("delay: -1\ncolumns:\n  - dataIndex: a\n"))
	assert.ErrorIs(t, err, ErrDefinition)

	_, err = Parse([]byte("columns: [unclosed"))
	assert.ErrorIs(t, err, ErrDefinition)
}

func headlessFixture(t *testing.T) (*Headless, *filterfield.Controller, *store.Store) {
	t.Helper()

	d, err := Load(filepath.Join("testdata", "people.yaml"))
	require.NoError(t, err)
	s, err := d.OpenStore()
	require.NoError(t, err)

	h := NewHeadless(s)
	ctrl, err := filterfield.New(d.Options())
	require.NoError(t, err)
	require.NoError(t, ctrl.Attach(h, d.BuildColumns()))
	t.Cleanup(ctrl.Close)

	return h, ctrl, s
}

func TestHeadlessAttach(t *testing.T) {
	h, _, _ := headlessFixture(t)

	require.Len(t, h.Fields(), 4, "notes has no filter config")
	assert.NotNil(t, h.Field("age"))
	assert.NotNil(t, h.Field("NAME"), "header text matches case-insensitively")
	assert.Nil(t, h.Field("notes"))
}

func TestHeadlessType(t *testing.T) {
	h, ctrl, s := headlessFixture(t)

	require.NoError(t, h.Type(ctrl, []string{"age:gte=18", "name=jo"}))

	assert.Equal(t, []filterfield.AppliedFilter{
		{Property: "age", Operator: "gte", Value: 18.0},
		{Property: "name", Operator: "like", Value: "jo"},
	}, s.Filters())
	assert.Len(t, s.Rows(), 1)

	age := h.Field("age").Column()
	assert.True(t, h.AffordanceVisible(age))
	assert.Equal(t, "*Age*", h.HeaderText(age))
	assert.False(t, ctrl.Pending())
}

func TestHeadlessTypeUsesConfiguredOperator(t *testing.T) {
	h, ctrl, s := headlessFixture(t)

	require.NoError(t, h.Type(ctrl, []string{"joined=2023-01-01"}))

	f := s.Filters()
	require.Len(t, f, 1)
	assert.Equal(t, "gte", f[0].Operator)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), f[0].Value)
}

func TestHeadlessTypeEmptyClears(t *testing.T) {
	h, ctrl, s := headlessFixture(t)

	require.NoError(t, h.Type(ctrl, []string{"state=CA", "state="}))
	assert.Empty(t, s.Filters())

	state := h.Field("state").Column()
	assert.False(t, h.AffordanceVisible(state))
	assert.Equal(t, "State", h.HeaderText(state))
}

func TestHeadlessTypeErrors(t *testing.T) {
	h, ctrl, _ := headlessFixture(t)

	for _, in := range []string{"age", "notes=x", "bogus=1", "name:gte=jo", "age:like=3"} {
		assert.ErrorIs(t, h.Type(ctrl, []string{in}), ErrInput, in)
	}
}
