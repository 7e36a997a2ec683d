// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package tui

import (
	_ "embed"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/gridfilter/internal/filterfield"
	"github.com/tfctl/gridfilter/internal/store"
)

//go:embed testdata/people.json
var peopleJSON []byte

func testModel(t *testing.T) (*Model, *store.Store, []*filterfield.Column) {
	t.Helper()

	s, err := store.New(peopleJSON)
	require.NoError(t, err)

	columns := []*filterfield.Column{
		{DataKey: "name", Text: "Name", Config: map[string]any{"filter": map[string]any{"kind": "text"}}},
		{DataKey: "age", Text: "Age", Config: map[string]any{"filter": map[string]any{"kind": "number"}}},
		{DataKey: "state", Text: "State", Config: map[string]any{"filter": map[string]any{"kind": "choice"}}},
		{DataKey: "joined", Text: "Joined", Config: map[string]any{}},
	}

	// Long delay so only Flush applies input.
	m, err := New("People", s, columns, filterfield.Options{Delay: time.Hour})
	require.NoError(t, err)
	t.Cleanup(m.Controller().Close)

	return m, s, columns
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func names(m *Model) []string {
	var out []string
	for _, r := range m.Rows() {
		out = append(out, r.Get("name").String())
	}
	return out
}

func TestNewAttachesInputs(t *testing.T) {
	m, _, columns := testModel(t)

	assert.Len(t, m.Controller().Fields(), 3)
	assert.NotNil(t, columns[0].Field())
	assert.Nil(t, columns[3].Field(), "columns without filter config get no input")
	assert.Len(t, m.Rows(), 3)

	view := m.View()
	assert.Contains(t, view, "People")
	assert.Contains(t, view, "3 of 3 rows")
	assert.NotContains(t, view, affordance)
}

func TestTypingAppliesFilterAfterFlush(t *testing.T) {
	m, s, columns := testModel(t)
	age := columns[1]

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(runes("30"))

	assert.True(t, m.Controller().Pending())
	assert.Empty(t, s.Filters(), "nothing applied before the delay")

	require.True(t, m.Controller().Flush())
	assert.Equal(t, []filterfield.AppliedFilter{{Property: "age", Operator: "eq", Value: 30.0}}, s.Filters())
	assert.Equal(t, []string{"John"}, names(m))
	assert.True(t, age.Filtered())
	assert.True(t, age.Field().AffordanceVisible())
	assert.Equal(t, DefaultStyles().FilteredTitle.Render("Age"), m.HeaderText(age))
	assert.Contains(t, m.View(), affordance)
	assert.Contains(t, m.View(), "1 of 3 rows")
}

func TestClearKeyRemovesFilter(t *testing.T) {
	m, s, columns := testModel(t)
	name := columns[0]

	m.Update(runes("jo"))
	m.Controller().Flush()
	assert.Equal(t, []string{"John", "Joanna"}, names(m))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	m.Controller().Flush()

	assert.Empty(t, s.Filters())
	assert.Len(t, m.Rows(), 3)
	assert.False(t, name.Filtered())
	assert.Equal(t, "Name", m.HeaderText(name))
	assert.NotContains(t, m.View(), affordance)
}

func TestOnlyLastInputApplies(t *testing.T) {
	m, s, _ := testModel(t)

	m.Update(runes("j"))
	m.Update(runes("o"))
	m.Update(runes("h"))
	m.Controller().Flush()

	require.Len(t, s.Filters(), 1)
	assert.Equal(t, "joh", s.Filters()[0].Value)
	assert.Equal(t, "like", s.Filters()[0].Operator)
	assert.Equal(t, []string{"John"}, names(m))
	assert.False(t, m.Controller().Pending())
}

func TestOperatorKeyCyclesNumberOperator(t *testing.T) {
	m, s, columns := testModel(t)
	age := columns[1]

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(runes("30"))
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m.Controller().Flush()

	assert.Equal(t, "ne", age.Field().Operator())
	assert.Equal(t, []filterfield.AppliedFilter{{Property: "age", Operator: "ne", Value: 30.0}}, s.Filters())
	assert.Equal(t, []string{"Joanna", "Mary"}, names(m))
	assert.Contains(t, m.View(), "Does not equal")
}

func TestOperatorKeyIgnoredOnText(t *testing.T) {
	m, _, columns := testModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Empty(t, columns[0].Field().Operator())
	assert.False(t, m.Controller().Pending())
}

func TestChoiceFilter(t *testing.T) {
	m, s, _ := testModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(runes("CA, TX"))
	m.Controller().Flush()

	assert.Equal(t, []filterfield.AppliedFilter{{Property: "state", Operator: "in", Value: []string{"CA", "TX"}}}, s.Filters())
	assert.Equal(t, []string{"John", "Mary"}, names(m))
}

func TestFiltersCombine(t *testing.T) {
	m, s, _ := testModel(t)

	m.Update(runes("jo"))
	m.Controller().Flush()
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(runes("17"))
	m.Controller().Flush()

	assert.Len(t, s.Filters(), 2)
	assert.Equal(t, []string{"Joanna"}, names(m))
}

func TestDispatchMsgRunsOnUpdate(t *testing.T) {
	m, _, _ := testModel(t)

	ran := false
	m.Update(dispatchMsg{fn: func() { ran = true }})
	assert.True(t, ran)
}

func TestQuit(t *testing.T) {
	m, _, _ := testModel(t)

	m.Update(runes("jo"))
	require.True(t, m.Controller().Pending())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Controller().Pending(), "quitting drops waiting input")
}

func TestScroll(t *testing.T) {
	m, _, _ := testModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.offset)
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 2, m.offset)
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, m.offset)
}

func TestNewRejectsBadFilterConfig(t *testing.T) {
	s, err := store.New(peopleJSON)
	require.NoError(t, err)

	columns := []*filterfield.Column{
		{DataKey: "age", Config: map[string]any{"filter": map[string]any{"kind": "bogus"}}},
	}
	_, err = New("", s, columns, filterfield.Options{})
	assert.ErrorIs(t, err, filterfield.ErrConfig)
}
