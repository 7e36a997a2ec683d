// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filterfield

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindText, false},
		{"text", KindText, false},
		{"textfield", KindText, false},
		{"Number", KindNumber, false},
		{"numberfield", KindNumber, false},
		{"date", KindDate, false},
		{"datefield", KindDate, false},
		{"choice", KindChoice, false},
		{"combobox", KindChoice, false},
		{"slider", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNeedsOperatorButtonAndDefaultOperator(t *testing.T) {
	tests := []struct {
		kind       Kind
		wantButton bool
		wantOp     string
	}{
		{KindText, false, OpLike},
		{KindChoice, false, OpIn},
		{KindNumber, true, OpEq},
		{KindDate, true, OpEq},
		{Kind("other"), false, OpEq},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			col := &Column{DataKey: "x", descriptor: &Descriptor{Kind: tt.kind, Property: "x"}}
			assert.Equal(t, tt.wantButton, NeedsOperatorButton(col))
			assert.Equal(t, tt.wantOp, DefaultOperator(col))
		})
	}

	// Unattached columns read as text.
	assert.Equal(t, OpLike, DefaultOperator(&Column{}))
}

func TestNewDescriptor(t *testing.T) {
	col := &Column{DataKey: "age", Text: "Age"}

	d, err := NewDescriptor(col, map[string]any{
		"xtype":       "numberfield",
		"placeholder": "years",
		"width":       8,
	})
	require.NoError(t, err)
	assert.Equal(t, KindNumber, d.Kind)
	assert.Equal(t, "age", d.Property, "property falls back to the data key")
	assert.Equal(t, "years", d.StringOption("placeholder", ""))
	assert.Equal(t, "-", d.StringOption("missing", "-"))
	v, ok := d.Option("width")
	assert.True(t, ok)
	assert.Equal(t, 8, v)
	assert.NotContains(t, d.Options, "xtype")

	d, err = NewDescriptor(col, map[string]string{"property": "years", "operator": "gt"})
	require.NoError(t, err)
	assert.Equal(t, "years", d.Property)
	assert.Equal(t, "gt", d.Operator)
	assert.Equal(t, KindText, d.Kind)

	d, err = NewDescriptor(col, Descriptor{Kind: "choice"})
	require.NoError(t, err)
	assert.Equal(t, KindChoice, d.Kind)

	_, err = NewDescriptor(col, (*Descriptor)(nil))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestDescriptorChoices(t *testing.T) {
	d := &Descriptor{Options: map[string]any{"choices": []any{"CA", "NY", 3}}}
	assert.Equal(t, []string{"CA", "NY", "3"}, d.Choices())

	d = &Descriptor{Options: map[string]any{"choices": map[string]any{"b": 1, "a": 2}}}
	assert.Equal(t, []string{"a", "b"}, d.Choices())

	assert.Nil(t, (&Descriptor{}).Choices())
}

func TestParseValue(t *testing.T) {
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		kind Kind
		raw  string
		want any
	}{
		{"text", KindText, " jo ", "jo"},
		{"blank", KindText, "   ", nil},
		{"number", KindNumber, "30", 30.0},
		{"negative float", KindNumber, "-1.5", -1.5},
		{"not a number", KindNumber, "3o", nil},
		{"date", KindDate, "2024-03-09", day},
		{"rfc3339", KindDate, "2024-03-09T00:00:00Z", day},
		{"bad date", KindDate, "March", nil},
		{"choices", KindChoice, "CA, ,NY", []string{"CA", "NY"}},
		{"only commas", KindChoice, ",,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseValue(tt.kind, tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValueAndIsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "30", FormatValue(30.0))
	assert.Equal(t, "1.25", FormatValue(1.25))
	assert.Equal(t, "2024-03-09", FormatValue(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatValue(time.Time{}))
	assert.Equal(t, "CA,NY", FormatValue([]string{"CA", "NY"}))
	assert.Equal(t, "true", FormatValue(true))

	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(" "))
	assert.True(t, IsEmpty([]string{}))
	assert.True(t, IsEmpty([]any{}))
	assert.True(t, IsEmpty(time.Time{}))
	assert.False(t, IsEmpty(0.0))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(false))
}

func TestOperatorLabels(t *testing.T) {
	assert.Equal(t, "Equal to", OperatorLabel(OpEq))
	assert.Equal(t, "Less Than or equal to", OperatorLabel(OpLte))
	assert.Equal(t, "like", OperatorLabel(OpLike))

	assert.True(t, IsOperator(OpIn))
	assert.False(t, IsOperator("about"))

	assert.Equal(t, OpEq, nextButtonOperator(OpLt), "wraps around")
	assert.Equal(t, OpEq, nextButtonOperator(OpLike))
}
