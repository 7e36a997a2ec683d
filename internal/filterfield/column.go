// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filterfield

// Column is a grid column as the controller sees it.
type Column struct {
	// Key of the row value shown in this column.
	DataKey string
	// Plain header text.
	Text string
	// Display width hint, zero for automatic.
	Width int
	// Raw column configuration. The filter config lives under the
	// controller's activate key.
	Config map[string]any

	descriptor *Descriptor
	field      *Field
	filtered   bool
}

// Name identifies the column in messages.
func (c *Column) Name() string {
	if c.Text != "" {
		return c.Text
	}
	return c.DataKey
}

// Descriptor returns the filter descriptor, nil until attached.
func (c *Column) Descriptor() *Descriptor {
	return c.descriptor
}

// Field returns the filter input, nil until attached.
func (c *Column) Field() *Field {
	return c.field
}

// Filtered reports whether the header shows the filtered state.
func (c *Column) Filtered() bool {
	return c.filtered
}

// Property is the store property this column filters on.
func (c *Column) Property() string {
	if c.descriptor != nil && c.descriptor.Property != "" {
		return c.descriptor.Property
	}
	return c.DataKey
}

// Kind returns the input kind, text for columns without a descriptor.
func (c *Column) Kind() Kind {
	if c.descriptor == nil {
		return KindText
	}
	return c.descriptor.Kind
}

// NeedsOperatorButton reports whether the column's input needs an operator
// selector next to it.
func NeedsOperatorButton(column *Column) bool {
	return column.Kind().NeedsOperatorButton()
}

// DefaultOperator returns the kind-based operator for column.
func DefaultOperator(column *Column) string {
	return column.Kind().DefaultOperator()
}
