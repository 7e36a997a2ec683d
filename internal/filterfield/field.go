// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filterfield

import (
	"fmt"
	"sync"
)

// Field is the filter input bound to one column. Every value or operator
// change is reported to the owning controller.
type Field struct {
	column *Column
	ctrl   *Controller

	mu         sync.Mutex
	value      any
	operator   string
	affordance bool
}

// Column returns the column that owns the field.
func (f *Field) Column() *Column {
	return f.column
}

// Value returns the current value.
func (f *Field) Value() any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Text returns the current value formatted as input text.
func (f *Field) Text() string {
	return FormatValue(f.Value())
}

// SetValue stores v and reports the change.
func (f *Field) SetValue(v any) {
	f.mu.Lock()
	f.value = v
	f.mu.Unlock()

	f.changed()
}

// SetRaw converts raw input text for the column's kind and stores it.
func (f *Field) SetRaw(raw string) {
	f.SetValue(ParseValue(f.column.Kind(), raw))
}

// Clear is the clear trigger: it empties the value, which schedules the
// filter's removal like any other change.
func (f *Field) Clear() {
	f.SetValue(nil)
}

// Operator returns the operator chosen on the field's operator button, empty
// when none was chosen.
func (f *Field) Operator() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.operator
}

// EffectiveOperator resolves the operator by precedence: field, then column
// config, then the kind default.
func (f *Field) EffectiveOperator() string {
	if op := f.Operator(); op != "" {
		return op
	}
	if d := f.column.Descriptor(); d != nil && d.Operator != "" {
		return d.Operator
	}
	return DefaultOperator(f.column)
}

// HasOperatorButton reports whether the field carries an operator selector.
func (f *Field) HasOperatorButton() bool {
	return NeedsOperatorButton(f.column)
}

// SetOperator picks an operator on the operator button and re-fires the
// change so an active filter picks it up.
func (f *Field) SetOperator(op string) error {
	if !f.HasOperatorButton() {
		return fmt.Errorf("%s column %q has no operator button", f.column.Kind(), f.column.Name())
	}
	if err := validateButtonOperator(op); err != nil {
		return err
	}

	f.mu.Lock()
	f.operator = op
	f.mu.Unlock()

	f.changed()
	return nil
}

// CycleOperator advances the operator button to its next choice. Fields
// without a button are left alone.
func (f *Field) CycleOperator() {
	if !f.HasOperatorButton() {
		return
	}
	_ = f.SetOperator(nextButtonOperator(f.EffectiveOperator()))
}

// AffordanceVisible reports whether the clear trigger is shown.
func (f *Field) AffordanceVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.affordance
}

func (f *Field) setAffordance(visible bool) {
	f.mu.Lock()
	f.affordance = visible
	f.mu.Unlock()
}

func (f *Field) changed() {
	if f.ctrl != nil {
		f.ctrl.OnInputChanged(f)
	}
}
