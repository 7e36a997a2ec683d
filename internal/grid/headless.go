// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package grid

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tfctl/gridfilter/internal/filterfield"
	"github.com/tfctl/gridfilter/internal/log"
)

// ErrInput marks a --input entry that cannot be typed into any filter.
var ErrInput = errors.New("invalid filter input")

// Headless hosts filter inputs without a screen and remembers what a screen
// would show.
type Headless struct {
	store filterfield.Store

	mu          sync.Mutex
	fields      []*filterfield.Field
	headers     map[*filterfield.Column]string
	affordances map[*filterfield.Column]bool
}

// NewHeadless returns a host whose filters go to s.
func NewHeadless(s filterfield.Store) *Headless {
	return &Headless{
		store:       s,
		headers:     map[*filterfield.Column]string{},
		affordances: map[*filterfield.Column]bool{},
	}
}

// Store implements filterfield.Grid.
func (h *Headless) Store() filterfield.Store {
	return h.store
}

// RenderInput implements filterfield.Header.
func (h *Headless) RenderInput(column *filterfield.Column, field *filterfield.Field) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fields = append(h.fields, field)
	h.headers[column] = column.Text
}

// ShowAffordance implements filterfield.Header.
func (h *Headless) ShowAffordance(column *filterfield.Column) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.affordances[column] = true
}

// HideAffordance implements filterfield.Header.
func (h *Headless) HideAffordance(column *filterfield.Column) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.affordances[column] = false
}

// SetHeaderText implements filterfield.Header.
func (h *Headless) SetHeaderText(column *filterfield.Column, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.headers[column] = text
}

// HeaderText returns the last header text set for column.
func (h *Headless) HeaderText(column *filterfield.Column) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.headers[column]
}

// AffordanceVisible reports whether column's clear trigger is shown.
func (h *Headless) AffordanceVisible(column *filterfield.Column) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.affordances[column]
}

// Fields returns the inputs rendered so far.
func (h *Headless) Fields() []*filterfield.Field {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fields
}

// Field finds the input of the column whose data key or header text is name.
func (h *Headless) Field(name string) *filterfield.Field {
	for _, f := range h.Fields() {
		c := f.Column()
		if strings.EqualFold(c.DataKey, name) || strings.EqualFold(c.Text, name) {
			return f
		}
	}
	return nil
}

// Type enters each input, given as COLUMN[:OPERATOR]=TEXT, into its filter
// field as a user would and applies it without waiting for the delay.
func (h *Headless) Type(ctrl *filterfield.Controller, inputs []string) error {
	for _, in := range inputs {
		target, text, ok := strings.Cut(in, "=")
		if !ok {
			return fmt.Errorf("%w: %q is not COLUMN=TEXT", ErrInput, in)
		}
		name, op, _ := strings.Cut(strings.TrimSpace(target), ":")

		field := h.Field(name)
		if field == nil {
			return fmt.Errorf("%w: no filterable column %q", ErrInput, name)
		}

		if op != "" {
			if err := field.SetOperator(op); err != nil {
				return fmt.Errorf("%w: column %q: %w", ErrInput, name, err)
			}
		}
		field.SetRaw(text)

		log.Debugf("typed %q into %q", text, field.Column().Name())
		ctrl.Flush()
	}
	return nil
}
