// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filterfield

import (
	"errors"
	"fmt"
	"time"

	"github.com/tfctl/gridfilter/internal/debounce"
	"github.com/tfctl/gridfilter/internal/log"
)

const (
	// DefaultActivateKey is the column config key holding filter config.
	DefaultActivateKey = "filter"
	// DefaultDelay is the quiet period before input is applied.
	DefaultDelay = 800 * time.Millisecond
)

// ErrConfig marks malformed filter configuration.
var ErrConfig = errors.New("invalid filter configuration")

// AppliedFilter is a predicate held by a store. A store keeps at most one per
// Property.
type AppliedFilter struct {
	Property string `yaml:"property" json:"property"`
	Operator string `yaml:"operator" json:"operator"`
	Value    any    `yaml:"value" json:"value"`
}

// Store receives filter predicates. AddFilter replaces any filter with the
// same property.
type Store interface {
	AddFilter(f AppliedFilter)
	RemoveFilter(property string)
}

// Header is what the controller needs from the UI toolkit to present a
// column's filter.
type Header interface {
	RenderInput(column *Column, field *Field)
	ShowAffordance(column *Column)
	HideAffordance(column *Column)
	SetHeaderText(column *Column, text string)
}

// Grid hosts the columns and owns the store.
type Grid interface {
	Header
	Store() Store
}

// Options configures a Controller.
type Options struct {
	// Column config key that enables filtering. Empty means "filter".
	ActivateKey string
	// Debounce delay. Zero means 800ms.
	Delay time.Duration
	// Emphasize renders the header text of a filtered column. Defaults to
	// wrapping the text in asterisks.
	Emphasize func(text string) string
	// Dispatcher routes debounced actions onto the host's event loop.
	Dispatcher debounce.Dispatcher
}

// Controller attaches filter inputs to grid columns and turns their input
// into store filters.
type Controller struct {
	opts      Options
	debouncer *debounce.Debouncer
	grid      Grid
	fields    []*Field
}

// New validates opts, applies defaults and returns a Controller.
func New(opts Options) (*Controller, error) {
	if opts.Delay < 0 {
		return nil, fmt.Errorf("%w: negative delay %s", ErrConfig, opts.Delay)
	}
	if opts.ActivateKey == "" {
		opts.ActivateKey = DefaultActivateKey
	}
	if opts.Delay == 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Emphasize == nil {
		opts.Emphasize = func(text string) string { return "*" + text + "*" }
	}

	return &Controller{
		opts:      opts,
		debouncer: debounce.New(opts.Delay, debounce.WithDispatcher(opts.Dispatcher)),
	}, nil
}

// Options returns the effective options.
func (c *Controller) Options() Options {
	return c.opts
}

// Fields returns the attached inputs in column order.
func (c *Controller) Fields() []*Field {
	return c.fields
}

// Attach inserts a filter input into every column whose config carries the
// activate key. Columns without it are skipped. A malformed filter config
// stops the scan with an error; columns before it stay attached. Attaching
// again replaces the previous set of inputs and drops any pending update.
func (c *Controller) Attach(grid Grid, columns []*Column) error {
	c.debouncer.Cancel()
	c.grid = grid
	c.fields = nil

	for _, column := range columns {
		raw, ok := column.Config[c.opts.ActivateKey]
		if !ok || raw == nil || raw == false || raw == "" {
			log.Tracef("column %q has no %q config, skipping", column.Name(), c.opts.ActivateKey)
			continue
		}

		d, err := NewDescriptor(column, raw)
		if err != nil {
			return err
		}

		field := &Field{column: column, ctrl: c}
		column.descriptor = d
		column.field = field
		c.fields = append(c.fields, field)

		log.Debugf("attaching %s filter to %q (property=%s, operatorButton=%v)",
			d.Kind, column.Name(), d.Property, NeedsOperatorButton(column))
		grid.RenderInput(column, field)
	}

	return nil
}

// OnInputChanged schedules the filter update for field, replacing whatever
// update is still waiting. Whether it applies or clears is decided by the
// field's value when the update fires.
func (c *Controller) OnInputChanged(field *Field) {
	c.debouncer.Trigger(func() {
		if IsEmpty(field.Value()) {
			c.ClearFilter(field)
			return
		}
		c.ApplyFilter(field)
	})
}

// ApplyFilter pushes field's predicate to the store and marks the column
// header as filtered.
func (c *Controller) ApplyFilter(field *Field) {
	if c.grid == nil {
		return
	}
	column := field.Column()

	field.setAffordance(true)
	c.grid.ShowAffordance(column)

	column.filtered = true
	c.grid.SetHeaderText(column, c.opts.Emphasize(column.Text))

	filter := AppliedFilter{
		Property: column.Property(),
		Operator: field.EffectiveOperator(),
		Value:    field.Value(),
	}
	log.Debugf("apply filter: %s %s %v", filter.Property, filter.Operator, filter.Value)
	c.grid.Store().AddFilter(filter)
}

// ClearFilter removes field's predicate from the store and restores the
// plain header.
func (c *Controller) ClearFilter(field *Field) {
	if c.grid == nil {
		return
	}
	column := field.Column()

	log.Debugf("clear filter: %s", column.Property())
	c.grid.Store().RemoveFilter(column.Property())

	field.setAffordance(false)
	c.grid.HideAffordance(column)

	column.filtered = false
	c.grid.SetHeaderText(column, column.Text)
}

// Flush runs a waiting update now. It reports whether one was waiting.
func (c *Controller) Flush() bool {
	return c.debouncer.Flush()
}

// Cancel drops a waiting update. It reports whether one was waiting.
func (c *Controller) Cancel() bool {
	return c.debouncer.Cancel()
}

// Pending reports whether an update is waiting.
func (c *Controller) Pending() bool {
	return c.debouncer.Pending()
}

// Close drops any waiting update and detaches from the grid.
func (c *Controller) Close() {
	c.debouncer.Cancel()
	c.grid = nil
}
