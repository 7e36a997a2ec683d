// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"

	"github.com/tfctl/gridfilter/internal/driller"
	"github.com/tfctl/gridfilter/internal/filterfield"
	"github.com/tfctl/gridfilter/internal/log"
	"github.com/tfctl/gridfilter/internal/store"
)

const (
	minColumnWidth = 6
	maxColumnWidth = 30
	affordance     = "✕"
)

// dispatchMsg carries a debounced filter update onto the event loop.
type dispatchMsg struct {
	fn func()
}

// header is the filter state of one column as shown in the header rows.
type header struct {
	text       string
	input      *textinput.Model
	field      *filterfield.Field
	affordance bool
}

// Model is a filterable grid. It implements filterfield.Grid so a
// controller can put inputs into its column headers.
type Model struct {
	title   string
	store   *store.Store
	ctrl    *filterfield.Controller
	columns []*filterfield.Column
	widths  []int

	mu      sync.Mutex
	headers map[*filterfield.Column]*header
	rows    []gjson.Result

	focusable []*filterfield.Column
	focus     int
	offset    int
	height    int

	keys   keyMap
	help   help.Model
	styles Styles
	send   func(tea.Msg)
}

// New builds a model over s and attaches filter inputs to columns. opts is
// passed to the controller with its Dispatcher pointed at the event loop.
func New(title string, s *store.Store, columns []*filterfield.Column, opts filterfield.Options) (*Model, error) {
	m := &Model{
		title:   title,
		store:   s,
		columns: columns,
		headers: make(map[*filterfield.Column]*header, len(columns)),
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  DefaultStyles(),
	}
	for _, c := range columns {
		m.headers[c] = &header{text: c.Text}
	}

	opts.Dispatcher = m.dispatch
	if opts.Emphasize == nil {
		opts.Emphasize = func(s string) string { return m.styles.FilteredTitle.Render(s) }
	}

	ctrl, err := filterfield.New(opts)
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl

	if err := ctrl.Attach(m, columns); err != nil {
		return nil, err
	}

	s.Subscribe(m.refresh)
	m.refresh()
	m.widths = m.columnWidths()
	for _, c := range m.focusable {
		m.headers[c].input.Width = m.inputWidth(c)
	}
	m.setFocus(0)

	return m, nil
}

// Controller returns the filter controller driving the headers.
func (m *Model) Controller() *filterfield.Controller {
	return m.ctrl
}

// Store implements filterfield.Grid.
func (m *Model) Store() filterfield.Store {
	return m.store
}

// RenderInput implements filterfield.Header.
func (m *Model) RenderInput(column *filterfield.Column, field *filterfield.Field) {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	if d := column.Descriptor(); d != nil {
		ti.Placeholder = d.StringOption("placeholder", "")
		if choices := d.Choices(); len(choices) > 0 && ti.Placeholder == "" {
			ti.Placeholder = strings.Join(choices, ",")
		}
	}

	m.mu.Lock()
	h := m.headers[column]
	h.input = &ti
	h.field = field
	m.mu.Unlock()

	m.focusable = append(m.focusable, column)
}

// ShowAffordance implements filterfield.Header.
func (m *Model) ShowAffordance(column *filterfield.Column) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.headers[column].affordance = true
}

// HideAffordance implements filterfield.Header.
func (m *Model) HideAffordance(column *filterfield.Column) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.headers[column].affordance = false
}

// SetHeaderText implements filterfield.Header.
func (m *Model) SetHeaderText(column *filterfield.Column, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.headers[column].text = text
}

// HeaderText returns the header text currently shown for column.
func (m *Model) HeaderText(column *filterfield.Column) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.headers[column].text
}

// Rows returns the rows currently shown.
func (m *Model) Rows() []gjson.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows
}

// Run shows the grid until the user quits.
func (m *Model) Run(opts ...tea.ProgramOption) error {
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	m.send = p.Send
	defer m.ctrl.Close()

	_, err := p.Run()
	return err
}

func (m *Model) dispatch(fn func()) {
	if m.send == nil {
		fn()
		return
	}
	m.send(dispatchMsg{fn: fn})
}

func (m *Model) refresh() {
	rows := m.store.Rows()

	m.mu.Lock()
	m.rows = rows
	if m.offset > len(rows) {
		m.offset = 0
	}
	m.mu.Unlock()

	log.Tracef("grid refreshed: %d of %d rows", len(rows), m.store.Len())
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchMsg:
		msg.fn()
		return m, nil

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.ctrl.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Operator):
			if f := m.focusedField(); f != nil {
				f.CycleOperator()
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			if h := m.focusedHeader(); h != nil {
				h.input.SetValue("")
				h.field.Clear()
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.scroll(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.scroll(1)
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.scroll(-m.pageSize())
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.scroll(m.pageSize())
			return m, nil
		}
	}

	h := m.focusedHeader()
	if h == nil {
		return m, nil
	}

	before := h.input.Value()
	ti, cmd := h.input.Update(msg)
	*h.input = ti
	if after := ti.Value(); after != before {
		h.field.SetRaw(after)
	}
	return m, cmd
}

func (m *Model) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(m.styles.Title.Render(m.title))
		b.WriteString("\n\n")
	}

	b.WriteString(m.headerRow())
	b.WriteString("\n")
	b.WriteString(m.inputRow())
	b.WriteString("\n")

	rows := m.Rows()
	end := m.offset + m.pageSize()
	if end > len(rows) {
		end = len(rows)
	}
	for i := m.offset; i < end; i++ {
		style := m.styles.EvenRow
		if i%2 == 1 {
			style = m.styles.OddRow
		}
		b.WriteString(m.bodyRow(rows[i], style))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(m.status(len(rows))))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) headerRow() string {
	cells := make([]string, len(m.columns))
	for i, c := range m.columns {
		cells[i] = cell(m.styles.Header, m.HeaderText(c), m.widths[i])
	}
	return strings.Join(cells, " ")
}

func (m *Model) inputRow() string {
	cells := make([]string, len(m.columns))
	for i, c := range m.columns {
		m.mu.Lock()
		h := *m.headers[c]
		m.mu.Unlock()

		if h.input == nil {
			cells[i] = cell(lipgloss.NewStyle(), "", m.widths[i])
			continue
		}

		var parts []string
		if h.field.HasOperatorButton() {
			parts = append(parts, m.styles.Operator.Render(operatorSymbol(h.field.EffectiveOperator())))
		}
		parts = append(parts, h.input.View())
		if h.affordance {
			parts = append(parts, m.styles.Affordance.Render(affordance))
		}

		style := m.styles.Input
		if h.input.Focused() {
			style = m.styles.FocusedInput
		}
		cells[i] = cell(style, strings.Join(parts, " "), m.widths[i])
	}
	return strings.Join(cells, " ")
}

func (m *Model) bodyRow(row gjson.Result, style lipgloss.Style) string {
	cells := make([]string, len(m.columns))
	for i, c := range m.columns {
		cells[i] = cell(style, driller.Drill(row, c.DataKey).String(), m.widths[i])
	}
	return strings.Join(cells, " ")
}

func (m *Model) status(shown int) string {
	s := fmt.Sprintf("%s of %s rows", humanize.Comma(int64(shown)), humanize.Comma(int64(m.store.Len())))
	if f := m.focusedField(); f != nil && f.HasOperatorButton() {
		s += fmt.Sprintf(" | %s: %s", f.Column().Name(), filterfield.OperatorLabel(f.EffectiveOperator()))
	}
	if n := len(m.store.Filters()); n > 0 {
		s += fmt.Sprintf(" | %d %s", n, plural(n, "filter", "filters"))
	}
	return s
}

func (m *Model) setFocus(i int) tea.Cmd {
	if len(m.focusable) == 0 {
		return nil
	}
	i = (i%len(m.focusable) + len(m.focusable)) % len(m.focusable)

	if h := m.focusedHeader(); h != nil {
		h.input.Blur()
	}
	m.focus = i
	return m.focusedHeader().input.Focus()
}

func (m *Model) focusedHeader() *header {
	if len(m.focusable) == 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.headers[m.focusable[m.focus]]
}

func (m *Model) focusedField() *filterfield.Field {
	if h := m.focusedHeader(); h != nil {
		return h.field
	}
	return nil
}

func (m *Model) scroll(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.offset += delta
	if maxOffset := len(m.rows) - 1; m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// pageSize is the number of body rows that fit below the header, title,
// status and help lines.
func (m *Model) pageSize() int {
	if m.height == 0 {
		return 20
	}
	if n := m.height - 7; n > 0 {
		return n
	}
	return 1
}

func (m *Model) columnWidths() []int {
	widths := make([]int, len(m.columns))
	for i, c := range m.columns {
		if c.Width > 0 {
			widths[i] = c.Width
			continue
		}
		w := lipgloss.Width(c.Text)
		for _, row := range m.rows {
			if vw := lipgloss.Width(driller.Drill(row, c.DataKey).String()); vw > w {
				w = vw
			}
		}
		widths[i] = min(max(w, minColumnWidth), maxColumnWidth)
	}
	return widths
}

// inputWidth leaves room for the operator symbol and the clear trigger.
func (m *Model) inputWidth(column *filterfield.Column) int {
	for i, c := range m.columns {
		if c != column {
			continue
		}
		w := m.widths[i] - 2
		if filterfield.NeedsOperatorButton(column) {
			w -= 3
		}
		return max(w, 1)
	}
	return 1
}

var operatorSymbols = map[string]string{
	filterfield.OpEq:  "=",
	filterfield.OpNe:  "≠",
	filterfield.OpGt:  ">",
	filterfield.OpGte: "≥",
	filterfield.OpLt:  "<",
	filterfield.OpLte: "≤",
}

func operatorSymbol(op string) string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}
	return op
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
