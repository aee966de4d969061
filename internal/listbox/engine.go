package listbox

import (
	"fmt"

	"github.com/atomicstack/select-control/internal/logging/events"
)

// pageSize is how many positions PageUp/PageDown jump.
const pageSize = 10

var instanceCounter int

// Engine consumes resolved actions and drives the cursor, typeahead, value,
// open state, and scroll-into-view requests. All methods run synchronously on
// the host's event loop; the engine never caches an item snapshot across an
// event boundary.
type Engine struct {
	id        string
	reg       *Registry
	state     State
	value     Binding[string]
	open      Binding[bool]
	typeahead *Typeahead
	scroll    *ScrollController
}

// Option configures an Engine.
type Option func(*Engine)

// WithValueBinding makes the selected value externally owned.
func WithValueBinding(b Binding[string]) Option {
	return func(e *Engine) { e.value = b }
}

// WithOpenBinding makes the open state externally owned.
func WithOpenBinding(b Binding[bool]) Option {
	return func(e *Engine) { e.open = b }
}

// WithScroll attaches a scroll controller for into-view requests.
func WithScroll(c *ScrollController) Option {
	return func(e *Engine) { e.scroll = c }
}

// WithTypeahead replaces the default matcher (tests inject a fake clock).
func WithTypeahead(t *Typeahead) Option {
	return func(e *Engine) { e.typeahead = t }
}

// WithID sets the per-instance identifier namespace.
func WithID(id string) Option {
	return func(e *Engine) { e.id = id }
}

// New constructs an engine over the registry. Value and open state default to
// internal ownership; callers supply bindings to drive either externally.
func New(reg *Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = NewRegistry()
	}
	instanceCounter++
	e := &Engine{
		id:        fmt.Sprintf("select-%d", instanceCounter),
		reg:       reg,
		state:     State{Cursor: -1},
		typeahead: NewTypeahead(),
	}
	e.value = fieldBinding(&e.state.Value)
	e.open = fieldBinding(&e.state.Open)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ensure guards every dependent operation against use without an active
// widget instance. That is a programmer error, not a runtime condition, so it
// stops execution with a diagnostic instead of guessing a default.
func (e *Engine) ensure() {
	if e == nil {
		panic("listbox: operation requires an active widget instance")
	}
}

// ID returns the instance identifier namespace.
func (e *Engine) ID() string {
	e.ensure()
	return e.id
}

// OptionID returns the stable identifier for the option at a live position,
// used by hosts for accessible attribute wiring.
func (e *Engine) OptionID(index int) string {
	e.ensure()
	return fmt.Sprintf("%s-option-%d", e.id, index)
}

// Registry exposes the item registry backing this instance.
func (e *Engine) Registry() *Registry {
	e.ensure()
	return e.reg
}

// Snapshot returns the current observable state. A cursor left beyond the end
// of a shrunken registry reads as no-highlight.
func (e *Engine) Snapshot() State {
	e.ensure()
	cursor := e.state.Cursor
	if cursor >= e.reg.Len() {
		cursor = -1
	}
	return State{
		Open:   e.open.Get(),
		Value:  e.value.Get(),
		Cursor: cursor,
		Query:  e.typeahead.Buffer(),
	}
}

// IsOpen reports whether the option list is visible.
func (e *Engine) IsOpen() bool {
	e.ensure()
	return e.open.Get()
}

// Value returns the selected value, empty when nothing is selected.
func (e *Engine) Value() string {
	e.ensure()
	return e.value.Get()
}

// Cursor returns the highlighted live position, -1 for none.
func (e *Engine) Cursor() int {
	e.ensure()
	cursor := e.state.Cursor
	if cursor >= e.reg.Len() {
		return -1
	}
	return cursor
}

// IsSelected reports whether the item at the live position carries the
// selected value.
func (e *Engine) IsSelected(index int) bool {
	e.ensure()
	item, ok := e.reg.At(index)
	if !ok {
		return false
	}
	return item.Value != "" && item.Value == e.value.Get()
}

// IsHighlighted reports whether the item at the live position is under the
// cursor.
func (e *Engine) IsHighlighted(index int) bool {
	e.ensure()
	return index >= 0 && index == e.Cursor()
}

// HandleKey is the single keydown entry point. It resolves the key against
// the current open state and applies the resulting action. The return value
// tells the host to suppress the event's default behaviour.
func (e *Engine) HandleKey(key string, alt bool) bool {
	e.ensure()
	action := Resolve(key, e.open.Get(), alt)
	if action == ActionNone {
		return false
	}
	e.apply(action, firstRune(key))
	return true
}

func (e *Engine) apply(action Action, ch rune) {
	last := e.reg.Len() - 1
	switch action {
	case ActionOpen:
		e.setOpen(true)
		e.state.Cursor = -1
	case ActionOpenFirst:
		e.setOpen(true)
		e.moveTo(0, false)
	case ActionOpenLast:
		e.setOpen(true)
		e.moveTo(last, false)
	case ActionOpenCurrent:
		e.setOpen(true)
		e.state.Cursor = -1
		if idx := e.reg.IndexOf(e.value.Get()); idx >= 0 {
			e.moveTo(idx, true)
		}
	case ActionOpenTypeahead:
		e.setOpen(true)
		e.state.Cursor = -1
		e.typeChar(ch)
	case ActionPrevious:
		if e.state.Cursor > 0 {
			e.moveTo(e.state.Cursor-1, false)
		}
	case ActionNext:
		if e.state.Cursor < last {
			e.moveTo(e.state.Cursor+1, false)
		}
	case ActionFirst:
		e.moveTo(0, false)
	case ActionLast:
		e.moveTo(last, false)
	case ActionPageUp:
		e.page(-pageSize)
	case ActionPageDown:
		e.page(pageSize)
	case ActionSelect, ActionCloseSelect:
		e.commit()
		e.close()
	case ActionClose:
		e.close()
	case ActionTypeahead:
		e.typeChar(ch)
	}
}

// Hover highlights the item under the pointer. Out-of-range positions are
// ignored so hover stays robust against concurrent registry mutation.
func (e *Engine) Hover(index int) {
	e.ensure()
	if !e.open.Get() {
		return
	}
	if index < 0 || index >= e.reg.Len() {
		return
	}
	e.state.Cursor = index
	events.Select.Cursor(e.id, index)
}

// Click commits the item under the pointer and closes the list.
func (e *Engine) Click(index int) {
	e.ensure()
	if item, ok := e.reg.At(index); ok && item.Value != "" {
		e.value.Set(item.Value)
		events.Select.Commit(e.id, item.Value)
	}
	e.close()
}

// MoveCursor imperatively highlights a live position. Positions outside
// [-1, len) are no-ops rather than failures.
func (e *Engine) MoveCursor(index int) {
	e.ensure()
	if index == -1 {
		e.state.Cursor = -1
		return
	}
	e.moveTo(index, false)
}

// SetValue computes no next state of its own; it delegates straight to the
// value binding.
func (e *Engine) SetValue(value string) {
	e.ensure()
	e.value.Set(value)
	events.Select.Commit(e.id, value)
}

// SetOpen opens or closes the list. Closing resets the cursor and typeahead
// so reopening starts unhighlighted.
func (e *Engine) SetOpen(open bool) {
	e.ensure()
	if open {
		e.setOpen(true)
		return
	}
	e.close()
}

// ScrollIntoView requests that the item at the live position become fully
// visible.
func (e *Engine) ScrollIntoView(index int) {
	e.ensure()
	if index < 0 || index >= e.reg.Len() {
		return
	}
	if e.scroll != nil {
		e.scroll.IntoView(index, false)
		events.Scroll.IntoView(e.id, index)
	}
}

// Teardown cancels the pending scroll task and typeahead idle state so no
// callback outlives the widget instance.
func (e *Engine) Teardown() {
	e.ensure()
	if e.scroll != nil {
		e.scroll.StopAuto()
	}
	e.typeahead.Reset()
}

func (e *Engine) setOpen(open bool) {
	e.open.Set(open)
	events.Select.Open(e.id, open)
}

func (e *Engine) close() {
	e.open.Set(false)
	e.state.Cursor = -1
	e.typeahead.Reset()
	if e.scroll != nil {
		e.scroll.StopAuto()
	}
	events.Select.Open(e.id, false)
}

// commit writes the highlighted item's value through the binding. With no
// valid cursor, or an empty registry, the selection is left untouched.
func (e *Engine) commit() {
	cursor := e.state.Cursor
	item, ok := e.reg.At(cursor)
	if !ok || item.Value == "" {
		return
	}
	e.value.Set(item.Value)
	events.Select.Commit(e.id, item.Value)
}

func (e *Engine) moveTo(index int, center bool) {
	if index < 0 || index >= e.reg.Len() {
		return
	}
	e.state.Cursor = index
	events.Select.Cursor(e.id, index)
	if e.scroll != nil {
		e.scroll.IntoView(index, center)
	}
}

func (e *Engine) page(delta int) {
	n := e.reg.Len()
	if n == 0 {
		return
	}
	target := e.state.Cursor + delta
	if target < 0 {
		target = 0
	}
	if target > n-1 {
		target = n - 1
	}
	e.moveTo(target, false)
}

func (e *Engine) typeChar(ch rune) {
	items := e.reg.Items()
	idx, ok := e.typeahead.Type(ch, items, e.state.Cursor)
	events.Typeahead.Append(e.id, e.typeahead.Buffer())
	if !ok {
		return
	}
	events.Typeahead.Match(e.id, e.typeahead.Buffer(), idx)
	e.moveTo(idx, false)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
