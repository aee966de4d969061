package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/select-control/internal/listbox"
	"github.com/atomicstack/select-control/internal/logging/events"
	"github.com/atomicstack/select-control/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

// autoScrollInterval approximates one display refresh.
const autoScrollInterval = 16 * time.Millisecond

type msgHandler func(tea.Msg) tea.Cmd

// Option is a selectable entry handed to the model at construction.
type Option struct {
	Value string
	Label string
}

// Config describes the widget the model hosts.
type Config struct {
	Width        int
	Height       int
	ShowFooter   bool
	Placeholder  string
	InitialValue string
	ValueLabel   string
	DefaultOpen  bool
	Options      []Option
}

// autoScrollTickMsg advances the continuous-scroll task by one frame. The seq
// token cancels chains left over from a task that has since been replaced.
type autoScrollTickMsg struct {
	seq int
}

// Model hosts the listbox engine inside a Bubble Tea program: it owns the
// render surface and translates terminal key/mouse events into engine calls.
type Model struct {
	engine *listbox.Engine
	vp     *listViewport
	scroll *listbox.ScrollController

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	placeholder string
	valueLabel  string
	errMsg      string

	queryCursor      cursor.Model
	queryCursorDirty bool

	autoScrollSeq int
	autoScrollDir listbox.ScrollDirection

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state around a fresh widget instance.
func NewModel(cfg Config) *Model {
	reg := listbox.NewRegistry()
	vp := newListViewport()
	scroll := listbox.NewScrollController(vp)
	eng := listbox.New(reg, listbox.WithScroll(scroll))
	for _, opt := range cfg.Options {
		reg.Add(opt.Value, opt.Label)
		events.Select.Register(eng.ID(), opt.Value, opt.Label)
	}
	m := &Model{
		engine:      eng,
		vp:          vp,
		scroll:      scroll,
		showFooter:  cfg.ShowFooter,
		placeholder: cfg.Placeholder,
		valueLabel:  cfg.ValueLabel,
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	if cfg.InitialValue != "" {
		eng.SetValue(cfg.InitialValue)
	}
	if cfg.DefaultOpen {
		eng.SetOpen(true)
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Query != nil {
		c.TextStyle = styles.Query.Copy()
	}
	c.SetChar(" ")
	m.queryCursor = c
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Engine exposes the widget engine, primarily for tests and for embedding
// hosts that drive selection imperatively.
func (m *Model) Engine() *listbox.Engine {
	return m.engine
}

// AddOption registers an option while the widget is live.
func (m *Model) AddOption(value, label string) {
	m.engine.Registry().Add(value, label)
	events.Select.Register(m.engine.ID(), value, label)
	m.syncViewport()
}

// RemoveOption unregisters the option holding the value.
func (m *Model) RemoveOption(value string) {
	if m.engine.Registry().Remove(value) {
		events.Select.Unregister(m.engine.ID(), value)
	}
	m.syncViewport()
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if cmd := m.queryCursor.Focus(); cmd != nil {
		return cmd
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateQueryCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(autoScrollTickMsg{}): m.handleAutoScrollTick,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.queryCursorDirty {
		m.queryCursorDirty = false
		m.queryCursor.Blink = false
		if cmd := m.queryCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// syncViewport keeps the viewport geometry in step with the registry and the
// terminal, and keeps the highlighted item visible.
func (m *Model) syncViewport() {
	m.vp.content = m.engine.Registry().Len()
	m.vp.height = m.maxVisibleItems()
	m.vp.clamp()
	if cursor := m.engine.Cursor(); cursor >= 0 {
		m.scroll.IntoView(cursor, false)
	}
}

// startAutoScroll begins a fresh continuous-scroll task toward dir, replacing
// any live chain. Returns nil when the affordance is at its boundary.
func (m *Model) startAutoScroll(dir listbox.ScrollDirection) tea.Cmd {
	if m.scroll.AutoActive() && m.autoScrollDir == dir {
		return nil
	}
	if !m.scroll.StartAuto(dir) {
		return nil
	}
	m.autoScrollSeq++
	m.autoScrollDir = dir
	events.Scroll.AutoStart(m.engine.ID(), int(dir))
	return m.autoScrollTickCmd(m.autoScrollSeq)
}

func (m *Model) stopAutoScroll() {
	if !m.scroll.AutoActive() {
		return
	}
	m.scroll.StopAuto()
	m.autoScrollSeq++
	events.Scroll.AutoStop(m.engine.ID())
}

func (m *Model) handleAutoScrollTick(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(autoScrollTickMsg)
	if !ok || tick.seq != m.autoScrollSeq {
		return nil
	}
	if !m.scroll.Tick() {
		events.Scroll.AutoStop(m.engine.ID())
		return nil
	}
	return m.autoScrollTickCmd(tick.seq)
}

func (m *Model) autoScrollTickCmd(seq int) tea.Cmd {
	return tea.Tick(autoScrollInterval, func(time.Time) tea.Msg {
		return autoScrollTickMsg{seq: seq}
	})
}
