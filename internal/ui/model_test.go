package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func fruitConfig() Config {
	return Config{
		Width:       40,
		Height:      16,
		Placeholder: "Select a fruit…",
		Options: []Option{
			{Value: "apple", Label: "Apple"},
			{Value: "banana", Label: "Banana"},
			{Value: "avocado", Label: "Avocado"},
			{Value: "blueberry", Label: "Blueberry"},
			{Value: "cherry", Label: "Cherry"},
			{Value: "grape", Label: "Grape"},
			{Value: "kiwi", Label: "Kiwi"},
			{Value: "lemon", Label: "Lemon"},
			{Value: "mango", Label: "Mango"},
			{Value: "orange", Label: "Orange"},
		},
	}
}

func newFruitHarness(t *testing.T) *Harness {
	t.Helper()
	return NewHarness(NewModel(fruitConfig()))
}

func TestEnterOpensAndArrowsSelect(t *testing.T) {
	h := newFruitHarness(t)
	eng := h.Model().Engine()

	h.SendKey(tea.KeyEnter)
	if !eng.IsOpen() {
		t.Fatalf("expected Enter to open the list")
	}
	if got := eng.Cursor(); got != -1 {
		t.Fatalf("expected no highlight after plain open, got %d", got)
	}

	h.SendKey(tea.KeyDown)
	h.SendKey(tea.KeyDown)
	if got := eng.Cursor(); got != 1 {
		t.Fatalf("expected cursor 1 after two ArrowDown, got %d", got)
	}

	h.SendKey(tea.KeyEnter)
	if eng.IsOpen() {
		t.Fatalf("expected Enter to close the list after committing")
	}
	if got := eng.Value(); got != "banana" {
		t.Fatalf("expected committed value banana, got %q", got)
	}
}

func TestEscapeClosesWithoutCommit(t *testing.T) {
	h := newFruitHarness(t)
	eng := h.Model().Engine()

	h.SendKey(tea.KeyDown)
	h.SendKey(tea.KeyDown)
	if got := eng.Cursor(); got != 0 {
		t.Fatalf("expected cursor 0, got %d", got)
	}
	h.SendKey(tea.KeyEsc)
	if eng.IsOpen() {
		t.Fatalf("expected Escape to close the list")
	}
	if got := eng.Value(); got != "" {
		t.Fatalf("expected no committed value, got %q", got)
	}
}

func TestEscapeWhileClosedQuits(t *testing.T) {
	h := newFruitHarness(t)
	h.SendKey(tea.KeyEsc)
	cmd := h.PendingCmd()
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg from Escape while closed")
	}
}

func TestTypingWhileOpenJumpsCursor(t *testing.T) {
	h := newFruitHarness(t)
	eng := h.Model().Engine()

	h.SendKey(tea.KeyEnter)
	h.Type("b")
	if got := eng.Cursor(); got != 1 {
		t.Fatalf("expected cursor on banana (1), got %d", got)
	}
	if got := eng.Snapshot().Query; got != "b" {
		t.Fatalf("expected query %q, got %q", "b", got)
	}
}

func TestTypingWhileClosedOpensWithQuery(t *testing.T) {
	h := newFruitHarness(t)
	eng := h.Model().Engine()

	h.Type("c")
	if !eng.IsOpen() {
		t.Fatalf("expected printable key to open the list")
	}
	if got := eng.Cursor(); got != 4 {
		t.Fatalf("expected cursor on cherry (4), got %d", got)
	}
}

func TestWindowResizeRecomputesViewport(t *testing.T) {
	cfg := fruitConfig()
	cfg.Width = 0
	cfg.Height = 0
	h := NewHarness(NewModel(cfg))

	h.Send(tea.WindowSizeMsg{Width: 30, Height: 12})
	m := h.Model()
	if m.width != 30 || m.height != 12 {
		t.Fatalf("expected 30x12 geometry, got %dx%d", m.width, m.height)
	}
	if got := m.vp.height; got != 5 {
		t.Fatalf("expected 5 visible rows at height 12, got %d", got)
	}
}

func TestFixedGeometryIgnoresResize(t *testing.T) {
	h := newFruitHarness(t)
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 50})
	m := h.Model()
	if m.width != 40 || m.height != 16 {
		t.Fatalf("expected fixed 40x16 geometry, got %dx%d", m.width, m.height)
	}
}

func TestAddRemoveOptionSyncsViewport(t *testing.T) {
	h := newFruitHarness(t)
	m := h.Model()

	m.AddOption("fig", "Fig")
	if got := m.vp.content; got != 11 {
		t.Fatalf("expected content height 11 after add, got %d", got)
	}
	m.RemoveOption("fig")
	if got := m.vp.content; got != 10 {
		t.Fatalf("expected content height 10 after remove, got %d", got)
	}
}

func TestAutoScrollRunsToBoundary(t *testing.T) {
	h := newFruitHarness(t)
	m := h.Model()

	h.SendKey(tea.KeyEnter)
	h.Send(tea.MouseMsg{Y: m.downRow(), Action: tea.MouseActionMotion})
	if !m.scroll.AutoActive() {
		t.Fatalf("expected auto-scroll task after hovering the down affordance")
	}
	h.RunPending(8)
	if m.scroll.AutoActive() {
		t.Fatalf("expected auto-scroll to stop at the boundary")
	}
	// 10 options, 9 visible rows: one row of scroll headroom.
	if got := m.vp.offset; got != 1 {
		t.Fatalf("expected offset 1 at the bottom boundary, got %d", got)
	}
}

func TestAutoScrollRefusedAtBoundary(t *testing.T) {
	h := newFruitHarness(t)
	m := h.Model()

	h.SendKey(tea.KeyEnter)
	h.Send(tea.MouseMsg{Y: upRow, Action: tea.MouseActionMotion})
	if m.scroll.AutoActive() {
		t.Fatalf("expected up affordance to refuse at the top boundary")
	}
	if h.PendingCmd() != nil {
		t.Fatalf("expected no scheduled frames for a refused task")
	}
}
