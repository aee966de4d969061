package ui

import (
	"github.com/atomicstack/select-control/internal/listbox"
	tea "github.com/charmbracelet/bubbletea"
)

// wheelStep is how many rows a single wheel notch scrolls the open list.
const wheelStep = 3

// handleMouseMsg dispatches pointer events: wheel scrolling, hover
// highlighting, press-and-hold on the scroll affordances, and clicks on the
// trigger or an option row.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if m.engine.IsOpen() {
			m.vp.ScrollBy(-wheelStep)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if m.engine.IsOpen() {
			m.vp.ScrollBy(wheelStep)
		}
		return nil
	}
	switch ev.Action {
	case tea.MouseActionMotion:
		return m.handleMouseMotion(ev)
	case tea.MouseActionPress:
		if ev.Button == tea.MouseButtonLeft {
			return m.handleMousePress(ev)
		}
	case tea.MouseActionRelease:
		m.handleMouseRelease(ev)
	}
	return nil
}

// handleMouseMotion maps pointer position to hover state. Resting on a scroll
// affordance starts the continuous-scroll task; leaving it stops the task.
func (m *Model) handleMouseMotion(ev tea.MouseMsg) tea.Cmd {
	if !m.engine.IsOpen() {
		return nil
	}
	switch {
	case ev.Y == upRow:
		return m.startAutoScroll(listbox.ScrollUp)
	case ev.Y == m.downRow():
		return m.startAutoScroll(listbox.ScrollDown)
	default:
		m.stopAutoScroll()
		if idx, ok := m.itemAt(ev.Y); ok {
			m.engine.Hover(idx)
		}
	}
	return nil
}

// handleMousePress toggles the widget from its trigger row. Opening via the
// pointer highlights the currently selected option, matching keyboard
// open-current behaviour.
func (m *Model) handleMousePress(ev tea.MouseMsg) tea.Cmd {
	if ev.Y != triggerRow {
		return nil
	}
	open := !m.engine.IsOpen()
	m.engine.SetOpen(open)
	if open {
		if idx := m.engine.Registry().IndexOf(m.engine.Value()); idx >= 0 {
			m.engine.MoveCursor(idx)
		}
	}
	m.syncViewport()
	return nil
}

// handleMouseRelease commits the option under the pointer. Release rather
// than press commits, so a press-drag-release across rows selects the row
// the pointer ends on.
func (m *Model) handleMouseRelease(ev tea.MouseMsg) {
	m.stopAutoScroll()
	if !m.engine.IsOpen() {
		return
	}
	if idx, ok := m.itemAt(ev.Y); ok {
		m.engine.Click(idx)
		m.syncViewport()
	}
}

// itemAt resolves a screen row to the live index of the option rendered
// there, accounting for the current scroll window.
func (m *Model) itemAt(y int) (int, bool) {
	start, end := m.vp.window()
	if y < firstItemRow || y >= firstItemRow+(end-start) {
		return 0, false
	}
	return start + (y - firstItemRow), true
}
