package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateQueryCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.queryCursor, cmd = m.queryCursor.Update(msg)
	return cmd
}

// handleKeyMsg routes a terminal key press into the engine's keydown entry
// point. Keys the engine leaves unhandled keep their terminal meaning, which
// is how ctrl+c and Escape-on-a-closed-widget exit the program.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	key, alt, ok := engineKey(keyMsg)
	if !ok {
		return nil
	}
	if key == "Escape" && !m.engine.IsOpen() {
		return tea.Quit
	}
	before := m.engine.Snapshot().Query
	if !m.engine.HandleKey(key, alt) {
		return nil
	}
	m.errMsg = ""
	if m.engine.Snapshot().Query != before {
		m.queryCursorDirty = true
	}
	m.syncViewport()
	return nil
}

// engineKey translates a Bubble Tea key message to the DOM-style key name the
// action resolver understands.
func engineKey(msg tea.KeyMsg) (key string, alt, ok bool) {
	switch msg.Type {
	case tea.KeyUp:
		return "ArrowUp", msg.Alt, true
	case tea.KeyDown:
		return "ArrowDown", msg.Alt, true
	case tea.KeyEnter:
		return "Enter", msg.Alt, true
	case tea.KeySpace:
		return " ", msg.Alt, true
	case tea.KeyTab:
		return "Tab", msg.Alt, true
	case tea.KeyEsc:
		return "Escape", msg.Alt, true
	case tea.KeyHome:
		return "Home", msg.Alt, true
	case tea.KeyEnd:
		return "End", msg.Alt, true
	case tea.KeyPgUp:
		return "PageUp", msg.Alt, true
	case tea.KeyPgDown:
		return "PageDown", msg.Alt, true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return "", false, false
		}
		return string(msg.Runes), false, true
	}
	return "", false, false
}

// queryPrompt renders the bottom-bar typeahead line with a caret at the end
// of the buffer.
func (m *Model) queryPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.queryCursor.Style = styles.Cursor.Copy()
	}
	if styles.Query != nil {
		m.queryCursor.TextStyle = styles.Query.Copy()
	} else {
		m.queryCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.QueryPrompt != nil {
		prompt = styles.QueryPrompt.Render(prompt)
	}
	query := m.engine.Snapshot().Query
	if query == "" {
		placeholder := "(type to jump)"
		runes := []rune(placeholder)
		var caretRune, rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.QueryPlaceholder != nil {
			m.queryCursor.TextStyle = styles.QueryPlaceholder.Copy()
		}
		caret := m.renderQueryCursor(caretRune)
		return prompt + caret + render(styles.QueryPlaceholder, rest)
	}
	return prompt + render(styles.Query, query) + m.renderQueryCursor(" ")
}

func (m *Model) renderQueryCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.queryCursor.SetChar(char)

	base := m.queryCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.queryCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
