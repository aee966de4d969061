package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/select-control/internal/listbox"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Fixed layout rows, counted from the top of the screen. Mouse hit testing
// in mouse.go depends on these matching what View emits.
const (
	headerRow    = 0
	triggerRow   = 2
	upRow        = 3
	firstItemRow = 4
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.headerText(), style: styles.Header})
	lines = append(lines, styledLine{})
	lines = append(lines, m.buildTriggerLine())
	if m.engine.IsOpen() {
		lines = append(lines, m.buildScrollLine("▲", m.scroll.UpDisabled()))
		start, end := m.vp.window()
		if end == start {
			lines = append(lines, styledLine{text: "  (no options)", style: styles.Info})
		}
		snap := m.engine.Snapshot()
		for i := start; i < end; i++ {
			item, ok := m.engine.Registry().At(i)
			if !ok {
				break
			}
			lines = append(lines, m.buildItemLine(item, i, snap))
		}
		lines = append(lines, m.buildScrollLine("▼", m.scroll.DownDisabled()))
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  enter select  type to jump  esc close  ctrl+c quit", style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (error/status + typeahead prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := applyWidth([]styledLine{statusLine}, m.width)
	lines = append(lines, bottomLines...)
	rendered := renderLines(lines)
	// The prompt carries its own ANSI styling and cursor state; append it
	// outside the rune-based width pass.
	return rendered + "\n" + m.queryPrompt()
}

func (m *Model) headerText() string {
	if m.placeholder != "" {
		return m.placeholder
	}
	return "Select an option"
}

// buildTriggerLine renders the collapsed control: an arrow plus the display
// label projected from the current value.
func (m *Model) buildTriggerLine() styledLine {
	value := m.engine.Value()
	display := listbox.DisplayLabel(m.engine.Registry(), value, m.valueLabel, m.placeholder)
	arrow := "▾"
	lineStyle := styles.Trigger
	if m.engine.IsOpen() {
		arrow = "▴"
		lineStyle = styles.TriggerOpen
	}
	if value == "" && m.valueLabel == "" {
		lineStyle = styles.Placeholder
	}
	return styledLine{text: arrow + " " + display, style: lineStyle}
}

func (m *Model) buildScrollLine(glyph string, disabled bool) styledLine {
	style := styles.ScrollButton
	if disabled {
		style = styles.ScrollButtonDisabled
	}
	return styledLine{text: "  " + glyph, style: style}
}

// buildItemLine constructs a single option row. The highlighted row gets the
// selected styles; the committed value gets a check mark.
func (m *Model) buildItemLine(item listbox.Item, idx int, snap listbox.State) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	mark := "  "
	if item.Value != "" && item.Value == snap.Value {
		mark = "✓ "
	}
	if idx == snap.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + mark + item.Label()
	if m.width > 0 {
		if pad := m.width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// downRow returns the screen row of the down-scroll affordance, which sits
// directly beneath the visible item rows.
func (m *Model) downRow() int {
	start, end := m.vp.window()
	rows := end - start
	if rows == 0 {
		rows = 1 // the "(no options)" row
	}
	return firstItemRow + rows
}

// maxVisibleItems reports how many option rows fit between the fixed chrome
// and the bottom bar.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return 8
	}
	used := 7 // header + blank + trigger + two affordances + bottom bar
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if len([]rune(text)) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
