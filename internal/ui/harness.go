package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests. Key
// and mouse handling mutate the engine synchronously, so Send does not
// execute returned commands by itself; RunPending replays them on demand
// with a hop budget, since the cursor blink command re-arms forever.
type Harness struct {
	model   *Model
	pending tea.Cmd
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and stores the returned command.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.pending = cmd
}

// SendKey synthesizes a special-key press.
func (h *Harness) SendKey(key tea.KeyType) {
	h.Send(tea.KeyMsg{Type: key})
}

// Type sends each rune of s as its own key press.
func (h *Harness) Type(s string) {
	for _, r := range s {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// RunPending executes up to hops command invocations, feeding produced
// messages back through the model and unpacking batches.
func (h *Harness) RunPending(hops int) {
	queue := []tea.Cmd{h.pending}
	h.pending = nil
	for hops > 0 && len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		hops--
		msg := cmd()
		if msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		if next != nil {
			queue = append(queue, next)
		}
	}
}

// PendingCmd exposes the command returned by the last Send.
func (h *Harness) PendingCmd() tea.Cmd {
	return h.pending
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
