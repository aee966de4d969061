package app

import (
	"errors"

	"github.com/atomicstack/select-control/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Option is a selectable entry supplied by configuration.
type Option struct {
	Value string
	Label string
}

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	ShowFooter   bool
	Placeholder  string
	InitialValue string
	// ValueLabel overrides the displayed label for the selected value.
	ValueLabel  string
	DefaultOpen bool
	Options     []Option
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := ui.NewModel(ui.Config{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Placeholder:  cfg.Placeholder,
		InitialValue: cfg.InitialValue,
		ValueLabel:   cfg.ValueLabel,
		DefaultOpen:  cfg.DefaultOpen,
		Options:      options(cfg.Options),
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func options(opts []Option) []ui.Option {
	out := make([]ui.Option, 0, len(opts))
	for _, opt := range opts {
		out = append(out, ui.Option{Value: opt.Value, Label: opt.Label})
	}
	return out
}
