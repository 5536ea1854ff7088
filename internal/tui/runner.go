package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"charform/internal/character"
	"charform/internal/form"
	"charform/internal/logger"
)

// Run starts the TUI and blocks until the user quits. Quitting cancels any
// creation call still in flight.
func Run(ctx context.Context, f *form.Form, creator character.Creator, backend string) (form.State, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(ctx, f, creator, backend)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		logger.Error("tui exited: %v", err)
		return f.State(), fmt.Errorf("run tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return f.State(), nil
}
