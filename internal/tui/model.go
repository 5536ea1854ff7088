package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"charform/internal/character"
	"charform/internal/form"
	"charform/internal/tui/components"
)

const defaultWidth = 60

// Model represents the Bubble Tea model for the character form
type Model struct {
	ctx     context.Context
	form    *form.Form
	creator character.Creator
	backend string

	inputs []textinput.Model
	// focus indexes inputs; len(inputs) is the submit button
	focus int

	viewport struct {
		width  int
		height int
	}
	spinner   *components.SpinnerComponent
	helpModal *components.HelpModal
}

// createResultMsg carries the outcome of a creation call
type createResultMsg struct {
	Err error
}

// AnimationTickMsg represents a tick for spinner animations
type AnimationTickMsg struct{}

// NewModel creates a new TUI model over f. backend is only shown in the footer.
func NewModel(ctx context.Context, f *form.Form, creator character.Creator, backend string) Model {
	fields := f.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 128
		if !field.Required {
			ti.Placeholder = "optional"
		}
		ti.Width = defaultWidth - 6
		inputs[i] = ti
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	m := Model{
		ctx:       ctx,
		form:      f,
		creator:   creator,
		backend:   backend,
		inputs:    inputs,
		helpModal: components.NewHelpModal(!f.OneShotEnabled()),
	}
	m.viewport.width = defaultWidth
	return m
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State exposes the form state for callers that inspect the result after the
// program exits.
func (m Model) State() form.State {
	return m.form.State()
}
