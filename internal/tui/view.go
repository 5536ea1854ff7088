package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"charform/internal/form"
	"charform/internal/tui/components"
)

// View renders the TUI
func (m Model) View() string {
	if m.helpModal.IsVisible() {
		return m.helpModal.View()
	}

	width := m.viewport.width
	state := m.form.State()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		MarginBottom(1).
		Render(form.Heading))
	b.WriteString("\n")

	for i, field := range m.form.Fields() {
		b.WriteString(components.NewFieldComponent(field, m.inputs[i], width, m.focus == i).Render())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.NewButtonComponent(form.SubmitLabel, m.buttonFocused(), state.Submitting).Render())
	b.WriteString("\n")

	if state.Submitting && m.spinner != nil {
		b.WriteString("\n  " + m.spinner.Render() + "\n")
	}

	box := components.NewMessageBoxComponent(state.Status, form.MessageFor(state), width)
	if box.Visible() {
		b.WriteString("\n")
		b.WriteString(box.Render())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.NewFooterComponent(state.Status, state.Submitting, m.backend, width).Render())
	return b.String()
}
