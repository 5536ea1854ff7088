package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"charform/internal/form"
)

// FieldComponent renders one labeled text input with its validation message
type FieldComponent struct {
	field   form.FieldSpec
	input   textinput.Model
	width   int
	focused bool
}

// NewFieldComponent creates a new field component
func NewFieldComponent(field form.FieldSpec, input textinput.Model, width int, focused bool) *FieldComponent {
	return &FieldComponent{
		field:   field,
		input:   input,
		width:   width,
		focused: focused,
	}
}

// Render renders the label, the bordered input and the error beneath it
func (f *FieldComponent) Render() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	if f.focused {
		labelStyle = labelStyle.Bold(true).Foreground(lipgloss.Color("214"))
	}

	borderColor := lipgloss.Color("240")
	switch {
	case f.field.Error != "":
		borderColor = lipgloss.Color("196") // Red
	case f.focused:
		borderColor = lipgloss.Color("214")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(max(f.width-2, 10)).
		Padding(0, 1).
		Render(f.input.View())

	var b strings.Builder
	b.WriteString(labelStyle.Render(f.field.Label))
	b.WriteString("\n")
	b.WriteString(box)
	if f.field.Error != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			PaddingLeft(1).
			Render(f.field.Error))
	}
	return b.String()
}
