package components

import "github.com/charmbracelet/lipgloss"

// ButtonComponent renders the submit button
type ButtonComponent struct {
	label    string
	focused  bool
	disabled bool
}

// NewButtonComponent creates a new button component
func NewButtonComponent(label string, focused, disabled bool) *ButtonComponent {
	return &ButtonComponent{label: label, focused: focused, disabled: disabled}
}

// Render renders the button, highlighted when focused and dimmed when disabled
func (b *ButtonComponent) Render() string {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238"))

	switch {
	case b.disabled:
		style = style.Foreground(lipgloss.Color("242"))
	case b.focused:
		style = style.Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214"))
	}
	return style.Render(b.label)
}
