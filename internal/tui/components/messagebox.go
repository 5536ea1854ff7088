package components

import (
	"github.com/charmbracelet/lipgloss"

	"charform/internal/form"
)

// MessageBoxComponent renders the result of a submission
type MessageBoxComponent struct {
	status form.Status
	text   string
	width  int
}

// NewMessageBoxComponent creates a new message box component
func NewMessageBoxComponent(status form.Status, text string, width int) *MessageBoxComponent {
	return &MessageBoxComponent{
		status: status,
		text:   text,
		width:  width,
	}
}

// Visible reports whether the box has anything to show
func (m *MessageBoxComponent) Visible() bool {
	return m.status.Terminal()
}

// Render renders the box, or "" while the form is READY
func (m *MessageBoxComponent) Render() string {
	if !m.Visible() {
		return ""
	}

	var fg lipgloss.Color
	if m.status == form.StatusSuccess {
		fg = lipgloss.Color("42") // Green
	} else {
		fg = lipgloss.Color("196") // Red
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Foreground(fg).
		Width(max(m.width-2, 10)).
		Padding(0, 1).
		Render(m.text)
}
