package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpModal represents a help modal showing the form key bindings
type HelpModal struct {
	visible   bool
	resetable bool
}

// NewHelpModal creates a new help modal. resetable controls whether the
// reset binding is listed.
func NewHelpModal(resetable bool) *HelpModal {
	return &HelpModal{resetable: resetable}
}

// Show makes the help modal visible
func (h *HelpModal) Show() {
	h.visible = true
}

// Hide makes the help modal invisible
func (h *HelpModal) Hide() {
	h.visible = false
}

// IsVisible returns whether the modal is visible
func (h *HelpModal) IsVisible() bool {
	return h.visible
}

// View renders the help modal
func (h *HelpModal) View() string {
	if !h.visible {
		return ""
	}

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Background(lipgloss.Color("235"))

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")).
		MarginBottom(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("246"))

	bindings := [][2]string{
		{"Tab / Down", "Next field"},
		{"Shift+Tab / Up", "Previous field"},
		{"Enter", "Next field, or submit on the button"},
		{"Ctrl+S", "Submit the form"},
	}
	if h.resetable {
		bindings = append(bindings, [2]string{"Ctrl+R", "Start a new character after a result"})
	}
	bindings = append(bindings, [2]string{"Ctrl+C", "Exit application"})

	var content strings.Builder
	content.WriteString(titleStyle.Render("Character Form Help"))
	content.WriteString("\n\n")
	for _, binding := range bindings {
		content.WriteString(keyStyle.Render(binding[0]) + " - " + descStyle.Render(binding[1]))
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(descStyle.Render("Press Esc to close this help"))

	return modalStyle.Render(content.String())
}
