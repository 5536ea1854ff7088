package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"charform/internal/form"
)

// FooterComponent handles the rendering of the status bar footer
type FooterComponent struct {
	status     form.Status
	submitting bool
	backend    string
	width      int
}

// NewFooterComponent creates a new footer component
func NewFooterComponent(status form.Status, submitting bool, backend string, width int) *FooterComponent {
	return &FooterComponent{
		status:     status,
		submitting: submitting,
		backend:    backend,
		width:      width,
	}
}

// Render renders the status indicator followed by the footer bar
func (f *FooterComponent) Render() string {
	statusText := " " + f.status.String() + " "
	statusColor := "4" // Blue for READY
	switch {
	case f.submitting:
		statusText = " SUBMITTING "
		statusColor = "3" // Yellow
	case f.status == form.StatusSuccess:
		statusColor = "2" // Green
	case f.status == form.StatusError:
		statusColor = "1" // Red
	}

	indicator := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(statusColor)).
		Render(statusText)

	remainingWidth := f.width - lipgloss.Width(indicator)

	sections := []string{"charform", f.backend, "ctrl+s submit · ? help · ctrl+c quit"}
	totalContentWidth := 0
	for _, section := range sections {
		totalContentWidth += len(section)
	}

	// 3 spaces between sections plus 2 for padding
	separatorCount := len(sections) - 1
	availableWidth := remainingWidth - totalContentWidth - separatorCount*3 - 2
	extraSpacePerGap := max(availableWidth/separatorCount, 0)
	separator := strings.Repeat(" ", 3+extraSpacePerGap)

	partStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Background(lipgloss.Color("236"))

	styled := make([]string, len(sections))
	for i, section := range sections {
		styled[i] = partStyle.Render(section)
	}
	composed := strings.Join(styled, partStyle.Render(separator))

	mainFooter := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Width(max(remainingWidth, 0)).
		Padding(0, 1).
		Render(composed)

	return indicator + mainFooter
}
