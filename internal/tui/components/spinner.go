package components

import (
	"fmt"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerComponent renders an animated spinner while a submission is in flight
type SpinnerComponent struct {
	current int
	message string
}

// NewSpinnerComponent creates a new spinner with optional message
func NewSpinnerComponent(message string) *SpinnerComponent {
	return &SpinnerComponent{message: message}
}

// Tick advances the spinner to the next frame
func (s *SpinnerComponent) Tick() {
	s.current = (s.current + 1) % len(spinnerFrames)
}

// Render returns the current spinner frame with message
func (s *SpinnerComponent) Render() string {
	frame := spinnerFrames[s.current]
	if s.message != "" {
		return fmt.Sprintf("%s %s", frame, s.message)
	}
	return frame
}
