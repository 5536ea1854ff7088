package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"charform/internal/form"
	"charform/internal/logger"
	"charform/internal/tui/components"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.width = msg.Width
		m.viewport.height = msg.Height
		for i := range m.inputs {
			m.inputs[i].Width = max(msg.Width-6, 10) // border, padding and cursor
		}
		return m, nil

	case tea.KeyMsg:
		if m.helpModal.IsVisible() {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "enter", "?":
				m.helpModal.Hide()
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "ctrl+s":
			return m.submit()
		case "ctrl+r":
			return m.reset()
		case "enter":
			if m.buttonFocused() {
				return m.submit()
			}
			return m, m.setFocus(m.focus + 1)
		case "?":
			if m.buttonFocused() {
				m.helpModal.Show()
				return m, nil
			}
		}

		if m.buttonFocused() {
			return m, nil
		}
		return m.updateFocusedInput(msg)

	case createResultMsg:
		if msg.Err != nil {
			m.form.Dispatch(form.SubmissionFailed{Err: msg.Err})
			logger.Error("character creation failed: %v", msg.Err)
		} else {
			m.form.Dispatch(form.SubmissionSucceeded{})
			logger.Info("character creation succeeded")
		}
		m.spinner = nil
		m.syncInputs()
		return m, nil

	case AnimationTickMsg:
		if m.spinner != nil && m.form.State().Submitting {
			m.spinner.Tick()
			return m, m.startAnimation()
		}
		return m, nil
	}

	if m.buttonFocused() {
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards msg to the focused input and reports any value
// change to the form.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	i := m.focus
	before := m.inputs[i].Value()

	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	if after := m.inputs[i].Value(); after != before {
		m.form.Dispatch(form.FieldChanged{Name: m.fieldName(i), Value: after})
	}
	return m, cmd
}

// submit runs validation and starts the creation call when it passes
func (m Model) submit() (tea.Model, tea.Cmd) {
	eff := m.form.Dispatch(form.SubmitRequested{})

	create, ok := eff.(form.CreateEffect)
	if !ok {
		if errs := m.form.State().Errors; len(errs) > 0 {
			logger.Debug("validation failed for %d field(s)", len(errs))
			m.focusFirstError()
		}
		return m, nil
	}

	logger.Info("submitting character %q", create.Record["name"])
	m.spinner = components.NewSpinnerComponent("Creating character...")
	return m, tea.Batch(m.startAnimation(), m.create(create.Record))
}

func (m Model) create(rec form.Record) tea.Cmd {
	ctx := m.ctx
	creator := m.creator
	return func() tea.Msg {
		return createResultMsg{Err: creator.Create(ctx, rec)}
	}
}

// reset returns a finished form to READY and clears the inputs
func (m Model) reset() (tea.Model, tea.Cmd) {
	before := m.form.State().Status
	m.form.Dispatch(form.ResetRequested{})
	if before == m.form.State().Status {
		return m, nil
	}
	logger.Debug("form reset from %s", before)
	m.syncInputs()
	return m, m.setFocus(0)
}

// syncInputs copies the working record back into the inputs
func (m Model) syncInputs() {
	rec := m.form.State().Record
	for i := range m.inputs {
		name := m.fieldName(i)
		if m.inputs[i].Value() != rec[name] {
			m.inputs[i].SetValue(rec[name])
		}
	}
}

// setFocus moves focus to idx, wrapping around fields and the button
func (m *Model) setFocus(idx int) tea.Cmd {
	n := len(m.inputs) + 1
	m.focus = ((idx % n) + n) % n

	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) focusFirstError() {
	errs := m.form.State().Errors
	for i := range m.inputs {
		if _, ok := errs[m.fieldName(i)]; ok {
			m.setFocus(i)
			return
		}
	}
}

func (m Model) buttonFocused() bool {
	return m.focus == len(m.inputs)
}

func (m Model) fieldName(i int) string {
	return m.form.Fields()[i].Name
}

func (m Model) startAnimation() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return AnimationTickMsg{}
	})
}
