package ui

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errInvalidValue = errors.New("value must be a positive number")

type ProgressCreatedMsg struct{}

type ProgressFormModel struct {
	Session    *Session
	GoalID     string
	Inputs     []textinput.Model
	FocusIdx   int
	Submitting bool
	Err        error
}

const (
	progressDate = iota
	progressValue
)

func NewProgressFormModel(s *Session, goalID string) ProgressFormModel {
	inputs := make([]textinput.Model, 2)

	inputs[progressDate] = textinput.New()
	inputs[progressDate].Placeholder = "2026-03-15"
	inputs[progressDate].Prompt = "Date: "
	inputs[progressDate].Focus()

	inputs[progressValue] = textinput.New()
	inputs[progressValue].Placeholder = "5.0"
	inputs[progressValue].Prompt = "Value: "

	return ProgressFormModel{Session: s, GoalID: goalID, Inputs: inputs}
}

func (m ProgressFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ProgressFormModel) Update(msg tea.Msg) (ProgressFormModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 && !m.Submitting {
				m.Submitting = true
				m.Err = nil
				return m, m.submitCmd
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		}
	case errMsg:
		m.Submitting = false
		m.Err = msg
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *ProgressFormModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *ProgressFormModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m ProgressFormModel) submitCmd() tea.Msg {
	value, err := strconv.ParseFloat(m.Inputs[progressValue].Value(), 64)
	if err != nil || value <= 0 {
		return errMsg(errInvalidValue)
	}
	if _, err := m.Session.CreateProgress(m.GoalID, m.Inputs[progressDate].Value(), value); err != nil {
		return errMsg(err)
	}
	return ProgressCreatedMsg{}
}

func (m ProgressFormModel) View() string {
	s := titleStyle.Render("Log progress") + "\n\n"
	for i := range m.Inputs {
		s += m.Inputs[i].View() + "\n"
	}
	s += "\n" + blurredStyle.Render("Enter on the last field to submit, Esc to cancel")
	if m.Submitting {
		s += "\n" + statusMessageStyle("Saving...")
	}
	if m.Err != nil {
		s += "\n" + errorMessageStyle(m.Err.Error())
	}
	return s
}
