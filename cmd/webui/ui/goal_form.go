package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type GoalCreatedMsg struct{}

type GoalFormModel struct {
	Session    *Session
	Inputs     []textinput.Model
	FocusIdx   int
	Submitting bool
	Err        error
}

const (
	goalName = iota
	goalDescription
	goalStartDate
	goalTargetDate
	goalTargetValue
	goalUnit
)

func NewGoalFormModel(s *Session) GoalFormModel {
	inputs := make([]textinput.Model, 6)

	inputs[goalName] = textinput.New()
	inputs[goalName].Placeholder = "Run a marathon"
	inputs[goalName].Prompt = "Name: "
	inputs[goalName].Focus()

	inputs[goalDescription] = textinput.New()
	inputs[goalDescription].Placeholder = "(optional)"
	inputs[goalDescription].Prompt = "Description: "

	inputs[goalStartDate] = textinput.New()
	inputs[goalStartDate].Placeholder = "2026-01-01"
	inputs[goalStartDate].Prompt = "Start date: "

	inputs[goalTargetDate] = textinput.New()
	inputs[goalTargetDate].Placeholder = "2026-06-01"
	inputs[goalTargetDate].Prompt = "Target date: "

	inputs[goalTargetValue] = textinput.New()
	inputs[goalTargetValue].Placeholder = "42.2"
	inputs[goalTargetValue].Prompt = "Target value: "

	inputs[goalUnit] = textinput.New()
	inputs[goalUnit].Placeholder = "km"
	inputs[goalUnit].Prompt = "Unit (kg/lbs/km/miles/steps/calories/minutes/other): "

	return GoalFormModel{Session: s, Inputs: inputs}
}

func (m GoalFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m GoalFormModel) Update(msg tea.Msg) (GoalFormModel, tea.Cmd) {
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

func (m *GoalFormModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *GoalFormModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m GoalFormModel) submitCmd() tea.Msg {
	value, err := strconv.ParseFloat(m.Inputs[goalTargetValue].Value(), 64)
	if err != nil || value <= 0 {
		return errMsg(errInvalidValue)
	}
	_, err = m.Session.CreateGoal(
		m.Inputs[goalName].Value(),
		m.Inputs[goalDescription].Value(),
		m.Inputs[goalStartDate].Value(),
		m.Inputs[goalTargetDate].Value(),
		value,
		m.Inputs[goalUnit].Value(),
	)
	if err != nil {
		return errMsg(err)
	}
	return GoalCreatedMsg{}
}

func (m GoalFormModel) View() string {
	s := titleStyle.Render("New goal") + "\n\n"
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
