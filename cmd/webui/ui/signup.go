package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type SignupModel struct {
	Session    *Session
	Inputs     []textinput.Model
	FocusIdx   int
	Submitting bool
	Err        error
}

const (
	signupUsername = iota
	signupEmail
	signupPassword
)

func NewSignupModel(s *Session) SignupModel {
	inputs := make([]textinput.Model, 3)

	inputs[signupUsername] = textinput.New()
	inputs[signupUsername].Placeholder = "username"
	inputs[signupUsername].Prompt = "Username: "
	inputs[signupUsername].Focus()

	inputs[signupEmail] = textinput.New()
	inputs[signupEmail].Placeholder = "you@example.com"
	inputs[signupEmail].Prompt = "Email: "

	inputs[signupPassword] = textinput.New()
	inputs[signupPassword].Placeholder = "at least 6 characters"
	inputs[signupPassword].EchoMode = textinput.EchoPassword
	inputs[signupPassword].Prompt = "Password: "

	return SignupModel{Session: s, Inputs: inputs}
}

func (m SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SignupModel) Update(msg tea.Msg) (SignupModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 && !m.Submitting {
				m.Submitting = true
				m.Err = nil
				return m, m.signupCmd
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		}
	case LoginDoneMsg:
		m.Submitting = false
	case errMsg:
		m.Submitting = false
		m.Err = msg
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *SignupModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *SignupModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m SignupModel) signupCmd() tea.Msg {
	err := m.Session.Signup(
		m.Inputs[signupUsername].Value(),
		m.Inputs[signupEmail].Value(),
		m.Inputs[signupPassword].Value(),
	)
	if err != nil {
		return errMsg(err)
	}
	return LoginDoneMsg{}
}

func (m SignupModel) View() string {
	s := titleStyle.Render("TrackFitnessGoals - Sign up") + "\n\n"
	for i := range m.Inputs {
		s += m.Inputs[i].View() + "\n"
	}
	s += "\n" + blurredStyle.Render("Enter to submit, Tab to move, Ctrl+L to switch to login, Ctrl+C to quit")
	if m.Submitting {
		s += "\n" + statusMessageStyle("Creating account...")
	}
	if m.Err != nil {
		s += "\n" + errorMessageStyle(m.Err.Error())
	}
	return s
}
