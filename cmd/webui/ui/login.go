package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type errMsg error

// LoginDoneMsg signals a successful login or signup.
type LoginDoneMsg struct{}

type LoginModel struct {
	Session    *Session
	Inputs     []textinput.Model
	FocusIdx   int
	Submitting bool
	Err        error
}

const (
	loginEmail = iota
	loginPassword
)

func NewLoginModel(s *Session) LoginModel {
	inputs := make([]textinput.Model, 2)

	inputs[loginEmail] = textinput.New()
	inputs[loginEmail].Placeholder = "you@example.com"
	inputs[loginEmail].Prompt = "Email: "
	inputs[loginEmail].Focus()

	inputs[loginPassword] = textinput.New()
	inputs[loginPassword].Placeholder = "password"
	inputs[loginPassword].EchoMode = textinput.EchoPassword
	inputs[loginPassword].Prompt = "Password: "

	return LoginModel{Session: s, Inputs: inputs}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 && !m.Submitting {
				m.Submitting = true
				m.Err = nil
				return m, m.loginCmd
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

func (m *LoginModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *LoginModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m LoginModel) loginCmd() tea.Msg {
	if err := m.Session.Login(m.Inputs[loginEmail].Value(), m.Inputs[loginPassword].Value()); err != nil {
		return errMsg(err)
	}
	return LoginDoneMsg{}
}

func (m LoginModel) View() string {
	s := titleStyle.Render("TrackFitnessGoals - Login") + "\n\n"
	for i := range m.Inputs {
		s += m.Inputs[i].View() + "\n"
	}
	s += "\n" + blurredStyle.Render("Enter to submit, Tab to move, Ctrl+S to switch to signup, Ctrl+C to quit")
	if m.Submitting {
		s += "\n" + statusMessageStyle("Logging in...")
	}
	if m.Err != nil {
		s += "\n" + errorMessageStyle(m.Err.Error())
	}
	return s
}
