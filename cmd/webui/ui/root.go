package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateSignup
	stateDashboard
	stateGoalForm
	stateProgressForm
)

type RootModel struct {
	State        state
	Session      *Session
	Login        LoginModel
	Signup       SignupModel
	Dashboard    DashboardModel
	GoalForm     GoalFormModel
	ProgressForm ProgressFormModel
	Quitting     bool
	height       int
}

func NewRootModel(baseURL string) RootModel {
	s := NewSession(baseURL)
	return RootModel{
		State:   stateLogin,
		Session: s,
		Login:   NewLoginModel(s),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if m.State == stateDashboard {
			m.Dashboard.Table.SetHeight(msg.Height - 10)
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.Quitting = true
			return m, tea.Quit
		case tea.KeyCtrlS:
			if m.State == stateLogin {
				m.State = stateSignup
				m.Signup = NewSignupModel(m.Session)
				return m, m.Signup.Init()
			}
		case tea.KeyCtrlL:
			if m.State == stateSignup {
				m.State = stateLogin
				m.Login = NewLoginModel(m.Session)
				return m, m.Login.Init()
			}
		case tea.KeyEsc:
			if m.State == stateGoalForm || m.State == stateProgressForm {
				return m.toDashboard()
			}
		}

	case LoginDoneMsg:
		return m.toDashboard()

	case GoalCreatedMsg, ProgressCreatedMsg:
		return m.toDashboard()

	case NewGoalMsg:
		m.State = stateGoalForm
		m.GoalForm = NewGoalFormModel(m.Session)
		return m, m.GoalForm.Init()

	case NewProgressMsg:
		m.State = stateProgressForm
		m.ProgressForm = NewProgressFormModel(m.Session, msg.GoalID)
		return m, m.ProgressForm.Init()

	case errMsg:
		// An expired session drops the user back to the login view.
		if errors.Is(msg, ErrSessionExpired) {
			m.Session.Clear()
			m.State = stateLogin
			m.Login = NewLoginModel(m.Session)
			m.Login.Err = msg
			return m, m.Login.Init()
		}
	}

	var cmd tea.Cmd
	switch m.State {
	case stateLogin:
		m.Login, cmd = m.Login.Update(msg)
	case stateSignup:
		m.Signup, cmd = m.Signup.Update(msg)
	case stateDashboard:
		m.Dashboard, cmd = m.Dashboard.Update(msg)
	case stateGoalForm:
		m.GoalForm, cmd = m.GoalForm.Update(msg)
	case stateProgressForm:
		m.ProgressForm, cmd = m.ProgressForm.Update(msg)
	}
	return m, cmd
}

func (m RootModel) toDashboard() (tea.Model, tea.Cmd) {
	m.State = stateDashboard
	m.Dashboard = NewDashboardModel(m.Session, m.height)
	return m, m.Dashboard.Init()
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateSignup:
		return m.Signup.View()
	case stateDashboard:
		return m.Dashboard.View()
	case stateGoalForm:
		return m.GoalForm.View()
	case stateProgressForm:
		return m.ProgressForm.View()
	default:
		return m.Login.View()
	}
}
