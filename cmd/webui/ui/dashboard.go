package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type DashboardModel struct {
	Session *Session
	Table   table.Model
	Goals   []Goal
	Err     error
}

// GoalsLoadedMsg carries a fresh goal list with the latest progress value per
// goal.
type GoalsLoadedMsg struct {
	Goals  []Goal
	Latest map[string]float64
}

type GoalDeletedMsg struct{ ID string }

// NewGoalMsg and NewProgressMsg ask the root model to open the entry forms.
type NewGoalMsg struct{}

type NewProgressMsg struct{ GoalID string }

func NewDashboardModel(s *Session, height int) DashboardModel {
	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Target", Width: 14},
		{Title: "Latest", Width: 10},
		{Title: "Target date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-10),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return DashboardModel{Session: s, Table: t}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadGoalsCmd
}

func (m DashboardModel) loadGoalsCmd() tea.Msg {
	goals, err := m.Session.ListGoals()
	if err != nil {
		return errMsg(err)
	}
	entries, err := m.Session.ListProgress()
	if err != nil {
		return errMsg(err)
	}
	// list is newest-first, so the first entry per goal wins
	latest := map[string]float64{}
	for _, p := range entries {
		if _, ok := latest[p.GoalID]; !ok {
			latest[p.GoalID] = p.Value
		}
	}
	return GoalsLoadedMsg{Goals: goals, Latest: latest}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.loadGoalsCmd
		case "n":
			return m, func() tea.Msg { return NewGoalMsg{} }
		case "p":
			if g := m.selectedGoal(); g != nil {
				id := g.ID
				return m, func() tea.Msg { return NewProgressMsg{GoalID: id} }
			}
		case "d":
			if g := m.selectedGoal(); g != nil {
				id := g.ID
				return m, func() tea.Msg {
					if err := m.Session.DeleteGoal(id); err != nil {
						return errMsg(err)
					}
					return GoalDeletedMsg{ID: id}
				}
			}
		case "q":
			return m, tea.Quit
		}

	case GoalsLoadedMsg:
		m.Err = nil
		m.Goals = msg.Goals
		rows := make([]table.Row, 0, len(msg.Goals))
		for _, g := range msg.Goals {
			latest := "-"
			if v, ok := msg.Latest[g.ID]; ok {
				latest = fmt.Sprintf("%g", v)
			}
			rows = append(rows, table.Row{
				g.Name,
				fmt.Sprintf("%g %s", g.TargetValue, g.Unit),
				latest,
				g.TargetDate.Format("2006-01-02"),
			})
		}
		m.Table.SetRows(rows)

	case GoalDeletedMsg:
		return m, m.loadGoalsCmd

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) selectedGoal() *Goal {
	idx := m.Table.Cursor()
	if idx < 0 || idx >= len(m.Goals) {
		return nil
	}
	return &m.Goals[idx]
}

func (m DashboardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Goals - "+m.Session.Username) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("'n' new goal, 'p' log progress, 'd' delete, 'r' refresh, 'q' quit"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
