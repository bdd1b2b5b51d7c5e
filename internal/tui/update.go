package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shoaibmiaan/gramorx-planner/internal/planner"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Left):
			m.moveDay(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveDay(1)
		case key.Matches(msg, m.keys.Up):
			m.moveTask(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveTask(1)
		case key.Matches(msg, m.keys.Toggle):
			m.toggleCurrentTask()
		}
	}

	return m, nil
}

func (m *Model) moveDay(delta int) {
	next := m.dayIdx + delta
	if next < 0 || next >= len(m.plan.Days) {
		return
	}
	m.dayIdx = next
	m.taskIdx = 0
	m.status = ""
}

func (m *Model) moveTask(delta int) {
	tasks := m.currentDay().Tasks
	if len(tasks) == 0 {
		return
	}
	next := m.taskIdx + delta
	if next < 0 || next >= len(tasks) {
		return
	}
	m.taskIdx = next
}

func (m *Model) toggleCurrentTask() {
	day := m.currentDay()
	if len(day.Tasks) == 0 {
		return
	}
	task := day.Tasks[m.taskIdx]
	m.plan = planner.ToggleTaskComplete(m.plan, day.DateISO, task.ID)
	if err := m.store.SavePlan(m.plan); err != nil {
		m.saveErr = err
		m.status = ""
		return
	}
	m.saveErr = nil
	if m.plan.Days[m.dayIdx].Tasks[m.taskIdx].Completed {
		m.status = "marked done"
	} else {
		m.status = "marked not done"
	}
}
