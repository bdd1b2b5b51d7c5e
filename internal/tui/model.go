// Package tui provides an interactive plan browser built on Bubble Tea.
// It renders one study day at a time and lets the user mark tasks done,
// persisting each change through the configured storage provider.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shoaibmiaan/gramorx-planner/internal/models"
	"github.com/shoaibmiaan/gramorx-planner/internal/storage"
)

type Model struct {
	store    storage.Provider
	plan     models.StudyPlan
	keys     KeyMap
	help     help.Model
	dayIdx   int
	taskIdx  int
	status   string
	saveErr  error
	quitting bool
	width    int
	height   int
}

func NewModel(plan models.StudyPlan, store storage.Provider) Model {
	return Model{
		store: store,
		plan:  plan,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) currentDay() models.StudyDay {
	return m.plan.Days[m.dayIdx]
}
