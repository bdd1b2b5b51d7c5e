package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shoaibmiaan/gramorx-planner/internal/constants"
	"github.com/shoaibmiaan/gramorx-planner/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.plan.Days) == 0 {
		return restStyle.Render("plan has no days") + "\n" + m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewDay(),
		m.viewStatus(),
		m.help.View(m.keys),
	)
}

func (m Model) viewHeader() string {
	title := fmt.Sprintf("Study plan: %s, band %.1f", m.plan.UserID, m.plan.GoalBand)
	pos := minutesStyle.Render(fmt.Sprintf("day %d/%d", m.dayIdx+1, len(m.plan.Days)))
	return lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render(title), pos)
}

func (m Model) viewDay() string {
	day := m.currentDay()
	var b strings.Builder

	label := day.DateISO
	if len(label) > 10 {
		label = label[:10]
	}
	if t, err := utils.ParseDateUTC(day.DateISO); err == nil {
		label = fmt.Sprintf("%s %s", t.Weekday().String()[:3], t.Format(constants.DateFormat))
	}
	b.WriteString(dayHeaderStyle.Render(label))
	b.WriteString("\n")

	if len(day.Tasks) == 0 {
		b.WriteString(restStyle.Render("  rest day"))
		b.WriteString("\n")
		return b.String()
	}

	for i, task := range day.Tasks {
		cursor := "  "
		if i == m.taskIdx {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ]"
		if task.Completed {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", box, task.Title, minutesStyle.Render(fmt.Sprintf("(%dm)", task.EstMinutes)))
		if task.Completed {
			line = doneStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m Model) viewStatus() string {
	if m.saveErr != nil {
		return errStyle.Render("save failed: " + m.saveErr.Error())
	}
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return ""
}
