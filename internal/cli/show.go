package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/shoaibmiaan/gramorx-planner/internal/models"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	weekStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")).MarginTop(1)
	dayStyle     = lipgloss.NewStyle().Bold(true)
	restStyle    = lipgloss.NewStyle().Faint(true)
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	mockStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	minutesStyle = lipgloss.NewStyle().Faint(true)
)

type ShowCmd struct {
	User string `arg:"" help:"User id whose plan to show."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	plan, err := ctx.Store.GetPlan(c.User)
	if err != nil {
		return err
	}

	fmt.Println(RenderPlan(plan))
	return nil
}

// RenderPlan renders a plan as a week-by-week listing.
func RenderPlan(plan models.StudyPlan) string {
	var b strings.Builder

	title := fmt.Sprintf("Study plan for %s, band %.1f target, %d week(s)", plan.UserID, plan.GoalBand, plan.Weeks)
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	if len(plan.Weaknesses) > 0 {
		b.WriteString(minutesStyle.Render("Weaknesses: " + strings.Join(plan.Weaknesses, ", ")))
		b.WriteString("\n")
	}

	week := -1
	for i, day := range plan.Days {
		if i/7 != week {
			week = i / 7
			b.WriteString(weekStyle.Render(fmt.Sprintf("Week %d", week+1)))
			b.WriteString("\n")
		}

		label := day.DateISO
		if t, err := time.Parse(time.RFC3339, day.DateISO); err == nil {
			label = t.Format("Mon 2006-01-02")
		}

		if len(day.Tasks) == 0 {
			b.WriteString(restStyle.Render(fmt.Sprintf("  %s  rest day", label)))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dayStyle.Render(fmt.Sprintf("  %s", label)))
		b.WriteString("\n")
		for _, task := range day.Tasks {
			line := fmt.Sprintf("    [%s] %s %s", checkbox(task), task.Title,
				minutesStyle.Render(fmt.Sprintf("(%dm)", task.EstMinutes)))
			switch {
			case task.Completed:
				line = doneStyle.Render(line)
			case task.Type == models.TaskMock:
				line = mockStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func checkbox(task models.StudyTask) string {
	if task.Completed {
		return "x"
	}
	return " "
}
