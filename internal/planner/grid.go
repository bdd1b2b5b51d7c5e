package planner

import (
	"time"

	"github.com/shoaibmiaan/gramorx-planner/internal/utils"
)

// dayBlueprint is the per-day scheduling metadata derived from the request
// before any tasks are allocated.
type dayBlueprint struct {
	date      time.Time
	dateISO   string
	weekIndex int
	minutes   int
}

// buildGrid expands [start, exam] into one blueprint per calendar day,
// inclusive of both endpoints. An exam date before the start is clamped to
// the start, producing a single-day grid.
func buildGrid(start, exam time.Time, minutes map[time.Weekday]int) []dayBlueprint {
	if exam.Before(start) {
		exam = start
	}

	days := utils.DaysBetween(start, exam) + 1
	if days < 1 {
		days = 1
	}

	grid := make([]dayBlueprint, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		grid = append(grid, dayBlueprint{
			date:      d,
			dateISO:   utils.FormatISO(d),
			weekIndex: i / 7,
			minutes:   minutes[d.Weekday()],
		})
	}
	return grid
}
