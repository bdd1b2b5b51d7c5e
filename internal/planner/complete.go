package planner

import "github.com/shoaibmiaan/gramorx-planner/internal/models"

// MarkTaskComplete returns a copy of the plan with the identified task marked
// complete. The date matches on its calendar-day prefix, so both plain dates
// and full timestamps work. Unknown dates or task ids yield an equivalent
// plan; the input is never mutated.
func MarkTaskComplete(plan models.StudyPlan, dateISO, taskID string) models.StudyPlan {
	return setTaskCompleted(plan, dateISO, taskID, true)
}

// ToggleTaskComplete flips the completion flag instead of setting it, for
// interactive callers.
func ToggleTaskComplete(plan models.StudyPlan, dateISO, taskID string) models.StudyPlan {
	out := plan.Clone()
	di, ti := findTask(out, dateISO, taskID)
	if ti >= 0 {
		out.Days[di].Tasks[ti].Completed = !out.Days[di].Tasks[ti].Completed
	}
	return out
}

func setTaskCompleted(plan models.StudyPlan, dateISO, taskID string, done bool) models.StudyPlan {
	out := plan.Clone()
	di, ti := findTask(out, dateISO, taskID)
	if ti >= 0 {
		out.Days[di].Tasks[ti].Completed = done
	}
	return out
}

func findTask(plan models.StudyPlan, dateISO, taskID string) (int, int) {
	target := dayPrefix(dateISO)
	for di, day := range plan.Days {
		if dayPrefix(day.DateISO) != target {
			continue
		}
		for ti, task := range day.Tasks {
			if task.ID == taskID {
				return di, ti
			}
		}
	}
	return -1, -1
}

// dayPrefix truncates an ISO timestamp to its 10-character calendar day.
func dayPrefix(iso string) string {
	if len(iso) > 10 {
		return iso[:10]
	}
	return iso
}
