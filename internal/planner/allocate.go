package planner

import (
	"fmt"
	"math"

	"github.com/shoaibmiaan/gramorx-planner/internal/constants"
	"github.com/shoaibmiaan/gramorx-planner/internal/models"
)

// Base session lengths in minutes before intensity scaling.
var (
	baseFocusMinutes = map[models.TaskType]int{
		models.TaskListening: 35,
		models.TaskReading:   40,
		models.TaskWriting:   45,
		models.TaskSpeaking:  30,
	}
	baseSupportMinutes = map[models.TaskType]int{
		models.TaskListening: 25,
		models.TaskReading:   30,
		models.TaskWriting:   35,
		models.TaskSpeaking:  25,
	}
)

var skillLabels = map[models.TaskType]string{
	models.TaskListening: "Listening",
	models.TaskReading:   "Reading",
	models.TaskWriting:   "Writing",
	models.TaskSpeaking:  "Speaking",
}

// reserveMock sizes the time held back for a mock-exam block on a mock day.
// The desired length scales with intensity and is clamped to [45, 90]; the
// reservation then shrinks so that at least MinPracticeFloor minutes remain
// for regular practice whenever the day has that much time at all. A selected
// mock day always keeps at least a 5-minute reservation so every active week
// ends up with its mock, even when the practice floor leaves no room for a
// full one.
func reserveMock(available int, intensity float64) int {
	desired := roundTo5(int(math.Round(70 * intensity)))
	if desired < 45 {
		desired = 45
	}
	if desired > 90 {
		desired = 90
	}

	reserved := desired
	if available-reserved < constants.MinPracticeFloor {
		reserved = available - constants.MinPracticeFloor
		if reserved < 30 {
			if available >= 30 {
				reserved = 30
			} else {
				reserved = available
			}
		}
	}

	// Claw back into the practice budget until the floor is met.
	if available-reserved < constants.MinPracticeFloor && available >= constants.MinPracticeFloor {
		reserved = available - constants.MinPracticeFloor
	}
	if reserved < 5 {
		reserved = minInt(5, available)
	}
	return reserved
}

// allocateDay distributes one active day's minutes across the allocation
// tiers in strict order: focus, support, review, vocab, mock. Tiers whose
// threshold cannot be met are skipped; a day never errors.
func allocateDay(bp dayBlueprint, dayIndex, rotation int, mockDay bool, intensity, goalBand float64, weaknesses []string) []models.StudyTask {
	available := bp.minutes
	if available <= 0 {
		return nil
	}

	reserved := 0
	if mockDay {
		reserved = reserveMock(available, intensity)
	}
	budget := available - reserved
	used := 0

	var tasks []models.StudyTask
	emit := func(tt models.TaskType, title string, minutes int) {
		tasks = append(tasks, models.StudyTask{
			ID:         fmt.Sprintf("d%d-%d", dayIndex, len(tasks)),
			Type:       tt,
			Title:      title,
			EstMinutes: minutes,
		})
		used += minutes
	}

	focus := models.CoreSkills[rotation%len(models.CoreSkills)]
	support := models.CoreSkills[(rotation+1)%len(models.CoreSkills)]

	// Focus tier
	if budget > 0 {
		m := clamp(scaled(baseFocusMinutes[focus], intensity), minInt(20, budget), budget)
		if m > 0 {
			emit(focus, fmt.Sprintf("%s focus practice (band %.1f)", skillLabels[focus], goalBand), m)
			budget -= m
		}
	}

	// Support tier
	if budget >= 20 {
		m := clamp(scaled(baseSupportMinutes[support], intensity), 20, budget)
		emit(support, fmt.Sprintf("%s support drills", skillLabels[support]), m)
		budget -= m
	}

	// Review tier, labeled with the rotating weakness when any were given
	if budget >= 15 {
		m := roundTo5(minInt(budget, 20))
		title := "Error review"
		if len(weaknesses) > 0 {
			title = fmt.Sprintf("Error review: %s", weaknesses[rotation%len(weaknesses)])
		}
		emit(models.TaskReview, title, m)
		budget -= m
	}

	// Vocab tier
	if budget >= 10 {
		m := roundTo5(minInt(budget, 15))
		emit(models.TaskVocab, "Vocabulary builder", m)
		budget -= m
	}

	// Mock tier goes last and never exceeds what the prior tiers left over,
	// even when that is less than the original reservation. The cap rounds
	// down so the day's total stays within its availability.
	if mockDay && reserved > 0 {
		m := minInt(reserved, available-used)
		m -= m % 5
		if m > 0 {
			emit(models.TaskMock, fmt.Sprintf("Full mock exam (week %d)", bp.weekIndex+1), m)
		}
	}

	return tasks
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
