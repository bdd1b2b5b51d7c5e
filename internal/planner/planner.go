// Package planner generates deterministic multi-week study plans: it expands
// the request's date range into a per-day grid, selects one mock-exam
// checkpoint per active week, scales session lengths by the target band, and
// allocates each day's minutes across tiered tasks.
package planner

import (
	"github.com/shoaibmiaan/gramorx-planner/internal/constants"
	"github.com/shoaibmiaan/gramorx-planner/internal/models"
	"github.com/shoaibmiaan/gramorx-planner/internal/validation"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate validates a raw request and produces the study plan. It is the
// single entry point callers outside this module use; malformed input
// surfaces as a *validation.Error and no partial plan is returned.
func Generate(req models.PlanRequest) (models.StudyPlan, error) {
	validated, err := validation.New().Validate(req)
	if err != nil {
		return models.StudyPlan{}, err
	}
	return New().Plan(validated), nil
}

// Plan builds a study plan from an already-validated request. It is a pure
// function: identical requests yield identical plans.
func (g *Generator) Plan(req models.ValidatedRequest) models.StudyPlan {
	grid := buildGrid(req.Start, req.Exam, req.Minutes)
	mockDays := selectMockDays(grid)
	intensity := intensityFor(req.TargetBand)

	days := make([]models.StudyDay, 0, len(grid))
	rotation := 0
	for i, bp := range grid {
		var tasks []models.StudyTask
		if bp.minutes > 0 {
			tasks = allocateDay(bp, i, rotation, mockDays[bp.dateISO], intensity, req.TargetBand, req.Weaknesses)
			// Only active days advance the skill rotation.
			rotation++
		}
		if tasks == nil {
			tasks = []models.StudyTask{}
		}
		days = append(days, models.StudyDay{DateISO: bp.dateISO, Tasks: tasks})
	}

	// Weeks is display metadata: plans longer than 12 weeks still report 12
	// while Days holds the full range.
	weeks := (len(grid) + 6) / 7
	if weeks < 1 {
		weeks = 1
	}
	if weeks > constants.MaxPlanWeeks {
		weeks = constants.MaxPlanWeeks
	}

	plan := models.StudyPlan{
		UserID:   req.UserID,
		StartISO: grid[0].dateISO,
		Weeks:    weeks,
		GoalBand: req.TargetBand,
		Days:     days,
	}
	if len(req.Weaknesses) > 0 {
		plan.Weaknesses = append([]string(nil), req.Weaknesses...)
	}
	return plan
}
