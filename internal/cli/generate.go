package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/shoaibmiaan/gramorx-planner/internal/logger"
	"github.com/shoaibmiaan/gramorx-planner/internal/models"
)

type GenerateCmd struct {
	User       string   `help:"User id the plan belongs to." short:"u"`
	Exam       string   `help:"Exam date (YYYY-MM-DD)." short:"e"`
	Start      string   `help:"Plan start date (YYYY-MM-DD), defaults to today."`
	Band       float64  `help:"Target band score in [4.0, 9.0]." default:"6.5"`
	Avail      string   `help:"Weekly availability as day=minutes pairs, e.g. 'mon=60,wed=45,sat=80'."`
	Weaknesses []string `help:"Weakness labels used on review tasks." short:"w"`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// No flags means interactive mode.
	if c.User == "" && c.Exam == "" && c.Avail == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	slots, err := ParseAvailability(c.Avail)
	if err != nil {
		return err
	}

	req := models.PlanRequest{
		UserID:       c.User,
		StartISO:     c.Start,
		ExamDateISO:  c.Exam,
		TargetBand:   c.Band,
		Availability: slots,
		Weaknesses:   c.Weaknesses,
	}

	validated, err := ctx.Validator.Validate(req)
	if err != nil {
		return err
	}
	plan := ctx.Generator.Plan(validated)

	if err := ctx.Store.SavePlan(plan); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	logger.Info("Generated study plan", "user", plan.UserID, "days", len(plan.Days), "weeks", plan.Weeks)

	fmt.Printf("Generated a %d-week plan for %s: %d days, %d active, %d total minutes.\n",
		plan.Weeks, plan.UserID, len(plan.Days), plan.ActiveDays(), plan.TotalMinutes())
	fmt.Printf("View it with: gramorx show %s\n", plan.UserID)
	return nil
}

func (c *GenerateCmd) promptForm() error {
	var bandStr, weaknesses string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("User id").
				Value(&c.User),
			huh.NewInput().
				Title("Exam date (YYYY-MM-DD)").
				Value(&c.Exam),
			huh.NewInput().
				Title("Target band (4.0-9.0)").
				Placeholder("6.5").
				Value(&bandStr),
			huh.NewInput().
				Title("Availability (day=minutes, comma separated)").
				Placeholder("mon=60,wed=45,sat=80").
				Value(&c.Avail),
			huh.NewInput().
				Title("Weaknesses (comma separated, optional)").
				Value(&weaknesses),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if bandStr != "" {
		band, err := strconv.ParseFloat(strings.TrimSpace(bandStr), 64)
		if err != nil {
			return fmt.Errorf("invalid band %q: %w", bandStr, err)
		}
		c.Band = band
	}
	for _, w := range strings.Split(weaknesses, ",") {
		if w = strings.TrimSpace(w); w != "" {
			c.Weaknesses = append(c.Weaknesses, w)
		}
	}
	return nil
}
