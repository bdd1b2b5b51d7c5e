package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

type PlanListCmd struct{}

func (c *PlanListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	plans, err := ctx.Store.GetAllPlans()
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Println("No plans stored.")
		return nil
	}

	for _, plan := range plans {
		fmt.Printf("%-20s band %.1f  %2d week(s)  %3d days  %4d active minutes/week avg\n",
			plan.UserID, plan.GoalBand, plan.Weeks, len(plan.Days), weeklyAverage(plan.TotalMinutes(), len(plan.Days)))
	}
	return nil
}

func weeklyAverage(totalMinutes, days int) int {
	if days == 0 {
		return 0
	}
	return totalMinutes * 7 / days
}

type PlanDeleteCmd struct {
	User string `arg:"" help:"User id whose plan to delete."`
}

func (c *PlanDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.DeletePlan(c.User); err != nil {
		return err
	}
	fmt.Printf("Deleted plan for %s.\n", c.User)
	return nil
}

type ExportCmd struct {
	User string `arg:"" help:"User id whose plan to export."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	plan, err := ctx.Store.GetPlan(c.User)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}
