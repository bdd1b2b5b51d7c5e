package cli

import (
	"fmt"

	"github.com/shoaibmiaan/gramorx-planner/internal/logger"
	"github.com/shoaibmiaan/gramorx-planner/internal/planner"
)

type CompleteCmd struct {
	User string `arg:"" help:"User id whose plan to update."`
	Date string `arg:"" help:"Day of the task (YYYY-MM-DD)."`
	Task string `arg:"" help:"Task id, e.g. d3-1."`
}

func (c *CompleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	plan, err := ctx.Store.GetPlan(c.User)
	if err != nil {
		return err
	}

	updated := planner.MarkTaskComplete(plan, c.Date, c.Task)
	if err := ctx.Store.SavePlan(updated); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	logger.Info("Marked task complete", "user", c.User, "date", c.Date, "task", c.Task)
	fmt.Printf("Marked %s on %s complete.\n", c.Task, c.Date)
	return nil
}
