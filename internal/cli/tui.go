package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shoaibmiaan/gramorx-planner/internal/tui"
)

type TuiCmd struct {
	User string `arg:"" help:"User id whose plan to browse."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	plan, err := ctx.Store.GetPlan(c.User)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(plan, ctx.Store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
