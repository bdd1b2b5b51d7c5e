package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/shoaibmiaan/gramorx-planner/internal/constants"
	"github.com/shoaibmiaan/gramorx-planner/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: config directory accessible
	if err := checkConfigDir(ctx); err != nil {
		fmt.Printf("❌ Config directory: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Config directory: OK\n")
	}

	// Check 2: storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		if plans, err := ctx.Store.GetAllPlans(); err != nil {
			fmt.Printf("❌ Plan data readable: FAIL\n   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Plan data readable: OK (%d plan(s))\n", len(plans))
		}
	}

	// Check 3: OS keyring (warning only; only needed for Postgres setups)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n   Not available; Postgres credentials must come from the environment or .pgpass\n")
	}

	// Check 4: duplicate processes
	if n, err := countOwnProcesses(); err != nil {
		fmt.Printf("⚠ Process check: WARNING\n   %v\n", err)
	} else if n > 1 {
		fmt.Printf("⚠ Process check: WARNING\n   %d %s processes running; concurrent writes can race\n", n, constants.AppName)
	} else {
		fmt.Printf("✓ Process check: OK\n")
	}

	// Check 5: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkConfigDir(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	if strings.Contains(path, "://") {
		// Connection strings have no local config directory to verify.
		return nil
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

func countOwnProcesses() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, fmt.Errorf("failed to list processes: %w", err)
	}
	n := 0
	for _, p := range procs {
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			n++
		}
	}
	return n, nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reports %v, which is implausible", now)
	}
	return nil
}
