package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shoaibmiaan/gramorx-planner/internal/models"
	"github.com/shoaibmiaan/gramorx-planner/internal/planner"
	"github.com/shoaibmiaan/gramorx-planner/internal/storage"
	"github.com/shoaibmiaan/gramorx-planner/internal/validation"
)

type Context struct {
	Store     storage.Provider
	Generator *planner.Generator
	Validator *validation.Validator
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// ParseAvailability parses comma-separated weekday=minutes pairs, e.g.
// "monday=60,wed=45,sat=80".
func ParseAvailability(s string) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, minutesStr, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("invalid availability entry %q, expected day=minutes", part)
		}
		minutes, err := strconv.Atoi(strings.TrimSpace(minutesStr))
		if err != nil {
			return nil, fmt.Errorf("invalid minutes in %q: %w", part, err)
		}
		slots = append(slots, models.AvailabilitySlot{Day: strings.TrimSpace(day), Minutes: minutes})
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("availability is empty")
	}
	return slots, nil
}
