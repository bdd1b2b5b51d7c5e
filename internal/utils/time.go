package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shoaibmiaan/gramorx-planner/internal/constants"
)

// TodayUTC returns the current date truncated to midnight UTC.
func TodayUTC() time.Time {
	return MidnightUTC(time.Now().UTC())
}

// MidnightUTC truncates t to midnight UTC.
func MidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDateUTC parses a date string and returns it at midnight UTC. Both
// plain dates (YYYY-MM-DD) and RFC3339 timestamps are accepted.
func ParseDateUTC(s string) (time.Time, error) {
	if t, err := time.Parse(constants.DateFormat, s); err == nil {
		return MidnightUTC(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return MidnightUTC(t), nil
}

// FormatISO renders a midnight-UTC time in the plan's timestamp format.
func FormatISO(t time.Time) string {
	return t.UTC().Format(constants.ISOFormat)
}

// DaysBetween returns the whole calendar days from a to b (b after a is
// positive). Both are expected to be midnight UTC.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// ParseWeekday parses a single weekday spelling: full name, three-letter
// abbreviation, or a 0-6 numeral (0=Sunday). Case-insensitive.
func ParseWeekday(s string) (time.Weekday, error) {
	dayMap := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}

	key := strings.TrimSpace(strings.ToLower(s))
	if wd, ok := dayMap[key]; ok {
		return wd, nil
	}
	// Try parsing as number (0=Sunday, 6=Saturday)
	if num, err := strconv.Atoi(key); err == nil && num >= 0 && num <= 6 {
		return time.Weekday(num), nil
	}
	return 0, fmt.Errorf("invalid weekday: %s", s)
}
