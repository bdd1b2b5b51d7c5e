package models

import "time"

// AvailabilitySlot describes how many study minutes a user has on a
// recurring weekday.
type AvailabilitySlot struct {
	Day     string `json:"day"` // weekday name, e.g. "monday"
	Minutes int    `json:"minutes"`
}

// PlanRequest is the raw generation request as supplied by a caller. It is
// JSON-shaped; validation turns it into a ValidatedRequest before any
// scheduling logic runs.
type PlanRequest struct {
	UserID       string             `json:"user_id"`
	StartISO     string             `json:"start_iso,omitempty"` // defaults to today (UTC)
	ExamDateISO  string             `json:"exam_date_iso"`
	TargetBand   float64            `json:"target_band"`
	Availability []AvailabilitySlot `json:"availability"`
	Weaknesses   []string           `json:"weaknesses,omitempty"`
}

// ValidatedRequest is a PlanRequest after validation and normalization:
// dates truncated to midnight UTC and availability keyed by weekday.
type ValidatedRequest struct {
	UserID     string
	Start      time.Time
	Exam       time.Time
	TargetBand float64
	Minutes    map[time.Weekday]int
	Weaknesses []string
}
