package storage

import (
	"errors"

	"github.com/shoaibmiaan/gramorx-planner/internal/models"
)

// ErrNotFound is returned when no plan is stored for the requested user.
var ErrNotFound = errors.New("plan not found")

// PlanRecord wraps a stored plan with its persistence metadata. Every save
// produces a fresh revision id; plans are upserted by user id.
type PlanRecord struct {
	RevisionID string           `json:"revision_id"`
	SavedAt    string           `json:"saved_at"` // RFC3339
	Plan       models.StudyPlan `json:"plan"`
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Plans (one per user, upsert semantics)
	SavePlan(models.StudyPlan) error
	GetPlan(userID string) (models.StudyPlan, error)
	GetPlanRecord(userID string) (PlanRecord, error)
	GetAllPlans() ([]models.StudyPlan, error)
	DeletePlan(userID string) error

	// Utils
	GetConfigPath() string
}
