package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shoaibmiaan/gramorx-planner/internal/models"
)

type Store struct {
	Version int                   `json:"version"`
	Plans   map[string]PlanRecord `json:"plans"` // user id -> latest record
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Plans:   make(map[string]PlanRecord),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'gramorx init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Plans == nil {
		s.store.Plans = make(map[string]PlanRecord)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) SavePlan(plan models.StudyPlan) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Plans[plan.UserID] = PlanRecord{
		RevisionID: uuid.NewString(),
		SavedAt:    time.Now().UTC().Format(time.RFC3339),
		Plan:       plan.Clone(),
	}
	return s.save()
}

func (s *JSONStore) GetPlan(userID string) (models.StudyPlan, error) {
	rec, err := s.GetPlanRecord(userID)
	if err != nil {
		return models.StudyPlan{}, err
	}
	return rec.Plan, nil
}

func (s *JSONStore) GetPlanRecord(userID string) (PlanRecord, error) {
	if s.store == nil {
		return PlanRecord{}, fmt.Errorf("storage not loaded")
	}

	rec, ok := s.store.Plans[userID]
	if !ok {
		return PlanRecord{}, ErrNotFound
	}
	return rec, nil
}

func (s *JSONStore) GetAllPlans() ([]models.StudyPlan, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	plans := make([]models.StudyPlan, 0, len(s.store.Plans))
	for _, rec := range s.store.Plans {
		plans = append(plans, rec.Plan)
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].UserID < plans[j].UserID
	})
	return plans, nil
}

func (s *JSONStore) DeletePlan(userID string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Plans[userID]; !ok {
		return ErrNotFound
	}
	delete(s.store.Plans, userID)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
