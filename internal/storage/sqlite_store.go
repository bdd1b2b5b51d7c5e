package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/shoaibmiaan/gramorx-planner/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS study_plans (
	user_id     TEXT PRIMARY KEY,
	revision_id TEXT NOT NULL,
	start_iso   TEXT NOT NULL,
	weeks       INTEGER NOT NULL,
	goal_band   REAL NOT NULL,
	weaknesses  TEXT,
	days        TEXT NOT NULL,
	saved_at    TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'gramorx init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) SavePlan(plan models.StudyPlan) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	days, err := json.Marshal(plan.Days)
	if err != nil {
		return fmt.Errorf("failed to serialize plan days: %w", err)
	}
	weaknesses, err := json.Marshal(plan.Weaknesses)
	if err != nil {
		return fmt.Errorf("failed to serialize weaknesses: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO study_plans (user_id, revision_id, start_iso, weeks, goal_band, weaknesses, days, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			revision_id = excluded.revision_id,
			start_iso   = excluded.start_iso,
			weeks       = excluded.weeks,
			goal_band   = excluded.goal_band,
			weaknesses  = excluded.weaknesses,
			days        = excluded.days,
			saved_at    = excluded.saved_at`,
		plan.UserID, uuid.NewString(), plan.StartISO, plan.Weeks, plan.GoalBand,
		string(weaknesses), string(days), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetPlan(userID string) (models.StudyPlan, error) {
	rec, err := s.GetPlanRecord(userID)
	if err != nil {
		return models.StudyPlan{}, err
	}
	return rec.Plan, nil
}

func (s *SQLiteStore) GetPlanRecord(userID string) (PlanRecord, error) {
	if s.db == nil {
		return PlanRecord{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow(`
		SELECT user_id, revision_id, start_iso, weeks, goal_band, weaknesses, days, saved_at
		FROM study_plans WHERE user_id = ?`, userID)
	rec, err := scanPlanRecord(row)
	if err == sql.ErrNoRows {
		return PlanRecord{}, ErrNotFound
	}
	return rec, err
}

func (s *SQLiteStore) GetAllPlans() ([]models.StudyPlan, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT user_id, revision_id, start_iso, weeks, goal_band, weaknesses, days, saved_at
		FROM study_plans ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	var plans []models.StudyPlan
	for rows.Next() {
		rec, err := scanPlanRecord(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, rec.Plan)
	}
	return plans, rows.Err()
}

func (s *SQLiteStore) DeletePlan(userID string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(`DELETE FROM study_plans WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPlanRecord(row scanner) (PlanRecord, error) {
	var rec PlanRecord
	var weaknesses, days string

	err := row.Scan(&rec.Plan.UserID, &rec.RevisionID, &rec.Plan.StartISO, &rec.Plan.Weeks,
		&rec.Plan.GoalBand, &weaknesses, &days, &rec.SavedAt)
	if err != nil {
		return PlanRecord{}, err
	}

	if weaknesses != "" && weaknesses != "null" {
		if err := json.Unmarshal([]byte(weaknesses), &rec.Plan.Weaknesses); err != nil {
			return PlanRecord{}, fmt.Errorf("failed to parse weaknesses: %w", err)
		}
	}
	if err := json.Unmarshal([]byte(days), &rec.Plan.Days); err != nil {
		return PlanRecord{}, fmt.Errorf("failed to parse plan days: %w", err)
	}
	return rec, nil
}
