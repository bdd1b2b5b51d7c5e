package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/shoaibmiaan/gramorx-planner/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS study_plans (
	user_id     TEXT PRIMARY KEY,
	revision_id TEXT NOT NULL,
	start_iso   TEXT NOT NULL,
	weeks       INTEGER NOT NULL,
	goal_band   DOUBLE PRECISION NOT NULL,
	weaknesses  JSONB,
	days        JSONB NOT NULL,
	saved_at    TIMESTAMPTZ NOT NULL
);
`

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Credentials belong in the OS keyring, the environment, or
// .pgpass, never in flags that end up in shell history.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// IsPostgresConnStr reports whether the config value selects the Postgres
// backend.
func IsPostgresConnStr(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

func (s *PostgresStore) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) SavePlan(plan models.StudyPlan) error {
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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			revision_id = EXCLUDED.revision_id,
			start_iso   = EXCLUDED.start_iso,
			weeks       = EXCLUDED.weeks,
			goal_band   = EXCLUDED.goal_band,
			weaknesses  = EXCLUDED.weaknesses,
			days        = EXCLUDED.days,
			saved_at    = EXCLUDED.saved_at`,
		plan.UserID, uuid.NewString(), plan.StartISO, plan.Weeks, plan.GoalBand,
		string(weaknesses), string(days), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetPlan(userID string) (models.StudyPlan, error) {
	rec, err := s.GetPlanRecord(userID)
	if err != nil {
		return models.StudyPlan{}, err
	}
	return rec.Plan, nil
}

func (s *PostgresStore) GetPlanRecord(userID string) (PlanRecord, error) {
	if s.db == nil {
		return PlanRecord{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow(`
		SELECT user_id, revision_id, start_iso, weeks, goal_band, COALESCE(weaknesses::text, 'null'), days::text, to_char(saved_at, 'YYYY-MM-DD"T"HH24:MI:SS"Z"')
		FROM study_plans WHERE user_id = $1`, userID)
	rec, err := scanPlanRecord(row)
	if err == sql.ErrNoRows {
		return PlanRecord{}, ErrNotFound
	}
	return rec, err
}

func (s *PostgresStore) GetAllPlans() ([]models.StudyPlan, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT user_id, revision_id, start_iso, weeks, goal_band, COALESCE(weaknesses::text, 'null'), days::text, to_char(saved_at, 'YYYY-MM-DD"T"HH24:MI:SS"Z"')
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

func (s *PostgresStore) DeletePlan(userID string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec(`DELETE FROM study_plans WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
