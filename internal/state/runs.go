package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/strataai/strata/internal/escalate"
	"github.com/strataai/strata/pkg/models"
)

// RunRecord is one completed escalation walk.
type RunRecord struct {
	ID          string    `json:"id"`
	Task        string    `json:"task"`
	BudgetGuard string    `json:"budget_guard"`
	PrimaryTier string    `json:"primary_tier"`
	TierUsed    string    `json:"tier_used"`
	Attempts    int       `json:"attempts"`
	Accepted    bool      `json:"accepted"`
	Confidence  float64   `json:"confidence"`
	Danger      bool      `json:"danger"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRunRecord builds a record from a finished walk.
func NewRunRecord(task string, spec models.AgentSpec, res *escalate.Result) *RunRecord {
	return &RunRecord{
		ID:          uuid.New().String(),
		Task:        task,
		BudgetGuard: string(spec.Routing.BudgetGuard),
		PrimaryTier: string(spec.Routing.Primary),
		TierUsed:    string(res.TierUsed),
		Attempts:    res.Attempts,
		Accepted:    res.Accepted,
		Confidence:  res.Evaluation.Confidence,
		Danger:      res.Evaluation.Danger,
		CreatedAt:   time.Now().UTC(),
	}
}

// RecordRun inserts a run record. A missing ID gets a fresh UUID.
func (db *DB) RecordRun(r *RunRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err := db.conn.Exec(`
		INSERT INTO runs (id, task, budget_guard, primary_tier, tier_used, attempts, accepted, confidence, danger, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Task, r.BudgetGuard, r.PrimaryTier, r.TierUsed, r.Attempts,
		boolToInt(r.Accepted), r.Confidence, boolToInt(r.Danger), r.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]*RunRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	rows, err := db.conn.Query(`
		SELECT id, task, budget_guard, primary_tier, tier_used, attempts, accepted, confidence, danger, created_at
		FROM runs ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*RunRecord
	for rows.Next() {
		var r RunRecord
		var accepted, danger int
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Task, &r.BudgetGuard, &r.PrimaryTier, &r.TierUsed,
			&r.Attempts, &accepted, &r.Confidence, &danger, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Accepted = accepted != 0
		r.Danger = danger != 0
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
