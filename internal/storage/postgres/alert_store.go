package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/storage"
)

// AlertStore implements storage.AlertStore using PostgreSQL.
type AlertStore struct {
	pool *Pool
}

// NewAlertStore creates a new AlertStore.
func NewAlertStore(pool *Pool) *AlertStore {
	return &AlertStore{pool: pool}
}

var _ storage.AlertStore = (*AlertStore)(nil)

// Append records a new alert. Returns ErrDuplicateKey if the alert ID exists.
func (s *AlertStore) Append(ctx context.Context, a *model.RiskAlert) error {
	if a == nil || a.ID == "" || a.CandidateID == "" {
		return storage.ErrInvalidInput
	}

	changes, err := json.Marshal(a.Changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}

	query := `
		INSERT INTO risk_alerts (id, candidate_id, changes, severity, detected_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.pool.Exec(ctx, query, a.ID, a.CandidateID, changes, string(a.Severity), a.DetectedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// ListByCandidate retrieves all alerts for a candidate, oldest first.
func (s *AlertStore) ListByCandidate(ctx context.Context, candidateID string) ([]*model.RiskAlert, error) {
	query := `
		SELECT id, candidate_id, changes, severity, detected_at
		FROM risk_alerts
		WHERE candidate_id = $1
		ORDER BY detected_at ASC, id ASC
	`
	return s.queryAlerts(ctx, query, candidateID)
}

// ListSince retrieves all alerts detected at or after the cutoff, oldest first.
func (s *AlertStore) ListSince(ctx context.Context, cutoff time.Time) ([]*model.RiskAlert, error) {
	query := `
		SELECT id, candidate_id, changes, severity, detected_at
		FROM risk_alerts
		WHERE detected_at >= $1
		ORDER BY detected_at ASC, id ASC
	`
	return s.queryAlerts(ctx, query, cutoff)
}

func (s *AlertStore) queryAlerts(ctx context.Context, query string, args ...any) ([]*model.RiskAlert, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	var out []*model.RiskAlert
	for rows.Next() {
		var (
			a        model.RiskAlert
			changes  []byte
			severity string
		)
		if err := rows.Scan(&a.ID, &a.CandidateID, &changes, &severity, &a.DetectedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		if err := json.Unmarshal(changes, &a.Changes); err != nil {
			return nil, fmt.Errorf("unmarshal changes: %w", err)
		}
		a.Severity = model.Severity(severity)
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alerts: %w", err)
	}
	return out, nil
}
