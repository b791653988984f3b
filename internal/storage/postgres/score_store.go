package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/talentscan/talentscan/internal/storage"
)

// ScoreStore implements storage.ScoreStore using PostgreSQL.
type ScoreStore struct {
	pool *Pool
}

// NewScoreStore creates a new ScoreStore.
func NewScoreStore(pool *Pool) *ScoreStore {
	return &ScoreStore{pool: pool}
}

var _ storage.ScoreStore = (*ScoreStore)(nil)

// Append records a new observation.
func (s *ScoreStore) Append(ctx context.Context, rec *storage.ScoreRecord) error {
	if rec == nil || rec.CandidateID == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO score_history (
			candidate_id, overall, technical_depth, influence,
			community_engagement, learning_velocity, confidence, scored_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.pool.Exec(ctx, query,
		rec.CandidateID,
		rec.Score.Overall,
		rec.Score.TechnicalDepth,
		rec.Score.Influence,
		rec.Score.CommunityEngagement,
		rec.Score.LearningVelocity,
		rec.Score.Confidence,
		rec.ScoredAt,
	)
	if err != nil {
		return fmt.Errorf("append score: %w", err)
	}
	return nil
}

// Latest retrieves the most recent observation for a candidate.
func (s *ScoreStore) Latest(ctx context.Context, candidateID string) (*storage.ScoreRecord, error) {
	query := `
		SELECT candidate_id, overall, technical_depth, influence,
		       community_engagement, learning_velocity, confidence, scored_at
		FROM score_history
		WHERE candidate_id = $1
		ORDER BY scored_at DESC
		LIMIT 1
	`
	row := s.pool.QueryRow(ctx, query, candidateID)
	rec, err := scanScoreRecord(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("latest score: %w", err)
	}
	return rec, nil
}

// History retrieves observations within [start, end] inclusive, oldest first.
func (s *ScoreStore) History(ctx context.Context, candidateID string, start, end time.Time) ([]*storage.ScoreRecord, error) {
	query := `
		SELECT candidate_id, overall, technical_depth, influence,
		       community_engagement, learning_velocity, confidence, scored_at
		FROM score_history
		WHERE candidate_id = $1 AND scored_at >= $2 AND scored_at <= $3
		ORDER BY scored_at ASC
	`
	rows, err := s.pool.Query(ctx, query, candidateID, start, end)
	if err != nil {
		return nil, fmt.Errorf("score history: %w", err)
	}
	defer rows.Close()

	var out []*storage.ScoreRecord
	for rows.Next() {
		rec, err := scanScoreRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	return out, nil
}

func scanScoreRecord(row rowScanner) (*storage.ScoreRecord, error) {
	var rec storage.ScoreRecord
	err := row.Scan(
		&rec.CandidateID,
		&rec.Score.Overall,
		&rec.Score.TechnicalDepth,
		&rec.Score.Influence,
		&rec.Score.CommunityEngagement,
		&rec.Score.LearningVelocity,
		&rec.Score.Confidence,
		&rec.ScoredAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
