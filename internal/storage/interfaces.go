package storage

import (
	"context"
	"time"

	"github.com/talentscan/talentscan/internal/domain/model"
)

// CandidateStore provides access to the candidate roster.
type CandidateStore interface {
	// Put inserts a new candidate. Returns ErrDuplicateKey if the ID exists.
	Put(ctx context.Context, c *model.Candidate) error

	// Get retrieves a candidate by ID. Returns ErrNotFound if not exists.
	Get(ctx context.Context, candidateID string) (*model.Candidate, error)

	// List retrieves all candidates, ordered by ID ascending.
	List(ctx context.Context) ([]*model.Candidate, error)

	// Delete removes a candidate. Returns ErrNotFound if not exists.
	Delete(ctx context.Context, candidateID string) error
}

// ScoreRecord is one scored observation of a candidate.
type ScoreRecord struct {
	CandidateID string
	Score       model.CompositeScore
	ScoredAt    time.Time
}

// ScoreStore provides append-only access to score history.
type ScoreStore interface {
	// Append records a new observation.
	Append(ctx context.Context, rec *ScoreRecord) error

	// Latest retrieves the most recent observation for a candidate.
	// Returns ErrNotFound when the candidate has no history.
	Latest(ctx context.Context, candidateID string) (*ScoreRecord, error)

	// History retrieves observations for a candidate within [start, end]
	// inclusive, ordered by scored_at ascending.
	History(ctx context.Context, candidateID string, start, end time.Time) ([]*ScoreRecord, error)
}

// AlertStore provides append-only access to emitted alerts.
type AlertStore interface {
	// Append records a new alert. Returns ErrDuplicateKey if the alert ID exists.
	Append(ctx context.Context, a *model.RiskAlert) error

	// ListByCandidate retrieves all alerts for a candidate, ordered by
	// detected_at ascending.
	ListByCandidate(ctx context.Context, candidateID string) ([]*model.RiskAlert, error)

	// ListSince retrieves all alerts detected at or after the cutoff,
	// ordered by detected_at ascending.
	ListSince(ctx context.Context, cutoff time.Time) ([]*model.RiskAlert, error)
}
