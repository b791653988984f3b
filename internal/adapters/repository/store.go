// Package repository defines the talent index: the ranked view over every
// candidate's latest composite score.
package repository

import (
	"context"
	"time"
)

// Entry is one talent index row.
type Entry struct {
	Rank        int       `json:"rank"`
	CandidateID string    `json:"candidate_id"`
	Name        string    `json:"name"`
	Overall     float64   `json:"overall"`
	Confidence  float64   `json:"confidence"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Store provides read/write access to the ranked talent state.
type Store interface {
	// Upsert replaces the candidate's index entry with the latest score.
	Upsert(ctx context.Context, candidateID, name string, overall, confidence float64) error

	// Rank returns the current rank and score for a candidate.
	// Returns ErrNotFound for unknown candidates.
	Rank(ctx context.Context, candidateID string) (Entry, error)

	// TopN returns the top-N entries ordered by overall score descending,
	// ties broken by candidate id.
	TopN(ctx context.Context, n int) ([]Entry, error)

	// Count returns the number of candidates tracked.
	Count(ctx context.Context) int
}
