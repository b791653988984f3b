package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/talentscan/talentscan/internal/storage"
)

// ScoreStore is an in-memory implementation of storage.ScoreStore.
type ScoreStore struct {
	mu   sync.RWMutex
	data map[string][]*storage.ScoreRecord
}

// NewScoreStore creates a new in-memory score store.
func NewScoreStore() *ScoreStore {
	return &ScoreStore{data: make(map[string][]*storage.ScoreRecord)}
}

var _ storage.ScoreStore = (*ScoreStore)(nil)

// Append records a new observation.
func (s *ScoreStore) Append(_ context.Context, rec *storage.ScoreRecord) error {
	if rec == nil || rec.CandidateID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rec
	s.data[rec.CandidateID] = append(s.data[rec.CandidateID], &cp)
	// Keep history ordered so reads stay cheap.
	hist := s.data[rec.CandidateID]
	sort.SliceStable(hist, func(i, j int) bool {
		return hist[i].ScoredAt.Before(hist[j].ScoredAt)
	})
	return nil
}

// Latest retrieves the most recent observation for a candidate.
func (s *ScoreStore) Latest(_ context.Context, candidateID string) (*storage.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hist := s.data[candidateID]
	if len(hist) == 0 {
		return nil, storage.ErrNotFound
	}
	cp := *hist[len(hist)-1]
	return &cp, nil
}

// History retrieves observations within [start, end] inclusive.
func (s *ScoreStore) History(_ context.Context, candidateID string, start, end time.Time) ([]*storage.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*storage.ScoreRecord
	for _, rec := range s.data[candidateID] {
		if rec.ScoredAt.Before(start) || rec.ScoredAt.After(end) {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}
