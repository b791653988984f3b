package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/storage"
)

// CandidateStore is an in-memory implementation of storage.CandidateStore.
type CandidateStore struct {
	mu   sync.RWMutex
	data map[string]*model.Candidate
}

// NewCandidateStore creates a new in-memory candidate store.
func NewCandidateStore() *CandidateStore {
	return &CandidateStore{data: make(map[string]*model.Candidate)}
}

var _ storage.CandidateStore = (*CandidateStore)(nil)

// Put inserts a new candidate. Returns ErrDuplicateKey if the ID exists.
func (s *CandidateStore) Put(_ context.Context, c *model.Candidate) error {
	if c == nil || c.ID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[c.ID]; exists {
		return storage.ErrDuplicateKey
	}
	s.data[c.ID] = copyCandidate(c)
	return nil
}

// Get retrieves a candidate by ID. Returns ErrNotFound if not exists.
func (s *CandidateStore) Get(_ context.Context, candidateID string) (*model.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.data[candidateID]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return copyCandidate(c), nil
}

// List retrieves all candidates, ordered by ID ascending.
func (s *CandidateStore) List(_ context.Context) ([]*model.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Candidate, 0, len(s.data))
	for _, c := range s.data {
		out = append(out, copyCandidate(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete removes a candidate. Returns ErrNotFound if not exists.
func (s *CandidateStore) Delete(_ context.Context, candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[candidateID]; !exists {
		return storage.ErrNotFound
	}
	delete(s.data, candidateID)
	return nil
}

// copyCandidate deep-copies so callers cannot mutate stored state.
func copyCandidate(c *model.Candidate) *model.Candidate {
	cp := *c
	cp.Skills = append([]string(nil), c.Skills...)
	cp.Industries = append([]string(nil), c.Industries...)
	cp.CultureTraits = append([]string(nil), c.CultureTraits...)
	cp.Identities = make(map[model.Provider]string, len(c.Identities))
	for p, id := range c.Identities {
		cp.Identities[p] = id
	}
	return &cp
}
