package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/storage"
)

// AlertStore is an in-memory implementation of storage.AlertStore.
type AlertStore struct {
	mu   sync.RWMutex
	byID map[string]*model.RiskAlert
}

// NewAlertStore creates a new in-memory alert store.
func NewAlertStore() *AlertStore {
	return &AlertStore{byID: make(map[string]*model.RiskAlert)}
}

var _ storage.AlertStore = (*AlertStore)(nil)

// Append records a new alert. Returns ErrDuplicateKey if the alert ID exists.
func (s *AlertStore) Append(_ context.Context, a *model.RiskAlert) error {
	if a == nil || a.ID == "" || a.CandidateID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[a.ID]; exists {
		return storage.ErrDuplicateKey
	}
	s.byID[a.ID] = copyAlert(a)
	return nil
}

// ListByCandidate retrieves all alerts for a candidate, oldest first.
func (s *AlertStore) ListByCandidate(_ context.Context, candidateID string) ([]*model.RiskAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.RiskAlert
	for _, a := range s.byID {
		if a.CandidateID == candidateID {
			out = append(out, copyAlert(a))
		}
	}
	sortAlerts(out)
	return out, nil
}

// ListSince retrieves all alerts detected at or after the cutoff, oldest first.
func (s *AlertStore) ListSince(_ context.Context, cutoff time.Time) ([]*model.RiskAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.RiskAlert
	for _, a := range s.byID {
		if !a.DetectedAt.Before(cutoff) {
			out = append(out, copyAlert(a))
		}
	}
	sortAlerts(out)
	return out, nil
}

func sortAlerts(alerts []*model.RiskAlert) {
	sort.Slice(alerts, func(i, j int) bool {
		if !alerts[i].DetectedAt.Equal(alerts[j].DetectedAt) {
			return alerts[i].DetectedAt.Before(alerts[j].DetectedAt)
		}
		return alerts[i].ID < alerts[j].ID
	})
}

func copyAlert(a *model.RiskAlert) *model.RiskAlert {
	cp := *a
	cp.Changes = append([]model.ChangeDetail(nil), a.Changes...)
	return &cp
}
