package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/talentscan/talentscan/internal/adapters/repository"
	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/pkg/logger"
	"github.com/talentscan/talentscan/pkg/metrics"
)

// Search interprets the query, aggregates fresh signals for the roster (or
// the given subset), and returns a ranked result. Empty candidateIDs means
// the whole roster.
func (s *Service) Search(ctx context.Context, queryText string, candidateIDs []string) (*model.RankedResult, error) {
	start := time.Now()

	cands, err := s.resolveRoster(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}

	interp := s.interp.Interpret(queryText)

	scored := make([]model.ScoredCandidate, len(cands))
	var mu sync.Mutex
	failed := 0

	if err := s.pool.ForEach(ctx, len(cands), func(ctx context.Context, i int) {
		bundle, err := s.agg.Aggregate(ctx, cands[i])
		if err != nil {
			mu.Lock()
			failed++
			mu.Unlock()
			s.logger.Warn(ctx, "search aggregation failed",
				logger.String("candidate", cands[i].ID),
				logger.Error(err),
			)
			return
		}
		sc := model.ScoredCandidate{
			Candidate: cands[i],
			Score:     s.composer.Compose(bundle),
			Bundle:    bundle,
		}
		mu.Lock()
		scored[i] = sc
		mu.Unlock()
	}); err != nil {
		return nil, fmt.Errorf("search fan-out: %w", err)
	}

	// Compact out candidates whose aggregation was abandoned.
	compact := make([]model.ScoredCandidate, 0, len(scored))
	for _, sc := range scored {
		if sc.Candidate != nil {
			compact = append(compact, sc)
		}
	}

	result := s.engine.Rank(compact, interp)

	// Keep the talent index current with the freshly composed scores.
	for _, sc := range compact {
		if err := s.index.Upsert(ctx, sc.Candidate.ID, sc.Candidate.Name, sc.Score.Overall, sc.Score.Confidence); err != nil {
			s.logger.Warn(ctx, "index update failed",
				logger.String("candidate", sc.Candidate.ID),
				logger.Error(err),
			)
		}
	}

	metrics.RecordSearch(float64(time.Since(start).Milliseconds()), len(cands))
	return result, nil
}

// GetSnapshot returns the cached snapshot, building it on a miss.
func (s *Service) GetSnapshot(ctx context.Context, candidateID string) (*model.Snapshot, error) {
	return s.cache.GetOrBuild(ctx, candidateID)
}

// RefreshSnapshot rebuilds the snapshot regardless of freshness.
func (s *Service) RefreshSnapshot(ctx context.Context, candidateID string) (*model.Snapshot, error) {
	return s.cache.Refresh(ctx, candidateID)
}

// Watch adds candidates to the monitored set. Unknown IDs are rejected
// before any ID is added.
func (s *Service) Watch(ctx context.Context, candidateIDs ...string) error {
	for _, id := range candidateIDs {
		if _, err := s.roster.Get(ctx, id); err != nil {
			return fmt.Errorf("watch %q: %w", id, err)
		}
	}
	s.mon.Watch(candidateIDs...)
	return nil
}

// Unwatch removes a candidate from the monitored set. Unknown IDs are a
// no-op.
func (s *Service) Unwatch(_ context.Context, candidateID string) {
	s.mon.Unwatch(candidateID)
}

// Watchlist returns the monitored candidate IDs.
func (s *Service) Watchlist() []string {
	return s.mon.Watched()
}

// PollNow forces a monitor tick outside the schedule.
func (s *Service) PollNow(ctx context.Context) {
	s.mon.Tick(ctx)
}

// SubscribeAlerts attaches a named subscriber to the alert stream.
func (s *Service) SubscribeAlerts(name string, buffer int) (<-chan model.RiskAlert, func()) {
	return s.bus.Subscribe(name, buffer)
}

// TopTalent returns the highest-ranked index entries.
func (s *Service) TopTalent(ctx context.Context, n int) ([]repository.Entry, error) {
	return s.index.TopN(ctx, n)
}

// CandidateRank returns one candidate's position in the talent index.
func (s *Service) CandidateRank(ctx context.Context, candidateID string) (repository.Entry, error) {
	return s.index.Rank(ctx, candidateID)
}

// Stats summarizes the service's current state.
type Stats struct {
	RosterSize    int `json:"roster_size"`
	IndexedCount  int `json:"indexed_count"`
	WatchedCount  int `json:"watched_count"`
	CachedCount   int `json:"cached_count"`
	Subscribers   int `json:"subscribers"`
	PoolCapacity  int `json:"pool_capacity"`
	PoolInFlight  int `json:"pool_in_flight"`
	ProviderCount int `json:"provider_count"`
}

// Stats reports live counters for the stats endpoint.
func (s *Service) Stats(ctx context.Context) Stats {
	rosterSize := 0
	if all, err := s.roster.List(ctx); err == nil {
		rosterSize = len(all)
	}
	return Stats{
		RosterSize:    rosterSize,
		IndexedCount:  s.index.Count(ctx),
		WatchedCount:  len(s.mon.Watched()),
		CachedCount:   s.cache.Size(),
		Subscribers:   s.bus.SubscriberCount(),
		PoolCapacity:  s.pool.Capacity(),
		PoolInFlight:  s.pool.InFlight(),
		ProviderCount: len(s.registry),
	}
}

// AddCandidate registers a new roster entry.
func (s *Service) AddCandidate(ctx context.Context, cand *model.Candidate) error {
	return s.roster.Put(ctx, cand)
}

// GetCandidate returns one roster entry.
func (s *Service) GetCandidate(ctx context.Context, candidateID string) (*model.Candidate, error) {
	return s.roster.Get(ctx, candidateID)
}

func (s *Service) resolveRoster(ctx context.Context, candidateIDs []string) ([]*model.Candidate, error) {
	if len(candidateIDs) == 0 {
		all, err := s.roster.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list roster: %w", err)
		}
		return all, nil
	}

	out := make([]*model.Candidate, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		c, err := s.roster.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("resolve candidate %q: %w", id, err)
		}
		out = append(out, c)
	}
	return out, nil
}
