package repository

import (
	"context"
	"hash/fnv"
	"sort"
	"sync"
	"time"

	"github.com/talentscan/talentscan/pkg/metrics"
)

// defaultShardCount spreads write contention across the index.
const defaultShardCount = 8

// shard holds a slice of the candidate set under its own lock.
type shard struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// IndexStore implements Store with sharded writes and a lazily rebuilt
// sorted snapshot for ranked reads. Reads between writes share the same
// snapshot; the first ranked read after a write pays the rebuild.
type IndexStore struct {
	shards []*shard

	snapMu   sync.Mutex
	snapshot []Entry
	dirty    bool
}

// NewIndexStore creates a sharded talent index.
func NewIndexStore(opts ...Option) *IndexStore {
	s := &IndexStore{}
	cfg := indexConfig{shardCount: defaultShardCount}
	for _, opt := range opts {
		opt(&cfg)
	}
	s.shards = make([]*shard, cfg.shardCount)
	for i := range s.shards {
		s.shards[i] = &shard{entries: make(map[string]Entry)}
	}
	return s
}

func (s *IndexStore) shardFor(candidateID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(candidateID))
	return s.shards[int(h.Sum32())%len(s.shards)]
}

// Upsert replaces the candidate's entry with the latest score.
func (s *IndexStore) Upsert(_ context.Context, candidateID, name string, overall, confidence float64) error {
	if candidateID == "" {
		return ErrEmptyCandidateID
	}

	sh := s.shardFor(candidateID)
	sh.mu.Lock()
	sh.entries[candidateID] = Entry{
		CandidateID: candidateID,
		Name:        name,
		Overall:     overall,
		Confidence:  confidence,
		UpdatedAt:   time.Now().UTC(),
	}
	sh.mu.Unlock()

	s.snapMu.Lock()
	s.dirty = true
	s.snapMu.Unlock()

	return nil
}

// Rank returns the candidate's position in the ranked snapshot.
func (s *IndexStore) Rank(ctx context.Context, candidateID string) (Entry, error) {
	snap := s.ranked(ctx)
	for _, e := range snap {
		if e.CandidateID == candidateID {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

// TopN returns the first n ranked entries.
func (s *IndexStore) TopN(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	snap := s.ranked(ctx)
	if n > len(snap) {
		n = len(snap)
	}
	out := make([]Entry, n)
	copy(out, snap[:n])
	return out, nil
}

// Count returns the number of tracked candidates.
func (s *IndexStore) Count(_ context.Context) int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.entries)
		sh.mu.RUnlock()
	}
	return total
}

// ranked returns the sorted snapshot, rebuilding it if writes happened
// since the last build.
func (s *IndexStore) ranked(_ context.Context) []Entry {
	s.snapMu.Lock()
	defer s.snapMu.Unlock()

	if !s.dirty && s.snapshot != nil {
		return s.snapshot
	}

	var all []Entry
	for _, sh := range s.shards {
		sh.mu.RLock()
		for _, e := range sh.entries {
			all = append(all, e)
		}
		sh.mu.RUnlock()
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Overall != all[j].Overall {
			return all[i].Overall > all[j].Overall
		}
		return all[i].CandidateID < all[j].CandidateID
	})
	for i := range all {
		all[i].Rank = i + 1
	}

	s.snapshot = all
	s.dirty = false
	metrics.UpdateIndexSize(len(all))
	return s.snapshot
}
