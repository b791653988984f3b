package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/pkg/logger"
	"github.com/talentscan/talentscan/pkg/metrics"
)

// defaultTTL keeps a snapshot fresh for a day before a rebuild.
const defaultTTL = 24 * time.Hour

// Roster resolves candidate IDs to roster entries.
type Roster interface {
	Get(ctx context.Context, candidateID string) (*model.Candidate, error)
}

// IndexWriter receives composite scores as snapshots are built.
type IndexWriter interface {
	Upsert(ctx context.Context, candidateID, name string, overall, confidence float64) error
}

// ScoreRecorder persists one scored observation.
type ScoreRecorder func(ctx context.Context, candidateID string, score model.CompositeScore, at time.Time) error

type cacheEntry struct {
	snap      *model.Snapshot
	expiresAt time.Time
}

// inflightCall is one build in progress; later identical misses wait on it.
type inflightCall struct {
	done chan struct{}
	snap *model.Snapshot
	err  error
}

// Cache serves snapshots with a TTL and coalesces concurrent builds for the
// same candidate into a single aggregation pass.
type Cache struct {
	builder *Builder
	roster  Roster
	ttl     time.Duration
	now     func() time.Time

	index  IndexWriter
	record ScoreRecorder
	logger logger.Logger

	mu       sync.Mutex
	entries  map[string]cacheEntry
	inflight map[string]*inflightCall
}

// NewCache creates a snapshot cache.
func NewCache(builder *Builder, roster Roster, opts ...CacheOption) *Cache {
	c := &Cache{
		builder:  builder,
		roster:   roster,
		ttl:      defaultTTL,
		now:      time.Now,
		logger:   logger.Get().Named("snapshot.cache"),
		entries:  make(map[string]cacheEntry),
		inflight: make(map[string]*inflightCall),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrBuild returns the cached snapshot when fresh, otherwise builds one.
// Concurrent misses for the same candidate share a single build.
func (c *Cache) GetOrBuild(ctx context.Context, candidateID string) (*model.Snapshot, error) {
	if candidateID == "" {
		return nil, ErrNoCandidate
	}

	c.mu.Lock()
	if e, ok := c.entries[candidateID]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		metrics.RecordSnapshotCacheHit()
		return e.snap, nil
	}

	if call, ok := c.inflight[candidateID]; ok {
		c.mu.Unlock()
		metrics.RecordSnapshotCoalesced()
		select {
		case <-call.done:
			return call.snap, call.err
		case <-ctx.Done():
			return nil, fmt.Errorf("await snapshot build: %w", ctx.Err())
		}
	}

	call := &inflightCall{done: make(chan struct{})}
	c.inflight[candidateID] = call
	c.mu.Unlock()

	metrics.RecordSnapshotCacheMiss()
	call.snap, call.err = c.build(ctx, candidateID)

	c.mu.Lock()
	delete(c.inflight, candidateID)
	if call.err == nil {
		c.entries[candidateID] = cacheEntry{
			snap:      call.snap,
			expiresAt: c.now().Add(c.ttl),
		}
	}
	c.mu.Unlock()
	close(call.done)

	return call.snap, call.err
}

// Invalidate drops the cached snapshot so the next read rebuilds.
func (c *Cache) Invalidate(candidateID string) {
	c.mu.Lock()
	_, had := c.entries[candidateID]
	delete(c.entries, candidateID)
	c.mu.Unlock()
	if had {
		metrics.RecordSnapshotInvalidation()
	}
}

// Refresh invalidates and rebuilds immediately.
func (c *Cache) Refresh(ctx context.Context, candidateID string) (*model.Snapshot, error) {
	c.Invalidate(candidateID)
	return c.GetOrBuild(ctx, candidateID)
}

// Size returns the number of cached entries, fresh or stale.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) build(ctx context.Context, candidateID string) (*model.Snapshot, error) {
	cand, err := c.roster.Get(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("resolve candidate %q: %w", candidateID, err)
	}

	snap, err := c.builder.Build(ctx, cand)
	if err != nil {
		return nil, err
	}

	// Write-through keeps the talent index and score history current.
	// Failures there degrade to logs; the snapshot itself is still served.
	if c.index != nil {
		if err := c.index.Upsert(ctx, cand.ID, cand.Name, snap.Score.Overall, snap.Score.Confidence); err != nil {
			c.logger.Warn(ctx, "index write-through failed",
				logger.String("candidate", cand.ID),
				logger.Error(err),
			)
		}
	}
	if c.record != nil {
		if err := c.record(ctx, cand.ID, snap.Score, snap.GeneratedAt); err != nil {
			c.logger.Warn(ctx, "score write-back failed",
				logger.String("candidate", cand.ID),
				logger.Error(err),
			)
		}
	}

	return snap, nil
}
