// Package service provides the core business service that implements
// the dependencies required by the HTTP API: search, snapshots, the
// watch list, and alert streaming.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/talentscan/talentscan/internal/adapters/mq/alertbus"
	"github.com/talentscan/talentscan/internal/adapters/mq/worker"
	"github.com/talentscan/talentscan/internal/adapters/repository"
	"github.com/talentscan/talentscan/internal/domain/aggregate"
	"github.com/talentscan/talentscan/internal/domain/dedupe"
	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/domain/monitor"
	"github.com/talentscan/talentscan/internal/domain/query"
	"github.com/talentscan/talentscan/internal/domain/ranking"
	"github.com/talentscan/talentscan/internal/domain/scoring"
	"github.com/talentscan/talentscan/internal/domain/snapshot"
	"github.com/talentscan/talentscan/internal/domain/sources"
	"github.com/talentscan/talentscan/internal/storage"
	"github.com/talentscan/talentscan/pkg/logger"
)

// Service wires the talent-intelligence components behind one facade.
type Service struct {
	roster     storage.CandidateStore
	scoreStore storage.ScoreStore
	alertStore storage.AlertStore

	registry sources.Registry
	agg      *aggregate.Aggregator
	composer *scoring.Composer
	interp   *query.Interpreter
	engine   *ranking.Engine
	cache    *snapshot.Cache
	index    *repository.IndexStore
	mon      *monitor.Monitor
	bus      *alertbus.Bus
	pool     *worker.Pool

	snapshotTTL     time.Duration
	monitorInterval time.Duration
	fetchTimeout    time.Duration
	concurrency     int
	alertBuffer     int
	indexShards     int
	dedupeSize      int
	subScoreDelta   float64
	activityDelta   int
	weights         scoring.WeightTable

	mu         sync.Mutex
	started    bool
	persistWg  sync.WaitGroup
	persistOff func()

	logger logger.Logger
}

// New creates a Service over the given roster. The zero option set runs the
// synthetic provider registry with in-memory collaborators.
func New(roster storage.CandidateStore, opts ...Option) *Service {
	s := &Service{
		roster:          roster,
		snapshotTTL:     24 * time.Hour,
		monitorInterval: 6 * time.Hour,
		fetchTimeout:    10 * time.Second,
		alertBuffer:     64,
		indexShards:     8,
		dedupeSize:      10_000,
		subScoreDelta:   1.5,
		activityDelta:   3,
		weights:         scoring.DefaultWeightTable(),
		logger:          logger.Get().Named("service"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.registry == nil {
		s.registry = sources.NewDefaultRegistry()
	}

	s.agg = aggregate.New(s.registry,
		aggregate.WithFetchTimeout(s.fetchTimeout),
	)
	s.composer = scoring.NewComposer(s.registry.Providers(),
		scoring.WithWeightTable(s.weights),
	)
	s.interp = query.NewInterpreter()
	s.engine = ranking.NewEngine()
	s.index = repository.NewIndexStore(repository.WithShardCount(s.indexShards))
	s.pool = worker.NewPool(s.concurrency)
	s.bus = alertbus.New(alertbus.WithBuffer(s.alertBuffer))

	builder := snapshot.NewBuilder(s.agg, s.composer)
	cacheOpts := []snapshot.CacheOption{
		snapshot.WithTTL(s.snapshotTTL),
		snapshot.WithIndexWriter(s.index),
	}
	if s.scoreStore != nil {
		store := s.scoreStore
		cacheOpts = append(cacheOpts, snapshot.WithScoreRecorder(
			func(ctx context.Context, candidateID string, score model.CompositeScore, at time.Time) error {
				return store.Append(ctx, &storage.ScoreRecord{
					CandidateID: candidateID,
					Score:       score,
					ScoredAt:    at,
				})
			},
		))
	}
	s.cache = snapshot.NewCache(builder, s.roster, cacheOpts...)

	s.mon = monitor.New(s.agg, s.roster, s.composer, s.bus, s.pool,
		monitor.WithInterval(s.monitorInterval),
		monitor.WithDeduper(dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))),
		monitor.WithSubScoreDelta(s.subScoreDelta),
		monitor.WithActivityDelta(s.activityDelta),
	)

	return s
}

// Start launches the monitor loop and, when an alert store is wired, the
// durability subscriber that persists every published alert.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true

	s.mon.Start(ctx)

	if s.alertStore != nil {
		ch, cancel := s.bus.Subscribe("persistence", s.alertBuffer)
		s.persistOff = cancel
		s.persistWg.Add(1)
		go func() {
			defer s.persistWg.Done()
			for alert := range ch {
				if err := s.alertStore.Append(context.Background(), &alert); err != nil {
					s.logger.Warn(ctx, "alert persistence failed",
						logger.String("alert", alert.ID),
						logger.Error(err),
					)
				}
			}
		}()
	}

	s.logger.Info(ctx, "service started",
		logger.Int("providers", len(s.registry)),
		logger.Int("pool_capacity", s.pool.Capacity()),
	)
	return nil
}

// Stop halts the monitor, closes the alert bus, and waits for the
// persistence subscriber to drain.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return fmt.Errorf("stop: %w", ErrNotStarted)
	}
	s.started = false

	s.mon.Stop()
	if s.persistOff != nil {
		s.persistOff()
		s.persistOff = nil
	}
	_ = s.bus.Close()
	s.persistWg.Wait()

	s.logger.Info(ctx, "service stopped")
	return nil
}
