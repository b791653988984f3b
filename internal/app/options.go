package service

import (
	"time"

	"github.com/talentscan/talentscan/internal/domain/scoring"
	"github.com/talentscan/talentscan/internal/domain/sources"
	"github.com/talentscan/talentscan/internal/storage"
	"github.com/talentscan/talentscan/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRegistry overrides the provider fetcher registry.
func WithRegistry(r sources.Registry) Option {
	return func(s *Service) {
		if len(r) > 0 {
			s.registry = r
		}
	}
}

// WithScoreStore enables score-history write-back.
func WithScoreStore(store storage.ScoreStore) Option {
	return func(s *Service) {
		s.scoreStore = store
	}
}

// WithAlertStore enables durable alert persistence via a bus subscriber.
func WithAlertStore(store storage.AlertStore) Option {
	return func(s *Service) {
		s.alertStore = store
	}
}

// WithSnapshotTTL sets the snapshot freshness window.
func WithSnapshotTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.snapshotTTL = ttl
		}
	}
}

// WithMonitorInterval sets the risk-monitor poll interval.
func WithMonitorInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.monitorInterval = d
		}
	}
}

// WithFetchTimeout caps each per-provider fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithAggregationConcurrency bounds simultaneous aggregations.
func WithAggregationConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithAlertBuffer sets the default subscriber channel buffer.
func WithAlertBuffer(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.alertBuffer = n
		}
	}
}

// WithIndexShards configures the talent index shard count.
func WithIndexShards(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.indexShards = n
		}
	}
}

// WithDedupeSize bounds the alert fingerprint cache.
func WithDedupeSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.dedupeSize = n
		}
	}
}

// WithChangeThresholds sets the monitor's material-change thresholds.
func WithChangeThresholds(subScoreDelta float64, activityDelta int) Option {
	return func(s *Service) {
		if subScoreDelta > 0 {
			s.subScoreDelta = subScoreDelta
		}
		if activityDelta > 0 {
			s.activityDelta = activityDelta
		}
	}
}

// WithWeightTable overrides the scoring weight table.
func WithWeightTable(t scoring.WeightTable) Option {
	return func(s *Service) {
		if len(t) > 0 {
			s.weights = t
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
