package monitor

import (
	"time"

	"github.com/talentscan/talentscan/internal/domain/dedupe"
	"github.com/talentscan/talentscan/pkg/logger"
)

// Option configures a Monitor.
type Option func(*Monitor)

// WithInterval overrides the poll interval.
func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithDeduper overrides the alert fingerprint deduper.
func WithDeduper(d dedupe.Deduper) Option {
	return func(m *Monitor) {
		if d != nil {
			m.deduper = d
		}
	}
}

// WithSubScoreDelta overrides the sub-score change threshold.
func WithSubScoreDelta(delta float64) Option {
	return func(m *Monitor) {
		if delta > 0 {
			m.subScoreDelta = delta
		}
	}
}

// WithActivityDelta overrides the activity-count change threshold.
func WithActivityDelta(delta int) Option {
	return func(m *Monitor) {
		if delta > 0 {
			m.activityDelta = delta
		}
	}
}

// WithLogger overrides the monitor's logger.
func WithLogger(l logger.Logger) Option {
	return func(m *Monitor) {
		m.logger = l
	}
}
