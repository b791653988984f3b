// Package monitor polls watched candidates on a fixed interval, diffs
// each poll against the last-known signals, and publishes risk alerts for
// material changes.
package monitor

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/talentscan/talentscan/internal/domain/dedupe"
	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/pkg/logger"
	"github.com/talentscan/talentscan/pkg/metrics"
)

// defaultInterval spaces polls far enough apart to stay friendly to the
// upstream providers.
const defaultInterval = 6 * time.Hour

// Aggregator assembles a signal bundle for a candidate.
type Aggregator interface {
	Aggregate(ctx context.Context, candidate *model.Candidate) (*model.SignalBundle, error)
}

// Roster resolves candidate IDs to roster entries.
type Roster interface {
	Get(ctx context.Context, candidateID string) (*model.Candidate, error)
}

// Availability derives availability signals from a bundle.
type Availability interface {
	ExtractAvailability(bundle *model.SignalBundle) []model.AvailabilitySignal
}

// Publisher receives emitted alerts.
type Publisher interface {
	Publish(ctx context.Context, alert model.RiskAlert)
}

// TickPool bounds the per-tick aggregation fan-out.
type TickPool interface {
	ForEach(ctx context.Context, n int, fn func(ctx context.Context, i int)) error
}

// lastState is the previous poll of one watched candidate, plus the alert
// fingerprints recorded on its behalf so Unwatch can release them.
type lastState struct {
	bundle       *model.SignalBundle
	availability []model.AvailabilitySignal
	fingerprints map[string]bool
}

// Monitor owns the watch list and the polling loop. Ticks never overlap:
// the loop waits for full settlement of one tick before the next can start.
type Monitor struct {
	agg      Aggregator
	roster   Roster
	avail    Availability
	bus      Publisher
	pool     TickPool
	deduper  dedupe.Deduper
	interval time.Duration
	logger   logger.Logger

	subScoreDelta float64
	activityDelta int

	mu      sync.Mutex
	watched map[string]*lastState

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a monitor. Watch is empty until candidates are added.
func New(agg Aggregator, roster Roster, avail Availability, bus Publisher, pool TickPool, opts ...Option) *Monitor {
	m := &Monitor{
		agg:           agg,
		roster:        roster,
		avail:         avail,
		bus:           bus,
		pool:          pool,
		deduper:       dedupe.NewInMemoryDeduper(),
		interval:      defaultInterval,
		logger:        logger.Get().Named("monitor"),
		subScoreDelta: defaultSubScoreDelta,
		activityDelta: defaultActivityDelta,
		watched:       make(map[string]*lastState),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Watch adds candidates to the monitored set. Already-watched IDs keep
// their last-known state.
func (m *Monitor) Watch(ids ...string) {
	m.mu.Lock()
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := m.watched[id]; !ok {
			m.watched[id] = &lastState{}
		}
	}
	n := len(m.watched)
	m.mu.Unlock()
	metrics.UpdateMonitoredCandidates(n)
}

// Unwatch removes a candidate from the monitored set and releases its
// recorded alert fingerprints, so a re-watched candidate alerts afresh.
// Unknown IDs are a no-op.
func (m *Monitor) Unwatch(id string) {
	m.mu.Lock()
	state := m.watched[id]
	delete(m.watched, id)
	n := len(m.watched)
	m.mu.Unlock()
	metrics.UpdateMonitoredCandidates(n)

	if state == nil {
		return
	}
	for fp := range state.fingerprints {
		m.deduper.Unrecord(context.Background(), fp)
	}
}

// Watched returns the monitored candidate IDs in sorted order.
func (m *Monitor) Watched() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.watched))
	for id := range m.watched {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Start launches the polling loop. Calling Start on a running monitor is a
// no-op.
func (m *Monitor) Start(ctx context.Context) {
	m.runMu.Lock()
	defer m.runMu.Unlock()
	if m.cancel != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				// Tick runs to settlement before the next select, so
				// ticks cannot overlap even when a poll runs long.
				m.Tick(loopCtx)
			}
		}
	}()
}

// Stop halts the polling loop and waits for an in-flight tick to settle.
func (m *Monitor) Stop() {
	m.runMu.Lock()
	defer m.runMu.Unlock()
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	m.cancel = nil
	m.done = nil
}

// Tick polls every watched candidate once and emits alerts for material
// changes. Exposed so callers can force a poll outside the schedule.
func (m *Monitor) Tick(ctx context.Context) {
	start := time.Now()
	ids := m.Watched()
	if len(ids) == 0 {
		return
	}

	if err := m.pool.ForEach(ctx, len(ids), func(ctx context.Context, i int) {
		m.poll(ctx, ids[i])
	}); err != nil {
		m.logger.Warn(ctx, "tick interrupted", logger.Error(err))
	}

	metrics.RecordMonitorTick(float64(time.Since(start).Milliseconds()))
}

func (m *Monitor) poll(ctx context.Context, id string) {
	cand, err := m.roster.Get(ctx, id)
	if err != nil {
		m.logger.Warn(ctx, "watched candidate not resolvable",
			logger.String("candidate", id),
			logger.Error(err),
		)
		return
	}

	bundle, err := m.agg.Aggregate(ctx, cand)
	if err != nil {
		m.logger.Warn(ctx, "poll aggregation failed",
			logger.String("candidate", id),
			logger.Error(err),
		)
		return
	}

	m.mu.Lock()
	state, watched := m.watched[id]
	if !watched {
		// Unwatched between snapshot of the ID list and the poll.
		m.mu.Unlock()
		return
	}
	prev := state.bundle
	prevAvail := state.availability

	// A provider that errored this poll keeps its last good profile as the
	// baseline, so a transient failure followed by recovery with identical
	// data diffs clean.
	if prev != nil {
		for p := range bundle.Errors {
			if _, ok := bundle.Profiles[p]; ok {
				continue
			}
			if sp, ok := prev.Profile(p); ok {
				bundle.Profiles[p] = sp
			}
		}
	}
	availability := m.avail.ExtractAvailability(bundle)
	state.bundle = bundle
	state.availability = availability
	m.mu.Unlock()

	changes := diffBundles(prev, bundle, prevAvail, availability, m.subScoreDelta, m.activityDelta)
	if len(changes) == 0 {
		return
	}

	fp := fingerprint(id, changes)
	m.mu.Lock()
	if state.fingerprints == nil {
		state.fingerprints = make(map[string]bool)
	}
	state.fingerprints[fp] = true
	m.mu.Unlock()
	if m.deduper.SeenAndRecord(ctx, fp) {
		metrics.RecordAlertSuppressed()
		return
	}

	alert := model.RiskAlert{
		ID:          uuid.NewString(),
		CandidateID: id,
		Changes:     changes,
		Severity:    severityFor(changes),
		DetectedAt:  time.Now().UTC(),
	}
	m.bus.Publish(ctx, alert)
	metrics.RecordAlertEmitted(string(alert.Severity))

	m.logger.Info(ctx, "risk alert emitted",
		logger.String("candidate", id),
		logger.String("severity", string(alert.Severity)),
		logger.Int("changes", len(changes)),
	)
}
