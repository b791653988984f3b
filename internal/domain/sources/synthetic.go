package sources

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/pkg/metrics"
)

// Default simulated provider latency bounds.
const (
	defaultMinLatency = 5 * time.Millisecond
	defaultMaxLatency = 25 * time.Millisecond

	maxSubScore = 10.0

	// Fraction of identities that exist on a provider but have no data.
	noDataModulus = 7
)

// metricRange bounds one synthetic provider metric.
type metricRange struct {
	name string
	min  float64
	max  float64
}

// blueprint describes how to synthesize one provider's profiles.
type blueprint struct {
	metrics       []metricRange
	activityKinds []string
	statusLines   []string
	subScore      func(m map[string]float64) float64
}

// norm maps a raw counter onto [0,1] against a saturation ceiling.
func norm(v, ceiling float64) float64 {
	if ceiling <= 0 {
		return 0
	}
	return math.Min(1, v/ceiling)
}

// blueprints defines the synthetic signal shape per provider. Real adapters
// replace SyntheticFetcher; the metric names here are the contract the
// scorer and snapshot rules read.
var blueprints = map[model.Provider]blueprint{
	model.ProviderCodeHost: {
		metrics: []metricRange{
			{"public_repos", 1, 80},
			{"stars", 0, 900},
			{"contributions_last_year", 0, 2400},
			{"followers", 0, 1200},
			{"languages", 1, 12},
		},
		activityKinds: []string{"commit", "pull_request", "release", "new_repo"},
		statusLines:   []string{"started a side project", "archived main project"},
		subScore: func(m map[string]float64) float64 {
			return maxSubScore * (0.40*norm(m["contributions_last_year"], 1200) +
				0.25*norm(m["stars"], 500) +
				0.20*norm(m["public_repos"], 40) +
				0.15*norm(m["followers"], 600))
		},
	},
	model.ProviderQA: {
		metrics: []metricRange{
			{"reputation", 0, 60000},
			{"answers", 0, 1500},
			{"accept_rate", 0, 1},
			{"badges", 0, 120},
		},
		activityKinds: []string{"answer", "question", "edit"},
		subScore: func(m map[string]float64) float64 {
			return maxSubScore * (0.45*norm(m["reputation"], 25000) +
				0.30*norm(m["answers"], 600) +
				0.15*m["accept_rate"] +
				0.10*norm(m["badges"], 80))
		},
	},
	model.ProviderNetwork: {
		metrics: []metricRange{
			{"connections", 0, 5000},
			{"endorsements", 0, 400},
			{"recent_posts", 0, 40},
			{"profile_updates_90d", 0, 8},
			{"new_connections_90d", 0, 300},
		},
		activityKinds: []string{"post", "profile_update", "new_connection"},
		statusLines: []string{
			"open to new opportunities",
			"looking for the next challenge",
			"updated skills section",
		},
		subScore: func(m map[string]float64) float64 {
			return maxSubScore * (0.40*norm(m["connections"], 2000) +
				0.30*norm(m["endorsements"], 200) +
				0.30*norm(m["recent_posts"], 20))
		},
	},
	model.ProviderMicroblog: {
		metrics: []metricRange{
			{"followers", 0, 50000},
			{"posts_per_week", 0, 40},
			{"engagement_rate", 0, 1},
		},
		activityKinds: []string{"post", "repost", "thread"},
		statusLines:   []string{"excited to share what I've been learning"},
		subScore: func(m map[string]float64) float64 {
			return maxSubScore * (0.50*norm(m["followers"], 15000) +
				0.25*norm(m["posts_per_week"], 15) +
				0.25*m["engagement_rate"])
		},
	},
	model.ProviderForum: {
		metrics: []metricRange{
			{"posts", 0, 3000},
			{"threads", 0, 300},
			{"upvotes", 0, 8000},
			{"solutions", 0, 400},
		},
		activityKinds: []string{"reply", "thread", "solution"},
		subScore: func(m map[string]float64) float64 {
			return maxSubScore * (0.35*norm(m["posts"], 1200) +
				0.25*norm(m["upvotes"], 3000) +
				0.40*norm(m["solutions"], 150))
		},
	},
}

// SyntheticFetcher is a deterministic stand-in for a real provider adapter.
// Profile content is derived from a hash of the identity, so repeated
// fetches for the same identity return equivalent signals. It simulates
// network latency and honors cooperative cancellation.
type SyntheticFetcher struct {
	provider   model.Provider
	lim        *limiter
	minLatency time.Duration
	maxLatency time.Duration
}

// NewSyntheticFetcher creates a synthetic fetcher for the provider.
func NewSyntheticFetcher(provider model.Provider, opts ...Option) *SyntheticFetcher {
	f := &SyntheticFetcher{
		provider:   provider,
		lim:        newLimiter(defaultBurst, defaultRefillInterval),
		minLatency: defaultMinLatency,
		maxLatency: defaultMaxLatency,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewDefaultRegistry returns a registry with one synthetic fetcher per
// known provider.
func NewDefaultRegistry(opts ...Option) Registry {
	fetchers := make([]Fetcher, 0, len(model.AllProviders()))
	for _, p := range model.AllProviders() {
		fetchers = append(fetchers, NewSyntheticFetcher(p, opts...))
	}
	return NewRegistry(fetchers...)
}

// Provider identifies which platform this fetcher serves.
func (f *SyntheticFetcher) Provider() model.Provider { return f.provider }

// Fetch synthesizes the identity's profile. Rate-limit exhaustion surfaces
// as a rate_limited error without blocking; ctx expiry during simulated
// I/O maps to a timeout error.
func (f *SyntheticFetcher) Fetch(ctx context.Context, identity string) (*model.SourceProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, f.wrapCtx(err)
	}
	if !f.lim.allow() {
		metrics.RecordRateLimitHit(string(f.provider))
		return nil, &FetchError{Provider: f.provider, Kind: KindRateLimited}
	}

	seed := f.seed(identity)
	rng := rand.New(rand.NewSource(int64(seed))) //nolint:gosec // deterministic profile synthesis

	if err := f.sleep(ctx, rng); err != nil {
		return nil, err
	}

	fetchedAt := time.Now().UTC()
	profile := &model.SourceProfile{
		Provider:  f.provider,
		Identity:  identity,
		FetchedAt: fetchedAt,
	}

	// Some identities exist on the provider without any signal.
	if seed%noDataModulus == 0 {
		return profile, nil
	}

	bp := blueprints[f.provider]
	profile.Metrics = make(map[string]float64, len(bp.metrics))
	for _, mr := range bp.metrics {
		v := mr.min + rng.Float64()*(mr.max-mr.min)
		if mr.max > 1 {
			v = math.Floor(v)
		}
		profile.Metrics[mr.name] = v
	}
	profile.RecentActivity = f.activity(bp, rng, fetchedAt)
	profile.SubScore = clampSubScore(bp.subScore(profile.Metrics))

	return profile, nil
}

// activity synthesizes a short recent-activity feed.
func (f *SyntheticFetcher) activity(bp blueprint, rng *rand.Rand, at time.Time) []model.ActivityItem {
	n := 3 + rng.Intn(4)
	items := make([]model.ActivityItem, 0, n+1)
	for i := 0; i < n; i++ {
		kind := bp.activityKinds[rng.Intn(len(bp.activityKinds))]
		items = append(items, model.ActivityItem{
			Kind:       kind,
			Detail:     fmt.Sprintf("%s activity #%d", kind, rng.Intn(1000)),
			OccurredAt: at.AddDate(0, 0, -(i + 1)),
		})
	}
	// Occasionally surface a status line the availability heuristics read.
	if len(bp.statusLines) > 0 && rng.Float64() < 0.3 {
		items = append(items, model.ActivityItem{
			Kind:       "status_update",
			Detail:     bp.statusLines[rng.Intn(len(bp.statusLines))],
			OccurredAt: at.AddDate(0, 0, -1),
		})
	}
	return items
}

func (f *SyntheticFetcher) sleep(ctx context.Context, rng *rand.Rand) error {
	latency := f.minLatency
	if f.maxLatency > f.minLatency {
		latency += time.Duration(rng.Int63n(int64(f.maxLatency - f.minLatency)))
	}
	timer := time.NewTimer(latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return f.wrapCtx(ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (f *SyntheticFetcher) wrapCtx(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &FetchError{Provider: f.provider, Kind: KindTimeout, Cause: err}
	}
	return fmt.Errorf("fetch %s canceled: %w", f.provider, err)
}

func (f *SyntheticFetcher) seed(identity string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(string(f.provider)))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(identity))
	return h.Sum64()
}

func clampSubScore(v float64) float64 {
	return math.Max(0, math.Min(maxSubScore, v))
}
