// Package metrics provides Prometheus metrics for the talentscan service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns all Prometheus metric families for the service.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	// Provider fetch metrics
	fetchLatency  *prometheus.HistogramVec
	fetchErrors   *prometheus.CounterVec
	rateLimitHits *prometheus.CounterVec

	// Aggregation metrics
	bundlesAssembled prometheus.Counter
	bundleProviders  prometheus.Histogram
	partialBundles   prometheus.Counter
	allFailedBundles prometheus.Counter

	// Snapshot cache metrics
	snapshotCacheHits     prometheus.Counter
	snapshotCacheMisses   prometheus.Counter
	snapshotCoalesced     prometheus.Counter
	snapshotBuildDuration prometheus.Histogram
	snapshotInvalidations prometheus.Counter

	// Search metrics
	searchesTotal   prometheus.Counter
	searchDuration  prometheus.Histogram
	searchRosterLen prometheus.Histogram

	// Monitor metrics
	monitorTicks        prometheus.Counter
	monitorTickDuration prometheus.Histogram
	monitoredCandidates prometheus.Gauge
	alertsEmitted       *prometheus.CounterVec
	alertsSuppressed    prometheus.Counter

	// Alert bus metrics
	alertSubscribers prometheus.Gauge
	alertsDropped    *prometheus.CounterVec

	// Worker pool metrics
	poolInFlight prometheus.Gauge
	poolRejected prometheus.Counter

	// Talent index metrics
	indexSize prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to keep scrapes limited to our own families.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all families.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "talentscan",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.fetchLatency = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "fetch_latency_ms",
		Help:      "Provider fetch latency in milliseconds.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"provider"})
	m.fetchErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "fetch_errors_total",
		Help:      "Provider fetch failures by provider and kind.",
	}, []string{"provider", "kind"})
	m.rateLimitHits = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "rate_limit_hits_total",
		Help:      "Fetches rejected by a provider's local rate limiter.",
	}, []string{"provider"})

	m.bundlesAssembled = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "bundles_assembled_total",
		Help:      "Signal bundles assembled.",
	})
	m.bundleProviders = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "bundle_present_providers",
		Help:      "Successful providers per assembled bundle.",
		Buckets:   prometheus.LinearBuckets(0, 1, 6),
	})
	m.partialBundles = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "bundles_partial_total",
		Help:      "Bundles assembled with at least one provider failure.",
	})
	m.allFailedBundles = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "bundles_all_failed_total",
		Help:      "Bundles where every provider fetch failed.",
	})

	m.snapshotCacheHits = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "snapshot_cache_hits_total",
		Help:      "Snapshot cache hits within TTL.",
	})
	m.snapshotCacheMisses = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "snapshot_cache_misses_total",
		Help:      "Snapshot cache misses triggering a build.",
	})
	m.snapshotCoalesced = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "snapshot_builds_coalesced_total",
		Help:      "Cache misses that awaited an in-flight build.",
	})
	m.snapshotBuildDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "snapshot_build_duration_ms",
		Help:      "Snapshot build duration in milliseconds.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	})
	m.snapshotInvalidations = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "snapshot_invalidations_total",
		Help:      "Explicit snapshot invalidations.",
	})

	m.searchesTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "searches_total",
		Help:      "Search requests processed.",
	})
	m.searchDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "search_duration_ms",
		Help:      "End-to-end search duration in milliseconds.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	})
	m.searchRosterLen = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "search_roster_size",
		Help:      "Candidates scored per search.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	m.monitorTicks = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "monitor_ticks_total",
		Help:      "Completed monitor polling cycles.",
	})
	m.monitorTickDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "monitor_tick_duration_ms",
		Help:      "Monitor tick duration in milliseconds.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
	})
	m.monitoredCandidates = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "monitored_candidates",
		Help:      "Candidates in the monitored set.",
	})
	m.alertsEmitted = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "alerts_emitted_total",
		Help:      "Risk alerts emitted by severity.",
	}, []string{"severity"})
	m.alertsSuppressed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "alerts_suppressed_total",
		Help:      "Alerts suppressed by fingerprint dedupe.",
	})

	m.alertSubscribers = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "alert_subscribers",
		Help:      "Active alert bus subscribers.",
	})
	m.alertsDropped = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "alerts_dropped_total",
		Help:      "Alerts dropped per subscriber due to full buffers.",
	}, []string{"subscriber"})

	m.poolInFlight = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "aggregation_in_flight",
		Help:      "Aggregation jobs currently running.",
	})
	m.poolRejected = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "aggregation_rejected_total",
		Help:      "Aggregation jobs rejected by the pool.",
	})

	m.indexSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "talent_index_size",
		Help:      "Candidates tracked in the talent index.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method, and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"endpoint", "method"})

	return m
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}
