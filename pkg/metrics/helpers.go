package metrics

import "strconv"

// Package-level helpers recording against the global manager. Components
// call these directly; the manager wiring stays an implementation detail.

// RecordFetchLatency records one provider fetch duration.
func RecordFetchLatency(provider string, ms float64) {
	globalManager.fetchLatency.WithLabelValues(provider).Observe(ms)
}

// RecordFetchError counts one provider fetch failure by kind.
func RecordFetchError(provider, kind string) {
	globalManager.fetchErrors.WithLabelValues(provider, kind).Inc()
}

// RecordRateLimitHit counts a fetch rejected by the provider's limiter.
func RecordRateLimitHit(provider string) {
	globalManager.rateLimitHits.WithLabelValues(provider).Inc()
}

// RecordBundleAssembled records a completed aggregation pass.
func RecordBundleAssembled(present, failed int) {
	globalManager.bundlesAssembled.Inc()
	globalManager.bundleProviders.Observe(float64(present))
	if present == 0 && failed > 0 {
		globalManager.allFailedBundles.Inc()
	}
}

// RecordPartialBundle counts a bundle with mixed success and failure.
func RecordPartialBundle() {
	globalManager.partialBundles.Inc()
}

// RecordSnapshotCacheHit counts a cache hit within TTL.
func RecordSnapshotCacheHit() { globalManager.snapshotCacheHits.Inc() }

// RecordSnapshotCacheMiss counts a miss that triggered a build.
func RecordSnapshotCacheMiss() { globalManager.snapshotCacheMisses.Inc() }

// RecordSnapshotCoalesced counts a miss that awaited an in-flight build.
func RecordSnapshotCoalesced() { globalManager.snapshotCoalesced.Inc() }

// RecordSnapshotBuildDuration records one snapshot build duration.
func RecordSnapshotBuildDuration(ms float64) {
	globalManager.snapshotBuildDuration.Observe(ms)
}

// RecordSnapshotInvalidation counts an explicit invalidation.
func RecordSnapshotInvalidation() { globalManager.snapshotInvalidations.Inc() }

// RecordSearch records one completed search.
func RecordSearch(ms float64, rosterSize int) {
	globalManager.searchesTotal.Inc()
	globalManager.searchDuration.Observe(ms)
	globalManager.searchRosterLen.Observe(float64(rosterSize))
}

// RecordMonitorTick records one completed polling cycle.
func RecordMonitorTick(ms float64) {
	globalManager.monitorTicks.Inc()
	globalManager.monitorTickDuration.Observe(ms)
}

// UpdateMonitoredCandidates sets the monitored-set size gauge.
func UpdateMonitoredCandidates(n int) {
	globalManager.monitoredCandidates.Set(float64(n))
}

// RecordAlertEmitted counts one emitted alert by severity.
func RecordAlertEmitted(severity string) {
	globalManager.alertsEmitted.WithLabelValues(severity).Inc()
}

// RecordAlertSuppressed counts an alert held back by fingerprint dedupe.
func RecordAlertSuppressed() { globalManager.alertsSuppressed.Inc() }

// UpdateAlertSubscribers sets the subscriber gauge.
func UpdateAlertSubscribers(n int) {
	globalManager.alertSubscribers.Set(float64(n))
}

// RecordAlertDropped counts a drop caused by a full subscriber buffer.
func RecordAlertDropped(subscriber string) {
	globalManager.alertsDropped.WithLabelValues(subscriber).Inc()
}

// UpdatePoolInFlight sets the in-flight aggregation gauge.
func UpdatePoolInFlight(n int) {
	globalManager.poolInFlight.Set(float64(n))
}

// RecordPoolRejected counts a rejected aggregation job.
func RecordPoolRejected() { globalManager.poolRejected.Inc() }

// UpdateIndexSize sets the talent index size gauge.
func UpdateIndexSize(n int) {
	globalManager.indexSize.Set(float64(n))
}

// RecordHTTPRequest counts one handled HTTP request.
func RecordHTTPRequest(endpoint, method string, status int) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
}

// RecordHTTPRequestDuration records one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(ms)
}
