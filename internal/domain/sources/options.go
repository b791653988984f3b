package sources

import "time"

// Option applies a configuration option to a SyntheticFetcher.
type Option func(*SyntheticFetcher)

// WithLatencyRange sets the simulated provider latency bounds.
func WithLatencyRange(minLatency, maxLatency time.Duration) Option {
	return func(f *SyntheticFetcher) {
		if minLatency > 0 && maxLatency > minLatency {
			f.minLatency = minLatency
			f.maxLatency = maxLatency
		}
	}
}

// WithRateLimit sets the per-provider token-bucket burst and refill interval.
func WithRateLimit(burst int, refillEach time.Duration) Option {
	return func(f *SyntheticFetcher) {
		if burst > 0 && refillEach > 0 {
			f.lim = newLimiter(burst, refillEach)
		}
	}
}
