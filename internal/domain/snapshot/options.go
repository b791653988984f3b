package snapshot

import (
	"time"

	"github.com/talentscan/talentscan/pkg/logger"
)

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithBuilderLogger overrides the builder's logger.
func WithBuilderLogger(l logger.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = l
	}
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithTTL overrides the snapshot freshness window.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithIndexWriter enables write-through to the talent index.
func WithIndexWriter(w IndexWriter) CacheOption {
	return func(c *Cache) {
		c.index = w
	}
}

// WithScoreRecorder enables score-history write-back.
func WithScoreRecorder(r ScoreRecorder) CacheOption {
	return func(c *Cache) {
		c.record = r
	}
}

// WithClock overrides the time source. Tests use this to age entries past
// their TTL without sleeping.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}
