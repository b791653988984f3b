package repository

type indexConfig struct {
	shardCount int
}

// Option configures the index store.
type Option func(*indexConfig)

// WithShardCount sets how many shards back the index. Values below one
// fall back to the default.
func WithShardCount(n int) Option {
	return func(c *indexConfig) {
		if n > 0 {
			c.shardCount = n
		}
	}
}
