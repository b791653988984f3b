package alertbus

import "github.com/talentscan/talentscan/pkg/logger"

// Option applies a configuration option to the Bus.
type Option func(*Bus)

// WithBuffer sets the default per-subscriber buffer capacity.
func WithBuffer(n int) Option {
	return func(b *Bus) {
		if n > 0 {
			b.buffer = n
		}
	}
}

// WithLogger sets a custom logger for the bus.
func WithLogger(l logger.Logger) Option {
	return func(b *Bus) {
		if l != nil {
			b.logger = l
		}
	}
}
