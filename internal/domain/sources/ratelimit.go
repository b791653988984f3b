package sources

import (
	"sync"
	"time"
)

// Default limiter configuration.
const (
	defaultBurst          = 60
	defaultRefillInterval = time.Minute
)

// limiter is a token bucket shared by all concurrent fetches for one
// provider. State updates are atomic under the mutex.
type limiter struct {
	mu         sync.Mutex
	tokens     int
	burst      int
	refillEach time.Duration
	lastRefill time.Time
	now        func() time.Time
}

func newLimiter(burst int, refillEach time.Duration) *limiter {
	if burst <= 0 {
		burst = defaultBurst
	}
	if refillEach <= 0 {
		refillEach = defaultRefillInterval
	}
	l := &limiter{
		tokens:     burst,
		burst:      burst,
		refillEach: refillEach,
		now:        time.Now,
	}
	l.lastRefill = l.now()
	return l
}

// allow consumes one token if available. Returns false when the bucket is
// exhausted; callers surface that as a rate_limited fetch error.
func (l *limiter) allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if elapsed := now.Sub(l.lastRefill); elapsed >= l.refillEach {
		refills := int(elapsed / l.refillEach)
		l.tokens += refills * l.burst
		if l.tokens > l.burst {
			l.tokens = l.burst
		}
		l.lastRefill = l.lastRefill.Add(time.Duration(refills) * l.refillEach)
	}

	if l.tokens <= 0 {
		return false
	}
	l.tokens--
	return true
}

// remaining returns the current token count. Intended for stats only.
func (l *limiter) remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tokens
}
