// Package worker provides the bounded-concurrency pool used for
// per-candidate aggregation fan-out.
//
// Search requests and monitor ticks share one pool, so the concurrency cap
// is global: external providers never see more simultaneous aggregations
// than the configured limit, no matter how many callers fan out at once.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/talentscan/talentscan/pkg/logger"
	"github.com/talentscan/talentscan/pkg/metrics"
)

// defaultConcurrencyMultiplier scales the default cap off the CPU count.
const defaultConcurrencyMultiplier = 4

// Pool bounds concurrent aggregation jobs with a semaphore.
type Pool struct {
	sem      chan struct{}
	inFlight atomic.Int64
	logger   logger.Logger
}

// NewPool creates a pool with the given concurrency cap. cap < 1 defaults
// to a multiple of the CPU count.
func NewPool(capacity int, opts ...Option) *Pool {
	if capacity < 1 {
		capacity = runtime.NumCPU() * defaultConcurrencyMultiplier
	}
	p := &Pool{
		sem:    make(chan struct{}, capacity),
		logger: logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Capacity returns the concurrency cap.
func (p *Pool) Capacity() int { return cap(p.sem) }

// InFlight returns the number of jobs currently running.
func (p *Pool) InFlight() int { return int(p.inFlight.Load()) }

// ForEach runs fn for every index in [0,n) with bounded concurrency and
// waits until all invocations settle. Settle-all semantics: a failing or
// panicking job never cancels its siblings; panics are recovered and
// logged so one bad candidate cannot take down a tick or a search.
// Returns ctx.Err() if the context expired before every job was admitted;
// already-started jobs still run to completion.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(ctx context.Context, i int)) error {
	var wg sync.WaitGroup
	var admitErr error

	for i := 0; i < n; i++ {
		select {
		case p.sem <- struct{}{}:
		case <-ctx.Done():
			metrics.RecordPoolRejected()
			admitErr = fmt.Errorf("worker pool admission: %w", ctx.Err())
		}
		if admitErr != nil {
			break
		}

		wg.Add(1)
		metrics.UpdatePoolInFlight(int(p.inFlight.Add(1)))
		go func(i int) {
			defer func() {
				if r := recover(); r != nil {
					p.logger.Error(ctx, "job panicked",
						logger.Int("job", i),
						logger.Any("panic", r),
					)
				}
				metrics.UpdatePoolInFlight(int(p.inFlight.Add(-1)))
				<-p.sem
				wg.Done()
			}()
			fn(ctx, i)
		}(i)
	}

	wg.Wait()
	return admitErr
}
