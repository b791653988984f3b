// Package aggregate assembles per-candidate signal bundles by fanning out
// to every configured provider fetcher concurrently.
//
// Semantics are settle-all: the aggregator waits for every provider call to
// finish (success or failure) before producing a bundle. Failures are
// captured per provider and never abort sibling fetches; an all-failed
// bundle is a valid result that downstream scoring treats as insufficient
// data rather than an error.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/domain/sources"
	"github.com/talentscan/talentscan/pkg/logger"
	"github.com/talentscan/talentscan/pkg/metrics"
)

// defaultFetchTimeout bounds a single provider call.
const defaultFetchTimeout = 10 * time.Second

// Aggregator fans out fetches and merges results into a SignalBundle.
type Aggregator struct {
	registry     sources.Registry
	fetchTimeout time.Duration
	logger       logger.Logger
}

// New creates an Aggregator over the given fetcher registry.
func New(registry sources.Registry, opts ...Option) *Aggregator {
	a := &Aggregator{
		registry:     registry,
		fetchTimeout: defaultFetchTimeout,
		logger:       logger.Get().Named("aggregate"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ConfiguredProviders returns how many providers the aggregator fans out to.
func (a *Aggregator) ConfiguredProviders() int { return len(a.registry) }

// Aggregate fetches every configured provider for which the candidate has
// an identity, concurrently, each under its own timeout. The returned
// bundle always carries the candidate id and assembly timestamp; it may
// hold zero successful providers. The only hard failure is cancellation of
// the aggregation context itself.
func (a *Aggregator) Aggregate(ctx context.Context, candidate *model.Candidate) (*model.SignalBundle, error) {
	if candidate == nil || candidate.ID == "" {
		return nil, ErrNoCandidate
	}

	bundle := model.NewSignalBundle(candidate.ID)

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, provider := range a.registry.Providers() {
		identity, ok := candidate.Identity(provider)
		if !ok {
			continue
		}
		fetcher := a.registry[provider]

		wg.Add(1)
		go func(provider model.Provider, fetcher sources.Fetcher, identity string) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
			defer cancel()

			start := time.Now()
			profile, err := fetcher.Fetch(fetchCtx, identity)
			metrics.RecordFetchLatency(string(provider), float64(time.Since(start).Milliseconds()))

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				err = normalizeFetchErr(provider, err)
				bundle.Errors[provider] = err
				kind := "unknown"
				if fe, ok := sources.AsFetchError(err); ok {
					kind = string(fe.Kind)
				}
				metrics.RecordFetchError(string(provider), kind)
				a.logger.Debug(ctx, "provider fetch failed",
					logger.String("candidateID", candidate.ID),
					logger.String("provider", string(provider)),
					logger.Error(err),
				)
				return
			}
			bundle.Profiles[provider] = profile
		}(provider, fetcher, identity)
	}

	// Settle-all join: no short-circuit on first success or first failure.
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		// Per-fetch contexts inherit ctx, so in-flight calls unwind on
		// their own; the caller abandoned the aggregation.
		<-done
		return nil, fmt.Errorf("aggregate %s: %w", candidate.ID, ctx.Err())
	}

	metrics.RecordBundleAssembled(bundle.PresentCount(), len(bundle.Errors))
	if len(bundle.Errors) > 0 && bundle.PresentCount() > 0 {
		metrics.RecordPartialBundle()
	}

	return bundle, nil
}

// normalizeFetchErr guarantees every recorded provider failure is a
// *sources.FetchError so downstream consumers can switch on Kind.
func normalizeFetchErr(provider model.Provider, err error) error {
	if _, ok := sources.AsFetchError(err); ok {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &sources.FetchError{Provider: provider, Kind: sources.KindTimeout, Cause: err}
	}
	return &sources.FetchError{Provider: provider, Kind: sources.KindMalformed, Cause: err}
}
