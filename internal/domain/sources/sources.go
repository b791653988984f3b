// Package sources defines the provider fetcher contract and the adapters
// that pull per-candidate signals from external platforms.
//
// Fetchers fail independently: a fetch error for one provider never affects
// sibling providers, and "no data" is a valid empty profile rather than an
// error. Each fetcher shares per-provider rate-limit state across all
// concurrent calls and surfaces exhaustion as a rate_limited fetch error so
// the aggregator can back off that provider without blocking others.
package sources

import (
	"context"

	"github.com/talentscan/talentscan/internal/domain/model"
)

// Fetcher retrieves a provider profile for one candidate identity.
type Fetcher interface {
	// Provider identifies which platform this fetcher serves.
	Provider() model.Provider

	// Fetch looks up the identity on the provider and returns its profile.
	// Honors ctx for cancellation. Returns *FetchError on failure; an
	// identity with no data yields an empty profile and a nil error.
	Fetch(ctx context.Context, identity string) (*model.SourceProfile, error)
}

// Registry maps providers to their configured fetchers.
type Registry map[model.Provider]Fetcher

// NewRegistry builds a registry from the given fetchers. Later fetchers for
// the same provider replace earlier ones.
func NewRegistry(fetchers ...Fetcher) Registry {
	r := make(Registry, len(fetchers))
	for _, f := range fetchers {
		r[f.Provider()] = f
	}
	return r
}

// Providers returns the configured providers in canonical order.
func (r Registry) Providers() []model.Provider {
	out := make([]model.Provider, 0, len(r))
	for _, p := range model.AllProviders() {
		if _, ok := r[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
