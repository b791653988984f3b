package sources

import (
	"context"
	"time"

	"github.com/talentscan/talentscan/internal/domain/model"
)

// StaticFetcher serves fixed profiles keyed by identity. Used by tests and
// by deployments that preload provider exports instead of calling APIs.
type StaticFetcher struct {
	provider model.Provider
	profiles map[string]*model.SourceProfile
	fail     map[string]error
	delay    time.Duration
}

// NewStaticFetcher creates a fetcher serving the given profiles.
func NewStaticFetcher(provider model.Provider, profiles map[string]*model.SourceProfile) *StaticFetcher {
	return &StaticFetcher{
		provider: provider,
		profiles: profiles,
		fail:     make(map[string]error),
	}
}

// FailWith makes future fetches for identity return err. A nil err clears
// a previously scripted failure.
func (f *StaticFetcher) FailWith(identity string, err error) {
	if err == nil {
		delete(f.fail, identity)
		return
	}
	f.fail[identity] = err
}

// SetDelay makes every fetch block for d before responding.
func (f *StaticFetcher) SetDelay(d time.Duration) { f.delay = d }

// Provider identifies which platform this fetcher serves.
func (f *StaticFetcher) Provider() model.Provider { return f.provider }

// Fetch returns the stored profile, a scripted error, or an empty profile
// for unknown identities.
func (f *StaticFetcher) Fetch(ctx context.Context, identity string) (*model.SourceProfile, error) {
	if f.delay > 0 {
		timer := time.NewTimer(f.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, &FetchError{Provider: f.provider, Kind: KindTimeout, Cause: ctx.Err()}
		case <-timer.C:
		}
	}
	if err, ok := f.fail[identity]; ok {
		return nil, err
	}
	if p, ok := f.profiles[identity]; ok {
		cp := *p
		cp.Provider = f.provider
		cp.Identity = identity
		if cp.FetchedAt.IsZero() {
			cp.FetchedAt = time.Now().UTC()
		}
		return &cp, nil
	}
	return &model.SourceProfile{
		Provider:  f.provider,
		Identity:  identity,
		FetchedAt: time.Now().UTC(),
	}, nil
}
