package model

import "time"

// SignalBundle is the per-candidate merged set of provider results for one
// aggregation pass. A bundle may be partial: providers that failed appear in
// Errors, providers without an identity appear in neither map. Downstream
// scoring degrades gracefully on missing providers instead of failing.
type SignalBundle struct {
	CandidateID string
	AssembledAt time.Time
	Profiles    map[Provider]*SourceProfile
	Errors      map[Provider]error
}

// NewSignalBundle creates an empty bundle stamped now.
func NewSignalBundle(candidateID string) *SignalBundle {
	return &SignalBundle{
		CandidateID: candidateID,
		AssembledAt: time.Now().UTC(),
		Profiles:    make(map[Provider]*SourceProfile),
		Errors:      make(map[Provider]error),
	}
}

// Present returns the providers that fetched successfully, in canonical order.
func (b *SignalBundle) Present() []Provider {
	out := make([]Provider, 0, len(b.Profiles))
	for _, p := range AllProviders() {
		if _, ok := b.Profiles[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// PresentCount returns the number of successfully fetched providers.
func (b *SignalBundle) PresentCount() int {
	return len(b.Profiles)
}

// MissingFraction returns the fraction of configured providers without a
// profile. configured <= 0 is treated as fully missing.
func (b *SignalBundle) MissingFraction(configured int) float64 {
	if configured <= 0 {
		return 1
	}
	missing := configured - len(b.Profiles)
	if missing < 0 {
		missing = 0
	}
	return float64(missing) / float64(configured)
}

// Profile returns the profile for a provider, if present.
func (b *SignalBundle) Profile(p Provider) (*SourceProfile, bool) {
	sp, ok := b.Profiles[p]
	return sp, ok
}
