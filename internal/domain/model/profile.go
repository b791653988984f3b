package model

import "time"

// ActivityItem is one recent activity entry observed on a provider.
type ActivityItem struct {
	Kind       string    `json:"kind"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurred_at"`
}

// SourceProfile holds the raw signals fetched from one provider for one
// identity. It is immutable once fetched and replaced wholesale on re-fetch.
type SourceProfile struct {
	Provider       Provider           `json:"provider"`
	Identity       string             `json:"identity"`
	SubScore       float64            `json:"sub_score"` // provider-local derived score in [0,10]
	Metrics        map[string]float64 `json:"metrics"`
	RecentActivity []ActivityItem     `json:"recent_activity"`
	FetchedAt      time.Time          `json:"fetched_at"`
}

// Metric returns a named metric or zero when absent.
func (p *SourceProfile) Metric(name string) float64 {
	if p == nil || p.Metrics == nil {
		return 0
	}
	return p.Metrics[name]
}

// Empty reports whether the provider returned no data for the identity.
// An empty profile is a valid fetch result, not an error.
func (p *SourceProfile) Empty() bool {
	return p == nil || (len(p.Metrics) == 0 && len(p.RecentActivity) == 0)
}
