package model

import "time"

// RadarCategory is one axis of the skill radar with supporting evidence.
type RadarCategory struct {
	Name     string   `json:"name"`
	Score    float64  `json:"score"`
	Max      float64  `json:"max"`
	Evidence []string `json:"evidence"`
}

// Badge is an achievement derived from provider signals.
type Badge struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// Severity grades risk signals and alerts.
type Severity string

// Severity levels.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// RiskSignal is one rule-derived caution about a candidate.
type RiskSignal struct {
	Kind           string   `json:"kind"`
	Severity       Severity `json:"severity"`
	Detail         string   `json:"detail"`
	Recommendation string   `json:"recommendation"`
}

// Snapshot is the cached, user-facing view of one candidate: narrative
// summary, radar, badges, risks, and the composite score it was derived
// from. Regenerated wholesale on expiry or explicit invalidation, never
// patched in place.
type Snapshot struct {
	CandidateID  string               `json:"candidate_id"`
	Summary      string               `json:"summary"`
	Radar        []RadarCategory      `json:"radar"`
	Badges       []Badge              `json:"badges"`
	Risks        []RiskSignal         `json:"risks"`
	Availability []AvailabilitySignal `json:"availability"`
	Score        CompositeScore       `json:"score"`
	GeneratedAt  time.Time            `json:"generated_at"`
	Confidence   float64              `json:"confidence"`
}
