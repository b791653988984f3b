package model

import "time"

// CompositeScore captures the normalized derived metrics for one candidate.
// Every dimension is bounded to [0,10]. Confidence reflects how much of the
// configured provider set actually contributed.
type CompositeScore struct {
	Overall             float64 `json:"overall"`
	TechnicalDepth      float64 `json:"technical_depth"`
	Influence           float64 `json:"influence"`
	CommunityEngagement float64 `json:"community_engagement"`
	LearningVelocity    float64 `json:"learning_velocity"`
	Confidence          float64 `json:"confidence"`
}

// AvailabilityType classifies an availability signal.
type AvailabilityType string

// Availability signal types.
const (
	AvailabilityProfileUpdate     AvailabilityType = "profile_update"
	AvailabilityJobSearchActivity AvailabilityType = "job_search_activity"
	AvailabilityNetworkExpansion  AvailabilityType = "network_expansion"
	AvailabilitySkillUpdates      AvailabilityType = "skill_updates"
	AvailabilitySideProjectFocus  AvailabilityType = "side_project_focus"
	AvailabilityOpenToOpportunity AvailabilityType = "open_to_opportunities"
)

// AvailabilitySignal is an append-only observation that a candidate may be
// open to a move. Never mutated after creation; pruned only by age.
type AvailabilitySignal struct {
	Type       AvailabilityType `json:"type"`
	Confidence float64          `json:"confidence"`
	Provider   Provider         `json:"provider"`
	DetectedAt time.Time        `json:"detected_at"`
	Detail     string           `json:"detail"`
}
