package model

import "time"

// ChangeDetail describes one material difference between two polls.
type ChangeDetail struct {
	Kind     string   `json:"kind"`
	Provider Provider `json:"provider,omitempty"`
	Detail   string   `json:"detail"`
	Before   string   `json:"before,omitempty"`
	After    string   `json:"after,omitempty"`
}

// RiskAlert notifies subscribers that a monitored candidate's signals
// changed materially between polls. Immutable once emitted; resolution is
// an external alert-management concern.
type RiskAlert struct {
	ID          string         `json:"id"`
	CandidateID string         `json:"candidate_id"`
	Changes     []ChangeDetail `json:"changes"`
	Severity    Severity       `json:"severity"`
	DetectedAt  time.Time      `json:"detected_at"`
}
