package model

// ScoredCandidate pairs a candidate with its composed score and the bundle
// the score came from. Input to the ranking engine.
type ScoredCandidate struct {
	Candidate *Candidate
	Score     CompositeScore
	Bundle    *SignalBundle
}

// RankedCandidate is one row of a ranked search result.
type RankedCandidate struct {
	Rank        int            `json:"rank"`
	CandidateID string         `json:"candidate_id"`
	Name        string         `json:"name"`
	MatchScore  float64        `json:"match_score"`
	Score       CompositeScore `json:"score"`
	Highlights  []string       `json:"highlights,omitempty"`
}

// DiversityMetrics summarizes the spread of a result set.
type DiversityMetrics struct {
	LocationHistogram   map[string]int `json:"location_histogram"`
	ExperienceHistogram map[string]int `json:"experience_histogram"`
	BackgroundDiversity float64        `json:"background_diversity"`
}

// RankedResult is the full outcome of a search: ordered candidates plus
// quality/diversity metrics and deterministic refinement suggestions.
type RankedResult struct {
	Interpretation QueryInterpretation `json:"interpretation"`
	Candidates     []RankedCandidate   `json:"candidates"`
	QualityScore   float64             `json:"quality_score"`
	Diversity      DiversityMetrics    `json:"diversity"`
	Refinements    []string            `json:"refinements"`
}
