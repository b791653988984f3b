package seedroster

import "time"

// Config holds configuration for a roster seeding run
type Config struct {
	BaseURL       string        // Base URL of the service
	NumCandidates int           // Number of candidates to generate
	TopN          int           // Number of talent index entries to fetch
	Workers       int           // Number of concurrent workers
	Timeout       time.Duration // HTTP request timeout
	OutputFile    string        // Output file for the generated roster
	Seed          int64         // RNG seed; 0 picks a time-based seed
	SearchQuery   string        // Query to run once the roster is loaded
	DryRun        bool          // Write the roster to file without submitting
	Verbose       bool          // Enable verbose logging
}

// Stats holds seeding statistics
type Stats struct {
	CandidatesGenerated int
	CandidatesSubmitted int
	CandidatesCreated   int
	CandidatesDuplicate int
	CandidatesFailed    int
	SearchResults       int
	IndexEntries        int
	StartTime           time.Time
	EndTime             time.Time
	Duration            time.Duration
}

// indexEntry mirrors the talent index read shape.
type indexEntry struct {
	Rank        int     `json:"rank"`
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Overall     float64 `json:"overall"`
	Confidence  float64 `json:"confidence"`
}

// searchResponse is the slice of the ranked result this tool cares about.
type searchResponse struct {
	Candidates []struct {
		Rank        int     `json:"rank"`
		CandidateID string  `json:"candidate_id"`
		Name        string  `json:"name"`
		MatchScore  float64 `json:"match_score"`
	} `json:"candidates"`
	QualityScore float64 `json:"quality_score"`
}
