package ranking

import (
	"math"
	"strings"

	"github.com/talentscan/talentscan/internal/domain/model"
)

// diversity builds distribution histograms over location and experience
// plus a bounded background-diversity score for the candidate set.
func (e *Engine) diversity(candidates []model.ScoredCandidate) model.DiversityMetrics {
	metrics := model.DiversityMetrics{
		LocationHistogram:   make(map[string]int),
		ExperienceHistogram: make(map[string]int),
	}
	if len(candidates) == 0 {
		return metrics
	}

	industries := make(map[string]bool)
	for _, sc := range candidates {
		if sc.Candidate == nil {
			continue
		}
		loc := strings.ToLower(strings.TrimSpace(sc.Candidate.Location))
		if loc == "" {
			loc = "unknown"
		}
		metrics.LocationHistogram[loc]++
		metrics.ExperienceHistogram[experienceBucket(sc.Candidate.ExperienceYears)]++
		for _, ind := range sc.Candidate.Industries {
			industries[strings.ToLower(ind)] = true
		}
	}

	n := float64(len(candidates))
	locationSpread := float64(len(metrics.LocationHistogram)) / n
	bucketSpread := float64(len(metrics.ExperienceHistogram)) / 4
	industrySpread := math.Min(1, float64(len(industries))/n)

	metrics.BackgroundDiversity = math.Min(1,
		0.4*locationSpread+0.3*bucketSpread+0.3*industrySpread)

	return metrics
}
