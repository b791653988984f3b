// Package ranking orders scored candidates against an interpreted query
// and derives quality, diversity, and refinement metadata for the result.
//
// Ranking is deterministic: match scores are pure functions of the
// candidate, its composite score, and the interpretation, and ties are
// broken by candidate id.
package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/talentscan/talentscan/internal/domain/model"
)

// Match score composition constants. The base blend favors technical depth
// and learning velocity; requirement bonuses are strictly non-negative so
// adding a matching requirement can only raise a candidate's score.
const (
	maxScore = 10.0

	baseTechnicalWeight = 0.35
	baseInfluenceWeight = 0.20
	baseCommunityWeight = 0.20
	baseLearningWeight  = 0.25

	skillBonus      = 0.6
	experienceBonus = 0.5
	locationBonus   = 0.4
	industryBonus   = 0.4
	cultureBonus    = 0.3
)

// Engine ranks candidate sets.
type Engine struct{}

// NewEngine creates a ranking engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Rank orders the candidates by descending match score and fills in the
// result's quality, diversity, and refinement fields. An empty candidate
// set yields an empty, valid result.
func (e *Engine) Rank(candidates []model.ScoredCandidate, interp model.QueryInterpretation) *model.RankedResult {
	result := &model.RankedResult{
		Interpretation: interp,
		Candidates:     make([]model.RankedCandidate, 0, len(candidates)),
	}

	for _, sc := range candidates {
		if sc.Candidate == nil {
			continue
		}
		match, highlights := e.matchScore(sc, &interp)
		result.Candidates = append(result.Candidates, model.RankedCandidate{
			CandidateID: sc.Candidate.ID,
			Name:        sc.Candidate.Name,
			MatchScore:  match,
			Score:       sc.Score,
			Highlights:  highlights,
		})
	}

	sort.Slice(result.Candidates, func(i, j int) bool {
		a, b := result.Candidates[i], result.Candidates[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		return a.CandidateID < b.CandidateID
	})
	for i := range result.Candidates {
		result.Candidates[i].Rank = i + 1
	}

	result.Diversity = e.diversity(candidates)
	result.QualityScore = e.quality(result)
	result.Refinements = refinements(&interp)

	return result
}

// matchScore blends the composite score with requirement bonuses. Every
// bonus is >= 0: an unmatched requirement contributes nothing rather than
// penalizing, so partial-profile candidates degrade gracefully.
func (e *Engine) matchScore(sc model.ScoredCandidate, interp *model.QueryInterpretation) (float64, []string) {
	cand := sc.Candidate
	score := baseTechnicalWeight*sc.Score.TechnicalDepth +
		baseInfluenceWeight*sc.Score.Influence +
		baseCommunityWeight*sc.Score.CommunityEngagement +
		baseLearningWeight*sc.Score.LearningVelocity

	var highlights []string
	for _, req := range interp.Requirements {
		switch req.Category {
		case model.CategorySkills:
			if containsFold(cand.Skills, req.Value) {
				// Skill matches amplify technical depth: a strong
				// code/Q&A signal is worth more when it is in the
				// requested stack.
				score += skillBonus * req.Importance * (0.5 + sc.Score.TechnicalDepth/(2*maxScore))
				highlights = append(highlights, "skill: "+req.Value)
			}
		case model.CategoryExperience:
			if seniorityMatches(req.Value, cand.ExperienceYears) {
				score += experienceBonus * req.Importance
				highlights = append(highlights, "experience: "+req.Value)
			}
		case model.CategoryLocation:
			if locationMatches(req.Value, cand.Location) {
				score += locationBonus * req.Importance
				highlights = append(highlights, "location: "+req.Value)
			}
		case model.CategoryIndustry:
			if containsFold(cand.Industries, req.Value) {
				score += industryBonus * req.Importance
				highlights = append(highlights, "industry: "+req.Value)
			}
		case model.CategoryCulture:
			if containsFold(cand.CultureTraits, req.Value) {
				score += cultureBonus * req.Importance
				highlights = append(highlights, "culture: "+req.Value)
			}
		}
	}

	return clamp(score), highlights
}

// quality combines mean match score with a diversity bonus, bounded to
// [0,10]. A degraded search (no signals anywhere) yields a low but valid
// quality score instead of an error.
func (e *Engine) quality(result *model.RankedResult) float64 {
	if len(result.Candidates) == 0 {
		return 0
	}
	var sum float64
	for _, c := range result.Candidates {
		sum += c.MatchScore
	}
	mean := sum / float64(len(result.Candidates))
	return clamp(0.8*mean + 2.0*result.Diversity.BackgroundDiversity)
}

// seniorityBands maps canonical seniority values to experience-year bounds.
var seniorityBands = map[string]struct{ min, max float64 }{
	"intern":    {0, 1},
	"entry":     {0, 1.5},
	"junior":    {0, 3},
	"mid":       {3, 6},
	"senior":    {6, math.MaxFloat64},
	"lead":      {7, math.MaxFloat64},
	"staff":     {8, math.MaxFloat64},
	"principal": {10, math.MaxFloat64},
}

func seniorityMatches(level string, years float64) bool {
	band, ok := seniorityBands[level]
	if !ok {
		return false
	}
	return years >= band.min && years <= band.max
}

func locationMatches(want, have string) bool {
	have = strings.ToLower(strings.TrimSpace(have))
	want = strings.ToLower(strings.TrimSpace(want))
	if want == "" || have == "" {
		return false
	}
	return have == want || strings.Contains(have, want)
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(strings.TrimSpace(s), needle) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(maxScore, v))
}

// experienceBucket buckets years for the diversity histogram.
func experienceBucket(years float64) string {
	switch {
	case years <= 2:
		return "0-2"
	case years <= 5:
		return "3-5"
	case years <= 10:
		return "6-10"
	default:
		return "10+"
	}
}
