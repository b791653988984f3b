package scoring

import "github.com/talentscan/talentscan/internal/domain/model"

// Dimension names one axis of the composite score.
type Dimension string

// Scoring dimensions.
const (
	DimTechnicalDepth      Dimension = "technical_depth"
	DimInfluence           Dimension = "influence"
	DimCommunityEngagement Dimension = "community_engagement"
	DimLearningVelocity    Dimension = "learning_velocity"
)

// Dimensions returns all dimensions in canonical order.
func Dimensions() []Dimension {
	return []Dimension{
		DimTechnicalDepth,
		DimInfluence,
		DimCommunityEngagement,
		DimLearningVelocity,
	}
}

// WeightTable maps each dimension to per-provider weights. A provider
// missing from a row contributes to neither numerator nor denominator of
// that dimension's weighted average.
type WeightTable map[Dimension]map[model.Provider]float64

// DefaultWeightTable returns the built-in provider weights per dimension.
// Code hosting anchors technical depth and learning velocity, microblogging
// anchors influence, forums and Q&A anchor community engagement.
func DefaultWeightTable() WeightTable {
	return WeightTable{
		DimTechnicalDepth: {
			model.ProviderCodeHost:  1.0,
			model.ProviderQA:        0.8,
			model.ProviderForum:     0.4,
			model.ProviderNetwork:   0.3,
			model.ProviderMicroblog: 0.1,
		},
		DimInfluence: {
			model.ProviderMicroblog: 1.0,
			model.ProviderNetwork:   0.8,
			model.ProviderCodeHost:  0.5,
			model.ProviderQA:        0.4,
			model.ProviderForum:     0.3,
		},
		DimCommunityEngagement: {
			model.ProviderForum:     1.0,
			model.ProviderQA:        0.9,
			model.ProviderMicroblog: 0.6,
			model.ProviderCodeHost:  0.5,
			model.ProviderNetwork:   0.3,
		},
		DimLearningVelocity: {
			model.ProviderCodeHost:  0.9,
			model.ProviderQA:        0.6,
			model.ProviderForum:     0.5,
			model.ProviderNetwork:   0.4,
			model.ProviderMicroblog: 0.2,
		},
	}
}

// clone deep-copies the table so option callers cannot mutate shared state.
func (t WeightTable) clone() WeightTable {
	out := make(WeightTable, len(t))
	for dim, row := range t {
		cp := make(map[model.Provider]float64, len(row))
		for p, w := range row {
			cp[p] = w
		}
		out[dim] = cp
	}
	return out
}
