// Package scoring composes normalized candidate scores from signal bundles.
//
// Composition is deterministic and provider-availability aware: each
// dimension is a weighted average over the providers actually present in
// the bundle, so a candidate is never penalized for simply lacking a
// profile on one platform. Reduced coverage shows up as lower confidence,
// not lower scores.
package scoring

import (
	"math"
	"strings"

	"github.com/talentscan/talentscan/internal/domain/model"
)

// Score bounds.
const (
	MaxScore = 10.0
)

// Composer turns signal bundles into composite scores.
type Composer struct {
	weights    WeightTable
	configured []model.Provider
}

// NewComposer creates a Composer for the configured provider set.
func NewComposer(configured []model.Provider, opts ...Option) *Composer {
	c := &Composer{
		weights:    DefaultWeightTable(),
		configured: configured,
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.configured) == 0 {
		c.configured = model.AllProviders()
	}
	return c
}

// Compose derives the composite score from a bundle. An all-missing bundle
// yields a zero score with zero confidence; it is a valid low-confidence
// result, not an error.
func (c *Composer) Compose(bundle *model.SignalBundle) model.CompositeScore {
	score, _ := c.compose(bundle)
	return score
}

// ComposeStrict behaves like Compose but returns ErrInsufficientSignal when
// zero providers succeeded. For callers that explicitly require a non-empty
// signal basis.
func (c *Composer) ComposeStrict(bundle *model.SignalBundle) (model.CompositeScore, error) {
	score, present := c.compose(bundle)
	if present == 0 {
		return model.CompositeScore{}, ErrInsufficientSignal
	}
	return score, nil
}

func (c *Composer) compose(bundle *model.SignalBundle) (model.CompositeScore, int) {
	var score model.CompositeScore
	if bundle == nil {
		return score, 0
	}

	dims := make(map[Dimension]float64, 4)
	for _, dim := range Dimensions() {
		row := c.weights[dim]
		var sum, weightSum float64
		for p, profile := range bundle.Profiles {
			w, ok := row[p]
			if !ok {
				continue
			}
			sum += profile.SubScore * w
			weightSum += w
		}
		if weightSum > 0 {
			dims[dim] = clamp(sum / weightSum)
		}
	}

	score.TechnicalDepth = dims[DimTechnicalDepth]
	score.Influence = dims[DimInfluence]
	score.CommunityEngagement = dims[DimCommunityEngagement]
	score.LearningVelocity = dims[DimLearningVelocity]
	score.Overall = clamp((score.TechnicalDepth + score.Influence +
		score.CommunityEngagement + score.LearningVelocity) / 4)

	present := bundle.PresentCount()
	if n := len(c.configured); n > 0 {
		score.Confidence = float64(present) / float64(n)
	}

	return score, present
}

// availabilityRule maps a status phrase to a signal type and confidence.
type availabilityRule struct {
	phrase     string
	signal     model.AvailabilityType
	confidence float64
}

// Rules are ordered: the first matching phrase per activity item wins.
var availabilityRules = []availabilityRule{
	{"open to", model.AvailabilityOpenToOpportunity, 0.9},
	{"looking for", model.AvailabilityJobSearchActivity, 0.8},
	{"updated skills", model.AvailabilitySkillUpdates, 0.6},
	{"side project", model.AvailabilitySideProjectFocus, 0.5},
}

// networkExpansionThreshold is the 90-day new-connection count treated as a
// deliberate network push rather than organic growth.
const networkExpansionThreshold = 150

// ExtractAvailability derives availability signals from a bundle's recent
// activity. Deterministic: providers are scanned in canonical order.
func (c *Composer) ExtractAvailability(bundle *model.SignalBundle) []model.AvailabilitySignal {
	if bundle == nil {
		return nil
	}

	var out []model.AvailabilitySignal
	for _, p := range model.AllProviders() {
		profile, ok := bundle.Profile(p)
		if !ok {
			continue
		}
		for _, item := range profile.RecentActivity {
			detail := strings.ToLower(item.Detail)
			if item.Kind == "profile_update" {
				out = append(out, model.AvailabilitySignal{
					Type:       model.AvailabilityProfileUpdate,
					Confidence: 0.4,
					Provider:   p,
					DetectedAt: item.OccurredAt,
					Detail:     item.Detail,
				})
				continue
			}
			for _, rule := range availabilityRules {
				if strings.Contains(detail, rule.phrase) {
					out = append(out, model.AvailabilitySignal{
						Type:       rule.signal,
						Confidence: rule.confidence,
						Provider:   p,
						DetectedAt: item.OccurredAt,
						Detail:     item.Detail,
					})
					break
				}
			}
		}
		if profile.Metric("new_connections_90d") >= networkExpansionThreshold {
			out = append(out, model.AvailabilitySignal{
				Type:       model.AvailabilityNetworkExpansion,
				Confidence: 0.5,
				Provider:   p,
				DetectedAt: profile.FetchedAt,
				Detail:     "rapid connection growth over the last 90 days",
			})
		}
	}
	return out
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(MaxScore, v))
}
