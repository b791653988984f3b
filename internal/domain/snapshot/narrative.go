package snapshot

import (
	"fmt"
	"strings"

	"github.com/talentscan/talentscan/internal/domain/model"
)

// buildRadar projects the composite dimensions onto radar axes with the
// providers that contributed as evidence.
func buildRadar(bundle *model.SignalBundle, score model.CompositeScore) []model.RadarCategory {
	axes := []struct {
		name      string
		value     float64
		providers []model.Provider
	}{
		{"Technical Depth", score.TechnicalDepth, []model.Provider{model.ProviderCodeHost, model.ProviderQA}},
		{"Influence", score.Influence, []model.Provider{model.ProviderMicroblog, model.ProviderNetwork}},
		{"Community Engagement", score.CommunityEngagement, []model.Provider{model.ProviderForum, model.ProviderQA}},
		{"Learning Velocity", score.LearningVelocity, []model.Provider{model.ProviderCodeHost, model.ProviderMicroblog}},
	}

	out := make([]model.RadarCategory, 0, len(axes))
	for _, ax := range axes {
		var evidence []string
		for _, p := range ax.providers {
			if prof, ok := bundle.Profile(p); ok {
				evidence = append(evidence, fmt.Sprintf("%s sub-score %.1f", p, prof.SubScore))
			}
		}
		out = append(out, model.RadarCategory{
			Name:     ax.name,
			Score:    ax.value,
			Max:      10,
			Evidence: evidence,
		})
	}
	return out
}

// buildSummary renders a deterministic narrative from the derived signals.
func buildSummary(cand *model.Candidate, bundle *model.SignalBundle, score model.CompositeScore, risks []model.RiskSignal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s scores %.1f/10 overall", cand.Name, score.Overall)
	switch {
	case score.Confidence >= 0.8:
		b.WriteString(" with strong signal coverage")
	case score.Confidence >= 0.5:
		b.WriteString(" with partial signal coverage")
	default:
		b.WriteString(" with sparse signal coverage")
	}
	fmt.Fprintf(&b, " (%d of %d providers reporting).", bundle.PresentCount(), configuredFromConfidence(bundle, score))

	if top := strongestDimension(score); top != "" {
		fmt.Fprintf(&b, " Strongest dimension: %s.", top)
	}
	if len(cand.Skills) > 0 {
		fmt.Fprintf(&b, " Listed skills include %s.", joinNatural(cand.Skills, 3))
	}
	if len(risks) > 0 {
		fmt.Fprintf(&b, " %d risk signal(s) flagged.", len(risks))
	}

	return b.String()
}

// configuredFromConfidence recovers the configured provider count from the
// score's confidence ratio, falling back to the present count.
func configuredFromConfidence(bundle *model.SignalBundle, score model.CompositeScore) int {
	if score.Confidence <= 0 {
		return len(model.AllProviders())
	}
	n := float64(bundle.PresentCount()) / score.Confidence
	return int(n + 0.5)
}

func strongestDimension(score model.CompositeScore) string {
	dims := []struct {
		name  string
		value float64
	}{
		{"technical depth", score.TechnicalDepth},
		{"influence", score.Influence},
		{"community engagement", score.CommunityEngagement},
		{"learning velocity", score.LearningVelocity},
	}
	best, bestVal := "", 0.0
	for _, d := range dims {
		if d.value > bestVal {
			best, bestVal = d.name, d.value
		}
	}
	return best
}

func joinNatural(items []string, max int) string {
	if len(items) > max {
		items = items[:max]
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
