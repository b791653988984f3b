package snapshot

import (
	"context"
	"fmt"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/pkg/logger"
)

// badgeRule derives zero or one badge from the candidate's signals.
type badgeRule struct {
	name  string
	apply func(cand *model.Candidate, bundle *model.SignalBundle) *model.Badge
}

// riskRule derives zero or one risk signal.
type riskRule struct {
	name  string
	apply func(cand *model.Candidate, bundle *model.SignalBundle, score model.CompositeScore) *model.RiskSignal
}

var badgeRules = []badgeRule{
	{
		name: "prolific_contributor",
		apply: func(_ *model.Candidate, bundle *model.SignalBundle) *model.Badge {
			p, ok := bundle.Profile(model.ProviderCodeHost)
			if !ok || p.Metric("contributions_last_year") < 1000 {
				return nil
			}
			return &model.Badge{
				Name:   "Prolific Contributor",
				Detail: fmt.Sprintf("%.0f contributions in the last year", p.Metric("contributions_last_year")),
			}
		},
	},
	{
		name: "community_pillar",
		apply: func(_ *model.Candidate, bundle *model.SignalBundle) *model.Badge {
			if p, ok := bundle.Profile(model.ProviderQA); ok && p.Metric("reputation") >= 20000 {
				return &model.Badge{
					Name:   "Community Pillar",
					Detail: fmt.Sprintf("%.0f Q&A reputation", p.Metric("reputation")),
				}
			}
			if p, ok := bundle.Profile(model.ProviderForum); ok && p.Metric("solutions") >= 100 {
				return &model.Badge{
					Name:   "Community Pillar",
					Detail: fmt.Sprintf("%.0f accepted forum solutions", p.Metric("solutions")),
				}
			}
			return nil
		},
	},
	{
		name: "thought_leader",
		apply: func(_ *model.Candidate, bundle *model.SignalBundle) *model.Badge {
			p, ok := bundle.Profile(model.ProviderMicroblog)
			if !ok || p.Metric("followers") < 10000 {
				return nil
			}
			return &model.Badge{
				Name:   "Thought Leader",
				Detail: fmt.Sprintf("%.0f followers", p.Metric("followers")),
			}
		},
	},
	{
		name: "polyglot",
		apply: func(_ *model.Candidate, bundle *model.SignalBundle) *model.Badge {
			p, ok := bundle.Profile(model.ProviderCodeHost)
			if !ok || p.Metric("languages") < 8 {
				return nil
			}
			return &model.Badge{
				Name:   "Polyglot",
				Detail: fmt.Sprintf("active in %.0f languages", p.Metric("languages")),
			}
		},
	},
	{
		name: "well_connected",
		apply: func(_ *model.Candidate, bundle *model.SignalBundle) *model.Badge {
			p, ok := bundle.Profile(model.ProviderNetwork)
			if !ok || p.Metric("connections") < 2000 {
				return nil
			}
			return &model.Badge{
				Name:   "Well Connected",
				Detail: fmt.Sprintf("%.0f professional connections", p.Metric("connections")),
			}
		},
	},
}

var riskRules = []riskRule{
	{
		name: "job_switching",
		apply: func(cand *model.Candidate, _ *model.SignalBundle, _ model.CompositeScore) *model.RiskSignal {
			if cand.ExperienceYears < 4 || cand.AvgTenureYears <= 0 || cand.AvgTenureYears >= 1.5 {
				return nil
			}
			sev := model.SeverityMedium
			if cand.AvgTenureYears < 1.0 {
				sev = model.SeverityHigh
			}
			return &model.RiskSignal{
				Kind:           "frequent_job_switching",
				Severity:       sev,
				Detail:         fmt.Sprintf("average tenure %.1f years across %.0f years of experience", cand.AvgTenureYears, cand.ExperienceYears),
				Recommendation: "probe for retention drivers during screening",
			}
		},
	},
	{
		name: "low_engagement",
		apply: func(_ *model.Candidate, bundle *model.SignalBundle, score model.CompositeScore) *model.RiskSignal {
			if bundle.PresentCount() == 0 || score.CommunityEngagement >= 2.0 {
				return nil
			}
			return &model.RiskSignal{
				Kind:           "low_community_engagement",
				Severity:       model.SeverityLow,
				Detail:         fmt.Sprintf("community engagement score %.1f/10", score.CommunityEngagement),
				Recommendation: "engagement signals may lag actual ability; weigh direct evaluation higher",
			}
		},
	},
	{
		name: "narrow_skills",
		apply: func(cand *model.Candidate, _ *model.SignalBundle, _ model.CompositeScore) *model.RiskSignal {
			if len(cand.Skills) >= 3 {
				return nil
			}
			return &model.RiskSignal{
				Kind:           "narrow_skill_profile",
				Severity:       model.SeverityLow,
				Detail:         fmt.Sprintf("only %d listed skills", len(cand.Skills)),
				Recommendation: "verify breadth beyond the listed stack",
			}
		},
	},
	{
		name: "sparse_signal",
		apply: func(_ *model.Candidate, bundle *model.SignalBundle, score model.CompositeScore) *model.RiskSignal {
			if score.Confidence >= 0.5 {
				return nil
			}
			return &model.RiskSignal{
				Kind:           "sparse_signal",
				Severity:       model.SeverityMedium,
				Detail:         fmt.Sprintf("only %d providers reporting", bundle.PresentCount()),
				Recommendation: "treat derived scores as indicative, not conclusive",
			}
		},
	},
}

// collectBadges runs every badge rule, recovering per rule so one broken
// rule never takes the snapshot down.
func collectBadges(ctx context.Context, log logger.Logger, cand *model.Candidate, bundle *model.SignalBundle) []model.Badge {
	out := make([]model.Badge, 0, len(badgeRules))
	for _, rule := range badgeRules {
		b := func() (b *model.Badge) {
			defer func() {
				if r := recover(); r != nil {
					log.Error(ctx, "badge rule panicked",
						logger.String("rule", rule.name),
						logger.Any("panic", r),
					)
					b = nil
				}
			}()
			return rule.apply(cand, bundle)
		}()
		if b != nil {
			out = append(out, *b)
		}
	}
	return out
}

// collectRisks runs every risk rule with the same per-rule recovery.
func collectRisks(ctx context.Context, log logger.Logger, cand *model.Candidate, bundle *model.SignalBundle, score model.CompositeScore) []model.RiskSignal {
	out := make([]model.RiskSignal, 0, len(riskRules))
	for _, rule := range riskRules {
		rs := func() (rs *model.RiskSignal) {
			defer func() {
				if r := recover(); r != nil {
					log.Error(ctx, "risk rule panicked",
						logger.String("rule", rule.name),
						logger.Any("panic", r),
					)
					rs = nil
				}
			}()
			return rule.apply(cand, bundle, score)
		}()
		if rs != nil {
			out = append(out, *rs)
		}
	}
	return out
}
