package scoring_test

import (
	"testing"
	"time"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func bundleWith(subscores map[model.Provider]float64) *model.SignalBundle {
	b := model.NewSignalBundle("cand-1")
	for p, s := range subscores {
		b.Profiles[p] = &model.SourceProfile{
			Provider: p,
			SubScore: s,
			Metrics:  map[string]float64{"x": 1},
		}
	}
	return b
}

func TestComposer_Compose(t *testing.T) {
	Convey("Given a composer over all five providers", t, func() {
		composer := scoring.NewComposer(model.AllProviders())

		Convey("When composing a full bundle with uniform sub-scores", func() {
			bundle := bundleWith(map[model.Provider]float64{
				model.ProviderCodeHost:  6,
				model.ProviderQA:        6,
				model.ProviderNetwork:   6,
				model.ProviderMicroblog: 6,
				model.ProviderForum:     6,
			})
			score := composer.Compose(bundle)

			Convey("Then every dimension equals the uniform sub-score", func() {
				So(score.TechnicalDepth, ShouldAlmostEqual, 6, 1e-9)
				So(score.Influence, ShouldAlmostEqual, 6, 1e-9)
				So(score.CommunityEngagement, ShouldAlmostEqual, 6, 1e-9)
				So(score.LearningVelocity, ShouldAlmostEqual, 6, 1e-9)
				So(score.Overall, ShouldAlmostEqual, 6, 1e-9)
			})

			Convey("And confidence is full", func() {
				So(score.Confidence, ShouldEqual, 1)
			})
		})

		Convey("When a provider is missing it is excluded from the average", func() {
			full := bundleWith(map[model.Provider]float64{
				model.ProviderCodeHost: 8,
				model.ProviderQA:       4,
			})
			reduced := bundleWith(map[model.Provider]float64{
				model.ProviderCodeHost: 8,
			})

			fullScore := composer.Compose(full)
			reducedScore := composer.Compose(reduced)

			Convey("Then the remaining provider's contribution is unchanged", func() {
				// With only codehost present, technical depth is exactly
				// its sub-score; nothing drags the average toward zero.
				So(reducedScore.TechnicalDepth, ShouldAlmostEqual, 8, 1e-9)
				// With qa added, the weighted average moves between the two.
				So(fullScore.TechnicalDepth, ShouldBeLessThan, 8)
				So(fullScore.TechnicalDepth, ShouldBeGreaterThan, 4)
			})

			Convey("And reduced coverage lowers confidence, not scores", func() {
				So(reducedScore.Confidence, ShouldAlmostEqual, 0.2, 1e-9)
				So(fullScore.Confidence, ShouldAlmostEqual, 0.4, 1e-9)
			})
		})

		Convey("When composing an empty bundle", func() {
			bundle := model.NewSignalBundle("cand-1")
			score := composer.Compose(bundle)

			Convey("Then the result is a valid zero-confidence score", func() {
				So(score.Overall, ShouldEqual, 0)
				So(score.Confidence, ShouldEqual, 0)
			})

			Convey("And strict mode rejects it", func() {
				_, err := composer.ComposeStrict(bundle)
				So(err, ShouldEqual, scoring.ErrInsufficientSignal)
			})
		})

		Convey("When composing the same bundle twice", func() {
			bundle := bundleWith(map[model.Provider]float64{
				model.ProviderCodeHost: 7.3,
				model.ProviderForum:    2.1,
			})
			first := composer.Compose(bundle)
			second := composer.Compose(bundle)

			Convey("Then composition is deterministic", func() {
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestComposer_ExtractAvailability(t *testing.T) {
	Convey("Given a bundle with status activity", t, func() {
		composer := scoring.NewComposer(model.AllProviders())
		bundle := model.NewSignalBundle("cand-1")
		now := time.Now().UTC()
		bundle.Profiles[model.ProviderNetwork] = &model.SourceProfile{
			Provider: model.ProviderNetwork,
			Metrics:  map[string]float64{"new_connections_90d": 200},
			RecentActivity: []model.ActivityItem{
				{Kind: "status_update", Detail: "Open to new opportunities", OccurredAt: now},
				{Kind: "profile_update", Detail: "changed headline", OccurredAt: now},
			},
			FetchedAt: now,
		}

		Convey("When extracting availability signals", func() {
			signals := composer.ExtractAvailability(bundle)

			Convey("Then status, profile, and expansion signals are derived", func() {
				So(len(signals), ShouldEqual, 3)
				types := make(map[model.AvailabilityType]bool)
				for _, s := range signals {
					types[s.Type] = true
					So(s.Provider, ShouldEqual, model.ProviderNetwork)
					So(s.Confidence, ShouldBeBetweenOrEqual, 0, 1)
				}
				So(types[model.AvailabilityOpenToOpportunity], ShouldBeTrue)
				So(types[model.AvailabilityProfileUpdate], ShouldBeTrue)
				So(types[model.AvailabilityNetworkExpansion], ShouldBeTrue)
			})

			Convey("And extraction is deterministic", func() {
				again := composer.ExtractAvailability(bundle)
				So(again, ShouldResemble, signals)
			})
		})
	})
}
