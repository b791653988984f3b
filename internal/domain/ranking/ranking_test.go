package ranking_test

import (
	"strings"
	"testing"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/domain/query"
	"github.com/talentscan/talentscan/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func scored(id string, skills []string, tech float64, location string, years float64) model.ScoredCandidate {
	return model.ScoredCandidate{
		Candidate: &model.Candidate{
			ID:              id,
			Name:            "Candidate " + id,
			Skills:          skills,
			Location:        location,
			ExperienceYears: years,
		},
		Score: model.CompositeScore{
			Overall:             tech,
			TechnicalDepth:      tech,
			Influence:           tech / 2,
			CommunityEngagement: tech / 2,
			LearningVelocity:    tech,
			Confidence:          0.8,
		},
	}
}

func TestRank_SkillMatching(t *testing.T) {
	Convey("Given a React query and two candidates", t, func() {
		engine := ranking.NewEngine()
		interp := query.NewInterpreter().Interpret("senior React developer with ML experience and startup background")

		withReact := scored("a", []string{"react", "machine learning"}, 8, "berlin", 7)
		withoutReact := scored("b", nil, 8, "berlin", 7)

		Convey("When ranking", func() {
			result := engine.Rank([]model.ScoredCandidate{withoutReact, withReact}, interp)

			Convey("Then the skill-matched candidate ranks first with a higher score", func() {
				So(result.Candidates[0].CandidateID, ShouldEqual, "a")
				So(result.Candidates[0].MatchScore, ShouldBeGreaterThan, result.Candidates[1].MatchScore)
				So(result.Candidates[0].Rank, ShouldEqual, 1)
			})

			Convey("Then refinements never suggest what the query covered", func() {
				for _, r := range result.Refinements {
					So(strings.Contains(r, "skills"), ShouldBeFalse)
					So(strings.Contains(r, "seniority"), ShouldBeFalse)
				}
			})
		})
	})
}

func TestRank_Monotonicity(t *testing.T) {
	Convey("Given a candidate with React skills", t, func() {
		engine := ranking.NewEngine()
		interpreter := query.NewInterpreter()
		candidate := scored("a", []string{"react"}, 6, "london", 5)

		Convey("When adding a requirement the candidate matches", func() {
			without := engine.Rank([]model.ScoredCandidate{candidate}, interpreter.Interpret("developer"))
			with := engine.Rank([]model.ScoredCandidate{candidate}, interpreter.Interpret("react developer"))

			Convey("Then the match score can only rise", func() {
				So(with.Candidates[0].MatchScore, ShouldBeGreaterThanOrEqualTo, without.Candidates[0].MatchScore)
			})
		})

		Convey("When adding a requirement the candidate does not match", func() {
			without := engine.Rank([]model.ScoredCandidate{candidate}, interpreter.Interpret("developer"))
			with := engine.Rank([]model.ScoredCandidate{candidate}, interpreter.Interpret("rust developer"))

			Convey("Then the score never drops", func() {
				So(with.Candidates[0].MatchScore, ShouldBeGreaterThanOrEqualTo, without.Candidates[0].MatchScore)
			})
		})
	})
}

func TestRank_Determinism(t *testing.T) {
	Convey("Given candidates with identical scores", t, func() {
		engine := ranking.NewEngine()
		interp := query.NewInterpreter().Interpret("go engineer")

		a := scored("aaa", []string{"go"}, 5, "berlin", 4)
		b := scored("bbb", []string{"go"}, 5, "berlin", 4)

		Convey("When ranking in both input orders", func() {
			first := engine.Rank([]model.ScoredCandidate{b, a}, interp)
			second := engine.Rank([]model.ScoredCandidate{a, b}, interp)

			Convey("Then ties break by candidate id deterministically", func() {
				So(first.Candidates[0].CandidateID, ShouldEqual, "aaa")
				So(second.Candidates[0].CandidateID, ShouldEqual, "aaa")
				So(second.Candidates[1].CandidateID, ShouldEqual, "bbb")
			})
		})
	})
}

func TestRank_DiversityAndQuality(t *testing.T) {
	Convey("Given a mixed candidate set", t, func() {
		engine := ranking.NewEngine()
		interp := query.NewInterpreter().Interpret("python developer")

		candidates := []model.ScoredCandidate{
			scored("a", []string{"python"}, 7, "berlin", 1),
			scored("b", []string{"python"}, 6, "london", 4),
			scored("c", nil, 5, "berlin", 12),
		}

		Convey("When ranking", func() {
			result := engine.Rank(candidates, interp)

			Convey("Then histograms cover locations and experience buckets", func() {
				So(result.Diversity.LocationHistogram["berlin"], ShouldEqual, 2)
				So(result.Diversity.LocationHistogram["london"], ShouldEqual, 1)
				So(result.Diversity.ExperienceHistogram["0-2"], ShouldEqual, 1)
				So(result.Diversity.ExperienceHistogram["3-5"], ShouldEqual, 1)
				So(result.Diversity.ExperienceHistogram["10+"], ShouldEqual, 1)
			})

			Convey("Then quality and diversity are bounded", func() {
				So(result.QualityScore, ShouldBeBetweenOrEqual, 0, 10)
				So(result.Diversity.BackgroundDiversity, ShouldBeBetweenOrEqual, 0, 1)
			})
		})
	})
}

func TestRank_EmptyInputs(t *testing.T) {
	Convey("Given an empty candidate set", t, func() {
		engine := ranking.NewEngine()
		interp := query.NewInterpreter().Interpret("anything")

		Convey("When ranking", func() {
			result := engine.Rank(nil, interp)

			Convey("Then the result is valid and empty, never an error", func() {
				So(result.Candidates, ShouldBeEmpty)
				So(result.QualityScore, ShouldEqual, 0)
				So(len(result.Refinements), ShouldBeLessThanOrEqualTo, 3)
			})
		})
	})
}
