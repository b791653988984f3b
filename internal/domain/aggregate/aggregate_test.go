package aggregate_test

import (
	"context"
	"testing"
	"time"

	"github.com/talentscan/talentscan/internal/domain/aggregate"
	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/domain/sources"
	. "github.com/smartystreets/goconvey/convey"
)

func fullIdentitySet() map[model.Provider]string {
	ids := make(map[model.Provider]string)
	for _, p := range model.AllProviders() {
		ids[p] = "jane"
	}
	return ids
}

func staticRegistry() (sources.Registry, map[model.Provider]*sources.StaticFetcher) {
	fetchers := make(map[model.Provider]*sources.StaticFetcher)
	list := make([]sources.Fetcher, 0, len(model.AllProviders()))
	for _, p := range model.AllProviders() {
		f := sources.NewStaticFetcher(p, map[string]*model.SourceProfile{
			"jane": {SubScore: 6, Metrics: map[string]float64{"contributions_last_year": 400}},
		})
		fetchers[p] = f
		list = append(list, f)
	}
	return sources.NewRegistry(list...), fetchers
}

func TestAggregate_AllProviders(t *testing.T) {
	Convey("Given an aggregator over five static fetchers", t, func() {
		reg, _ := staticRegistry()
		agg := aggregate.New(reg)

		candidate := &model.Candidate{ID: "cand-1", Identities: fullIdentitySet()}

		Convey("When aggregating a fully-identified candidate", func() {
			bundle, err := agg.Aggregate(context.Background(), candidate)

			Convey("Then every provider is present and none errored", func() {
				So(err, ShouldBeNil)
				So(bundle.CandidateID, ShouldEqual, "cand-1")
				So(bundle.PresentCount(), ShouldEqual, 5)
				So(bundle.Errors, ShouldBeEmpty)
				So(bundle.AssembledAt.IsZero(), ShouldBeFalse)
			})
		})

		Convey("When the candidate only has two identities", func() {
			candidate.Identities = map[model.Provider]string{
				model.ProviderCodeHost: "jane",
				model.ProviderForum:    "jane",
			}
			bundle, err := agg.Aggregate(context.Background(), candidate)

			Convey("Then only those providers are fetched", func() {
				So(err, ShouldBeNil)
				So(bundle.PresentCount(), ShouldEqual, 2)
				So(bundle.Present(), ShouldResemble, []model.Provider{model.ProviderCodeHost, model.ProviderForum})
			})
		})
	})
}

func TestAggregate_PartialFailure(t *testing.T) {
	Convey("Given one failing fetcher out of five", t, func() {
		reg, fetchers := staticRegistry()
		fetchers[model.ProviderQA].FailWith("jane", &sources.FetchError{
			Provider: model.ProviderQA,
			Kind:     sources.KindMalformed,
		})
		agg := aggregate.New(reg)
		candidate := &model.Candidate{ID: "cand-2", Identities: fullIdentitySet()}

		Convey("When aggregating", func() {
			bundle, err := agg.Aggregate(context.Background(), candidate)

			Convey("Then the bundle keeps the other four profiles", func() {
				So(err, ShouldBeNil)
				So(bundle.PresentCount(), ShouldEqual, 4)
				So(bundle.Errors, ShouldContainKey, model.ProviderQA)
				_, present := bundle.Profile(model.ProviderQA)
				So(present, ShouldBeFalse)
			})
		})
	})
}

func TestAggregate_AllFailed(t *testing.T) {
	Convey("Given every fetcher failing", t, func() {
		reg, fetchers := staticRegistry()
		for p, f := range fetchers {
			f.FailWith("jane", &sources.FetchError{Provider: p, Kind: sources.KindNotFound})
		}
		agg := aggregate.New(reg)
		candidate := &model.Candidate{ID: "cand-3", Identities: fullIdentitySet()}

		Convey("When aggregating", func() {
			bundle, err := agg.Aggregate(context.Background(), candidate)

			Convey("Then an all-failed bundle is still a valid result", func() {
				So(err, ShouldBeNil)
				So(bundle.PresentCount(), ShouldEqual, 0)
				So(len(bundle.Errors), ShouldEqual, 5)
				So(bundle.MissingFraction(5), ShouldEqual, 1)
			})
		})
	})
}

func TestAggregate_FetchTimeout(t *testing.T) {
	Convey("Given a slow fetcher and a short per-fetch timeout", t, func() {
		reg, fetchers := staticRegistry()
		fetchers[model.ProviderMicroblog].SetDelay(200 * time.Millisecond)
		agg := aggregate.New(reg, aggregate.WithFetchTimeout(20*time.Millisecond))
		candidate := &model.Candidate{ID: "cand-4", Identities: fullIdentitySet()}

		Convey("When aggregating", func() {
			bundle, err := agg.Aggregate(context.Background(), candidate)

			Convey("Then the slow provider times out and the rest survive", func() {
				So(err, ShouldBeNil)
				So(bundle.PresentCount(), ShouldEqual, 4)
				So(sources.IsTimeout(bundle.Errors[model.ProviderMicroblog]), ShouldBeTrue)
			})
		})
	})
}

func TestAggregate_Validation(t *testing.T) {
	Convey("Given an aggregator", t, func() {
		reg, _ := staticRegistry()
		agg := aggregate.New(reg)

		Convey("When aggregating a nil candidate", func() {
			_, err := agg.Aggregate(context.Background(), nil)
			So(err, ShouldEqual, aggregate.ErrNoCandidate)
		})

		Convey("When aggregating a candidate without an id", func() {
			_, err := agg.Aggregate(context.Background(), &model.Candidate{})
			So(err, ShouldEqual, aggregate.ErrNoCandidate)
		})
	})
}
