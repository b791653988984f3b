package sources_test

import (
	"context"
	"testing"
	"time"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/domain/sources"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSyntheticFetcher_Fetch(t *testing.T) {
	Convey("Given a synthetic code-hosting fetcher", t, func() {
		fetcher := sources.NewSyntheticFetcher(
			model.ProviderCodeHost,
			sources.WithLatencyRange(time.Millisecond, 2*time.Millisecond),
		)

		Convey("When fetching the same identity twice", func() {
			first, err1 := fetcher.Fetch(context.Background(), "octocat")
			second, err2 := fetcher.Fetch(context.Background(), "octocat")

			Convey("Then both fetches succeed with identical signals", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first.Provider, ShouldEqual, model.ProviderCodeHost)
				So(second.Metrics, ShouldResemble, first.Metrics)
				So(second.SubScore, ShouldEqual, first.SubScore)
			})

			Convey("And the sub-score is bounded", func() {
				So(first.SubScore, ShouldBeGreaterThanOrEqualTo, 0)
				So(first.SubScore, ShouldBeLessThanOrEqualTo, 10)
			})
		})

		Convey("When the context deadline already passed", func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
			defer cancel()
			time.Sleep(time.Millisecond)

			_, err := fetcher.Fetch(ctx, "octocat")

			Convey("Then the failure is a timeout fetch error", func() {
				So(err, ShouldNotBeNil)
				So(sources.IsTimeout(err), ShouldBeTrue)
			})
		})
	})
}

func TestSyntheticFetcher_RateLimit(t *testing.T) {
	Convey("Given a fetcher with a burst of two requests", t, func() {
		fetcher := sources.NewSyntheticFetcher(
			model.ProviderQA,
			sources.WithLatencyRange(time.Millisecond, 2*time.Millisecond),
			sources.WithRateLimit(2, time.Hour),
		)

		Convey("When fetching three times in a row", func() {
			_, err1 := fetcher.Fetch(context.Background(), "a")
			_, err2 := fetcher.Fetch(context.Background(), "b")
			_, err3 := fetcher.Fetch(context.Background(), "c")

			Convey("Then the third fetch is rejected as rate limited", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(err3, ShouldNotBeNil)
				So(sources.IsRateLimited(err3), ShouldBeTrue)
			})

			Convey("And the error carries the provider", func() {
				fe, ok := sources.AsFetchError(err3)
				So(ok, ShouldBeTrue)
				So(fe.Provider, ShouldEqual, model.ProviderQA)
				So(fe.Kind, ShouldEqual, sources.KindRateLimited)
			})
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given the default registry", t, func() {
		reg := sources.NewDefaultRegistry(
			sources.WithLatencyRange(time.Millisecond, 2*time.Millisecond),
		)

		Convey("Then every known provider has a fetcher", func() {
			So(len(reg), ShouldEqual, len(model.AllProviders()))
			So(reg.Providers(), ShouldResemble, model.AllProviders())
		})
	})
}

func TestStaticFetcher(t *testing.T) {
	Convey("Given a static fetcher with one stored profile", t, func() {
		fetcher := sources.NewStaticFetcher(model.ProviderForum, map[string]*model.SourceProfile{
			"known": {
				SubScore: 7.5,
				Metrics:  map[string]float64{"posts": 120},
			},
		})

		Convey("When fetching the stored identity", func() {
			p, err := fetcher.Fetch(context.Background(), "known")
			So(err, ShouldBeNil)
			So(p.SubScore, ShouldEqual, 7.5)
			So(p.Empty(), ShouldBeFalse)
		})

		Convey("When fetching an unknown identity", func() {
			p, err := fetcher.Fetch(context.Background(), "nobody")

			Convey("Then the result is an empty profile, not an error", func() {
				So(err, ShouldBeNil)
				So(p.Empty(), ShouldBeTrue)
			})
		})

		Convey("When a scripted failure is registered", func() {
			wantErr := &sources.FetchError{Provider: model.ProviderForum, Kind: sources.KindMalformed}
			fetcher.FailWith("broken", wantErr)

			_, err := fetcher.Fetch(context.Background(), "broken")
			So(err, ShouldEqual, wantErr)
		})
	})
}
