package service

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/domain/sources"
	"github.com/talentscan/talentscan/internal/storage/memory"
)

func seedRoster(t *testing.T) *memory.CandidateStore {
	t.Helper()
	roster := memory.NewCandidateStore()
	ctx := context.Background()

	cands := []*model.Candidate{
		{
			ID:              "cand-1",
			Name:            "Ada",
			Location:        "london",
			ExperienceYears: 8,
			AvgTenureYears:  3,
			Skills:          []string{"go", "react", "machine learning"},
			Industries:      []string{"fintech"},
			Identities: map[model.Provider]string{
				model.ProviderCodeHost: "ada-dev",
				model.ProviderQA:       "ada_answers",
			},
		},
		{
			ID:              "cand-2",
			Name:            "Brin",
			Location:        "berlin",
			ExperienceYears: 3,
			AvgTenureYears:  1.5,
			Skills:          []string{"python"},
			Industries:      []string{"healthtech"},
			Identities: map[model.Provider]string{
				model.ProviderCodeHost: "brin-codes",
			},
		},
	}
	for _, c := range cands {
		if err := roster.Put(ctx, c); err != nil {
			t.Fatalf("seed roster: %v", err)
		}
	}
	return roster
}

func staticRegistry() sources.Registry {
	codehost := sources.NewStaticFetcher(model.ProviderCodeHost, map[string]*model.SourceProfile{
		"ada-dev": {
			SubScore: 9.0,
			Metrics:  map[string]float64{"contributions_last_year": 1500},
		},
		"brin-codes": {
			SubScore: 6.0,
			Metrics:  map[string]float64{"contributions_last_year": 200},
		},
	})
	qa := sources.NewStaticFetcher(model.ProviderQA, map[string]*model.SourceProfile{
		"ada_answers": {
			SubScore: 8.0,
			Metrics:  map[string]float64{"reputation": 30000},
		},
	})
	return sources.NewRegistry(codehost, qa)
}

func TestServiceSearch(t *testing.T) {
	Convey("Given a service over a two-candidate roster", t, func() {
		svc := New(seedRoster(t), WithRegistry(staticRegistry()))
		ctx := context.Background()

		Convey("When a skill query runs over the whole roster", func() {
			result, err := svc.Search(ctx, "senior go developer", nil)

			Convey("Then both candidates come back ranked", func() {
				So(err, ShouldBeNil)
				So(result.Candidates, ShouldHaveLength, 2)
				So(result.Candidates[0].CandidateID, ShouldEqual, "cand-1")
				So(result.Candidates[0].MatchScore, ShouldBeGreaterThan, result.Candidates[1].MatchScore)
				So(result.Interpretation.Requirements, ShouldNotBeEmpty)
			})

			Convey("Then the talent index reflects the fresh scores", func() {
				top, err := svc.TopTalent(ctx, 10)
				So(err, ShouldBeNil)
				So(top, ShouldHaveLength, 2)
				So(top[0].CandidateID, ShouldEqual, "cand-1")

				entry, err := svc.CandidateRank(ctx, "cand-2")
				So(err, ShouldBeNil)
				So(entry.Rank, ShouldEqual, 2)
			})
		})

		Convey("When the search names a candidate subset", func() {
			result, err := svc.Search(ctx, "go developer", []string{"cand-2"})

			Convey("Then only that subset is ranked", func() {
				So(err, ShouldBeNil)
				So(result.Candidates, ShouldHaveLength, 1)
				So(result.Candidates[0].CandidateID, ShouldEqual, "cand-2")
			})
		})

		Convey("When the search names an unknown candidate", func() {
			_, err := svc.Search(ctx, "go developer", []string{"cand-x"})

			Convey("Then the search fails fast", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestServiceSnapshots(t *testing.T) {
	Convey("Given a service", t, func() {
		svc := New(seedRoster(t), WithRegistry(staticRegistry()))
		ctx := context.Background()

		Convey("When a snapshot is fetched twice", func() {
			first, err := svc.GetSnapshot(ctx, "cand-1")
			So(err, ShouldBeNil)
			second, err := svc.GetSnapshot(ctx, "cand-1")
			So(err, ShouldBeNil)

			Convey("Then the cached snapshot is shared", func() {
				So(second, ShouldEqual, first)
				So(first.Summary, ShouldContainSubstring, "Ada")
			})
		})

		Convey("When a snapshot is refreshed", func() {
			first, err := svc.GetSnapshot(ctx, "cand-1")
			So(err, ShouldBeNil)
			refreshed, err := svc.RefreshSnapshot(ctx, "cand-1")
			So(err, ShouldBeNil)

			Convey("Then a new snapshot replaces the cached one", func() {
				So(refreshed, ShouldNotEqual, first)
				So(refreshed.CandidateID, ShouldEqual, "cand-1")
			})
		})
	})
}

func TestServiceWatchlist(t *testing.T) {
	Convey("Given a service", t, func() {
		svc := New(seedRoster(t), WithRegistry(staticRegistry()))
		ctx := context.Background()

		Convey("When known candidates are watched twice", func() {
			So(svc.Watch(ctx, "cand-1", "cand-2"), ShouldBeNil)
			So(svc.Watch(ctx, "cand-1"), ShouldBeNil)

			Convey("Then the watch list holds each once", func() {
				So(svc.Watchlist(), ShouldResemble, []string{"cand-1", "cand-2"})
			})
		})

		Convey("When an unknown candidate is watched", func() {
			err := svc.Watch(ctx, "cand-x")

			Convey("Then the whole call is rejected", func() {
				So(err, ShouldNotBeNil)
				So(svc.Watchlist(), ShouldBeEmpty)
			})
		})

		Convey("When a candidate is unwatched", func() {
			So(svc.Watch(ctx, "cand-1"), ShouldBeNil)
			svc.Unwatch(ctx, "cand-1")
			svc.Unwatch(ctx, "cand-1")

			Convey("Then the watch list is empty", func() {
				So(svc.Watchlist(), ShouldBeEmpty)
			})
		})
	})
}

func TestServiceAlertFlow(t *testing.T) {
	Convey("Given a started service with a watched candidate", t, func() {
		roster := seedRoster(t)
		profiles := map[string]*model.SourceProfile{
			"ada-dev": {SubScore: 5.0, Metrics: map[string]float64{"public_repos": 5}},
		}
		registry := sources.NewRegistry(sources.NewStaticFetcher(model.ProviderCodeHost, profiles))
		alertStore := memory.NewAlertStore()

		svc := New(roster,
			WithRegistry(registry),
			WithAlertStore(alertStore),
			WithChangeThresholds(1.5, 3),
		)
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer func() { _ = svc.Stop(ctx) }()

		alerts, cancel := svc.SubscribeAlerts("test", 8)
		defer cancel()

		So(svc.Watch(ctx, "cand-1"), ShouldBeNil)
		svc.PollNow(ctx)

		Convey("When the candidate's signals move materially", func() {
			p := *profiles["ada-dev"]
			p.SubScore = 9.0
			profiles["ada-dev"] = &p
			svc.PollNow(ctx)

			Convey("Then the subscriber receives one alert", func() {
				select {
				case alert := <-alerts:
					So(alert.CandidateID, ShouldEqual, "cand-1")
					So(alert.Changes, ShouldNotBeEmpty)
				case <-time.After(2 * time.Second):
					t.Fatal("no alert received")
				}
			})

			Convey("Then the alert is persisted for the candidate", func() {
				deadline := time.Now().Add(2 * time.Second)
				for {
					stored, err := alertStore.ListByCandidate(ctx, "cand-1")
					So(err, ShouldBeNil)
					if len(stored) > 0 || time.Now().After(deadline) {
						So(stored, ShouldHaveLength, 1)
						break
					}
					time.Sleep(10 * time.Millisecond)
				}
			})
		})
	})
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a service", t, func() {
		svc := New(seedRoster(t), WithRegistry(staticRegistry()))
		ctx := context.Background()

		Convey("When started twice", func() {
			So(svc.Start(ctx), ShouldBeNil)
			err := svc.Start(ctx)

			Convey("Then the second start is rejected", func() {
				So(err, ShouldEqual, ErrAlreadyStarted)
				So(svc.Stop(ctx), ShouldBeNil)
			})
		})

		Convey("When stopped before start", func() {
			err := svc.Stop(ctx)

			Convey("Then the stop is rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestServiceStats(t *testing.T) {
	Convey("Given a service with some activity", t, func() {
		svc := New(seedRoster(t), WithRegistry(staticRegistry()))
		ctx := context.Background()

		_, err := svc.GetSnapshot(ctx, "cand-1")
		So(err, ShouldBeNil)
		So(svc.Watch(ctx, "cand-1"), ShouldBeNil)

		Convey("When stats are read", func() {
			stats := svc.Stats(ctx)

			Convey("Then the counters reflect the state", func() {
				So(stats.RosterSize, ShouldEqual, 2)
				So(stats.WatchedCount, ShouldEqual, 1)
				So(stats.CachedCount, ShouldEqual, 1)
				So(stats.IndexedCount, ShouldEqual, 1)
				So(stats.PoolCapacity, ShouldBeGreaterThan, 0)
			})
		})
	})
}
