package memory

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/internal/storage"
)

func TestScoreStoreHistory(t *testing.T) {
	Convey("Given a score store with three observations", t, func() {
		ctx := context.Background()
		store := NewScoreStore()
		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		for i, overall := range []float64{6.0, 6.5, 7.2} {
			rec := &storage.ScoreRecord{
				CandidateID: "cand-1",
				Score:       model.CompositeScore{Overall: overall},
				ScoredAt:    base.Add(time.Duration(i) * time.Hour),
			}
			So(store.Append(ctx, rec), ShouldBeNil)
		}

		Convey("When the latest observation is read", func() {
			latest, err := store.Latest(ctx, "cand-1")

			Convey("Then the newest score comes back", func() {
				So(err, ShouldBeNil)
				So(latest.Score.Overall, ShouldEqual, 7.2)
			})
		})

		Convey("When history is read for a window", func() {
			hist, err := store.History(ctx, "cand-1", base, base.Add(time.Hour))

			Convey("Then only observations inside the window appear, oldest first", func() {
				So(err, ShouldBeNil)
				So(hist, ShouldHaveLength, 2)
				So(hist[0].Score.Overall, ShouldEqual, 6.0)
				So(hist[1].Score.Overall, ShouldEqual, 6.5)
			})
		})

		Convey("When an unknown candidate is read", func() {
			_, err := store.Latest(ctx, "cand-missing")

			Convey("Then ErrNotFound is returned", func() {
				So(err, ShouldEqual, storage.ErrNotFound)
			})
		})
	})
}

func TestScoreStoreOutOfOrderAppend(t *testing.T) {
	Convey("Given observations appended out of time order", t, func() {
		ctx := context.Background()
		store := NewScoreStore()
		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		So(store.Append(ctx, &storage.ScoreRecord{
			CandidateID: "cand-1",
			Score:       model.CompositeScore{Overall: 8.0},
			ScoredAt:    base.Add(2 * time.Hour),
		}), ShouldBeNil)
		So(store.Append(ctx, &storage.ScoreRecord{
			CandidateID: "cand-1",
			Score:       model.CompositeScore{Overall: 5.0},
			ScoredAt:    base,
		}), ShouldBeNil)

		Convey("When the latest observation is read", func() {
			latest, err := store.Latest(ctx, "cand-1")

			Convey("Then the newest by timestamp wins", func() {
				So(err, ShouldBeNil)
				So(latest.Score.Overall, ShouldEqual, 8.0)
			})
		})
	})
}
