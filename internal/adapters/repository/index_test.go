package repository

import (
	"context"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIndexStoreUpsertAndRank(t *testing.T) {
	Convey("Given an index with three candidates", t, func() {
		ctx := context.Background()
		idx := NewIndexStore()

		So(idx.Upsert(ctx, "cand-a", "Ada", 9.1, 0.8), ShouldBeNil)
		So(idx.Upsert(ctx, "cand-b", "Brin", 7.4, 1.0), ShouldBeNil)
		So(idx.Upsert(ctx, "cand-c", "Cox", 8.2, 0.6), ShouldBeNil)

		Convey("When ranks are read", func() {
			a, err := idx.Rank(ctx, "cand-a")
			So(err, ShouldBeNil)
			c, err := idx.Rank(ctx, "cand-c")
			So(err, ShouldBeNil)
			b, err := idx.Rank(ctx, "cand-b")
			So(err, ShouldBeNil)

			Convey("Then ordering follows overall score descending", func() {
				So(a.Rank, ShouldEqual, 1)
				So(c.Rank, ShouldEqual, 2)
				So(b.Rank, ShouldEqual, 3)
			})
		})

		Convey("When a candidate's score is updated", func() {
			So(idx.Upsert(ctx, "cand-b", "Brin", 9.9, 1.0), ShouldBeNil)

			Convey("Then its rank reflects the new score", func() {
				b, err := idx.Rank(ctx, "cand-b")
				So(err, ShouldBeNil)
				So(b.Rank, ShouldEqual, 1)
				So(idx.Count(ctx), ShouldEqual, 3)
			})
		})

		Convey("When an unknown candidate is requested", func() {
			_, err := idx.Rank(ctx, "cand-missing")

			Convey("Then ErrNotFound is returned", func() {
				So(err, ShouldEqual, ErrNotFound)
			})
		})
	})
}

func TestIndexStoreTopN(t *testing.T) {
	Convey("Given an index with ten candidates", t, func() {
		ctx := context.Background()
		idx := NewIndexStore(WithShardCount(4))

		for i := 0; i < 10; i++ {
			id := fmt.Sprintf("cand-%02d", i)
			So(idx.Upsert(ctx, id, id, float64(i), 1.0), ShouldBeNil)
		}

		Convey("When the top three are requested", func() {
			top, err := idx.TopN(ctx, 3)
			So(err, ShouldBeNil)

			Convey("Then the highest scores come back in rank order", func() {
				So(top, ShouldHaveLength, 3)
				So(top[0].CandidateID, ShouldEqual, "cand-09")
				So(top[1].CandidateID, ShouldEqual, "cand-08")
				So(top[2].CandidateID, ShouldEqual, "cand-07")
				So(top[0].Rank, ShouldEqual, 1)
			})
		})

		Convey("When more entries are requested than exist", func() {
			top, err := idx.TopN(ctx, 50)
			So(err, ShouldBeNil)

			Convey("Then the whole index is returned", func() {
				So(top, ShouldHaveLength, 10)
			})
		})

		Convey("When zero entries are requested", func() {
			top, err := idx.TopN(ctx, 0)

			Convey("Then nothing is returned", func() {
				So(err, ShouldBeNil)
				So(top, ShouldBeEmpty)
			})
		})
	})
}

func TestIndexStoreTieBreak(t *testing.T) {
	Convey("Given two candidates with identical scores", t, func() {
		ctx := context.Background()
		idx := NewIndexStore()

		So(idx.Upsert(ctx, "cand-z", "Zed", 5.0, 1.0), ShouldBeNil)
		So(idx.Upsert(ctx, "cand-a", "Ada", 5.0, 1.0), ShouldBeNil)

		Convey("When the ranking is read", func() {
			top, err := idx.TopN(ctx, 2)
			So(err, ShouldBeNil)

			Convey("Then ties break on candidate ID ascending", func() {
				So(top[0].CandidateID, ShouldEqual, "cand-a")
				So(top[1].CandidateID, ShouldEqual, "cand-z")
			})
		})
	})
}

func TestIndexStoreEmptyID(t *testing.T) {
	Convey("Given an index", t, func() {
		idx := NewIndexStore()

		Convey("When an empty candidate ID is upserted", func() {
			err := idx.Upsert(context.Background(), "", "nobody", 1.0, 1.0)

			Convey("Then the write is rejected", func() {
				So(err, ShouldEqual, ErrEmptyCandidateID)
			})
		})
	})
}
