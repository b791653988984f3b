package dedupe_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/talentscan/talentscan/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeenAndRecord(t *testing.T) {
	Convey("Given a fresh deduper", t, func() {
		d := dedupe.NewInMemoryDeduper()
		ctx := context.Background()

		Convey("When recording a fingerprint twice", func() {
			first := d.SeenAndRecord(ctx, "cand-1:codehost:contributions")
			second := d.SeenAndRecord(ctx, "cand-1:codehost:contributions")

			Convey("Then only the second call reports it as seen", func() {
				So(first, ShouldBeFalse)
				So(second, ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})
		})

		Convey("When unrecording a fingerprint", func() {
			d.SeenAndRecord(ctx, "fp")
			d.Unrecord(ctx, "fp")

			Convey("Then it can be recorded again", func() {
				So(d.SeenAndRecord(ctx, "fp"), ShouldBeFalse)
			})
		})

		Convey("When unrecording an unknown fingerprint", func() {
			So(func() { d.Unrecord(ctx, "nope") }, ShouldNotPanic)
		})
	})
}

func TestBoundedEviction(t *testing.T) {
	Convey("Given a deduper bounded to three entries", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))
		ctx := context.Background()

		Convey("When recording five fingerprints", func() {
			for i := 0; i < 5; i++ {
				d.SeenAndRecord(ctx, fmt.Sprintf("fp-%d", i))
			}

			Convey("Then the size stays bounded", func() {
				So(d.Size(), ShouldEqual, 3)
			})

			Convey("And the oldest entries were evicted", func() {
				So(d.SeenAndRecord(ctx, "fp-0"), ShouldBeFalse)
				So(d.SeenAndRecord(ctx, "fp-4"), ShouldBeTrue)
			})
		})
	})
}
