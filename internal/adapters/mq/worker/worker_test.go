package worker_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/talentscan/talentscan/internal/adapters/mq/worker"
	. "github.com/smartystreets/goconvey/convey"
)

func TestForEach(t *testing.T) {
	Convey("Given a pool with capacity two", t, func() {
		pool := worker.NewPool(2)

		Convey("When running ten jobs", func() {
			var ran atomic.Int64
			var peak atomic.Int64
			var cur atomic.Int64

			err := pool.ForEach(context.Background(), 10, func(_ context.Context, _ int) {
				n := cur.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				cur.Add(-1)
				ran.Add(1)
			})

			Convey("Then all jobs ran and concurrency stayed bounded", func() {
				So(err, ShouldBeNil)
				So(ran.Load(), ShouldEqual, 10)
				So(peak.Load(), ShouldBeLessThanOrEqualTo, 2)
			})
		})

		Convey("When a job panics", func() {
			var ran atomic.Int64
			err := pool.ForEach(context.Background(), 4, func(_ context.Context, i int) {
				if i == 1 {
					panic("bad candidate")
				}
				ran.Add(1)
			})

			Convey("Then siblings still settle and ForEach returns", func() {
				So(err, ShouldBeNil)
				So(ran.Load(), ShouldEqual, 3)
				So(pool.InFlight(), ShouldEqual, 0)
			})
		})

		Convey("When the context is canceled mid-admission", func() {
			ctx, cancel := context.WithCancel(context.Background())
			var mu sync.Mutex
			started := 0

			go func() {
				time.Sleep(10 * time.Millisecond)
				cancel()
			}()
			err := pool.ForEach(ctx, 100, func(_ context.Context, _ int) {
				mu.Lock()
				started++
				mu.Unlock()
				time.Sleep(20 * time.Millisecond)
			})

			Convey("Then admission stops with the context error", func() {
				So(err, ShouldNotBeNil)
				mu.Lock()
				defer mu.Unlock()
				So(started, ShouldBeLessThan, 100)
			})
		})
	})
}

func TestNewPoolDefaults(t *testing.T) {
	Convey("Given a pool created with a non-positive capacity", t, func() {
		pool := worker.NewPool(0)

		Convey("Then a CPU-derived default applies", func() {
			So(pool.Capacity(), ShouldBeGreaterThan, 0)
		})
	})
}
