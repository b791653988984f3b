package logger_test

import (
	"context"
	"testing"

	"github.com/talentscan/talentscan/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given the global logger", t, func() {
		l := logger.Get()

		Convey("Then it is initialized lazily", func() {
			So(l, ShouldNotBeNil)
		})

		Convey("When creating a named sub-logger", func() {
			named := l.Named("monitor")
			So(named, ShouldNotBeNil)

			Convey("Then logging through it does not panic", func() {
				So(func() {
					named.Info(context.Background(), "tick finished",
						logger.Int("candidates", 3),
						logger.String("interval", "6h"),
					)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		Convey("Then known levels parse", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("INFO"), ShouldBeNil)
			So(logger.SetLevelString("warning"), ShouldBeNil)
			So(logger.SetLevelString("error"), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)
		})

		Convey("Then unknown levels error", func() {
			So(logger.SetLevelString("chatty"), ShouldNotBeNil)
		})

		Reset(func() { _ = logger.SetLevelString("info") })
	})
}
