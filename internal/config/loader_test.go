package config_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/talentscan/talentscan/internal/config"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.SnapshotTTL, convey.ShouldEqual, 24*time.Hour)
				convey.So(cfg.MonitorInterval, convey.ShouldEqual, 6*time.Hour)
				convey.So(cfg.FetchTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(cfg.IndexShards, convey.ShouldEqual, 8)
				convey.So(cfg.MaxTopLimit, convey.ShouldEqual, 100)
				convey.So(cfg.PostgresDSN, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("TALENTSCAN_ADDR", ":8080")
			_ = os.Setenv("TALENTSCAN_SNAPSHOT_TTL", "1h")
			_ = os.Setenv("TALENTSCAN_MONITOR_INTERVAL", "30m")
			_ = os.Setenv("TALENTSCAN_FETCH_TIMEOUT", "2s")
			_ = os.Setenv("TALENTSCAN_INDEX_SHARDS", "16")
			_ = os.Setenv("TALENTSCAN_SUB_SCORE_DELTA", "2.5")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.SnapshotTTL, convey.ShouldEqual, time.Hour)
				convey.So(cfg.MonitorInterval, convey.ShouldEqual, 30*time.Minute)
				convey.So(cfg.FetchTimeout, convey.ShouldEqual, 2*time.Second)
				convey.So(cfg.IndexShards, convey.ShouldEqual, 16)
				convey.So(cfg.SubScoreDelta, convey.ShouldEqual, 2.5)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()

			yamlContent := `
addr: ":7070"
snapshot_ttl: 12h
alert_buffer: 128
weights:
  technical_depth:
    codehost: 0.9
`
			tmpFile, err := os.CreateTemp(t.TempDir(), "talentscan-*.yaml")
			convey.So(err, convey.ShouldBeNil)
			_, err = tmpFile.WriteString(yamlContent)
			convey.So(err, convey.ShouldBeNil)
			convey.So(tmpFile.Close(), convey.ShouldBeNil)

			_ = os.Setenv("TALENTSCAN_CONFIG", tmpFile.Name())
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.SnapshotTTL, convey.ShouldEqual, 12*time.Hour)
				convey.So(cfg.AlertBuffer, convey.ShouldEqual, 128)
				convey.So(cfg.Weights["technical_depth"]["codehost"], convey.ShouldEqual, 0.9)
			})
		})

		convey.Convey("When env vars override a YAML file", func() {
			clearConfigEnvVars()

			tmpFile, err := os.CreateTemp(t.TempDir(), "talentscan-*.yaml")
			convey.So(err, convey.ShouldBeNil)
			_, err = tmpFile.WriteString("addr: \":7070\"\n")
			convey.So(err, convey.ShouldBeNil)
			convey.So(tmpFile.Close(), convey.ShouldBeNil)

			_ = os.Setenv("TALENTSCAN_CONFIG", tmpFile.Name())
			_ = os.Setenv("TALENTSCAN_ADDR", ":6060")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env wins over file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the config is invalid", func() {
			clearConfigEnvVars()
			_ = os.Setenv("TALENTSCAN_FETCH_TIMEOUT", "0s")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then validation rejects it", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "fetch_timeout")
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"TALENTSCAN_CONFIG",
		"TALENTSCAN_ADDR",
		"TALENTSCAN_LOG_LEVEL",
		"TALENTSCAN_SNAPSHOT_TTL",
		"TALENTSCAN_MONITOR_INTERVAL",
		"TALENTSCAN_FETCH_TIMEOUT",
		"TALENTSCAN_AGGREGATION_CONCURRENCY",
		"TALENTSCAN_ALERT_BUFFER",
		"TALENTSCAN_INDEX_SHARDS",
		"TALENTSCAN_DEDUPE_SIZE",
		"TALENTSCAN_SUB_SCORE_DELTA",
		"TALENTSCAN_ACTIVITY_DELTA",
		"TALENTSCAN_MAX_TOP_LIMIT",
		"TALENTSCAN_POSTGRES_DSN",
	} {
		_ = os.Unsetenv(key)
	}
}
