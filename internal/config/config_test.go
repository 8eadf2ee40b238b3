package config_test

import (
	"testing"

	"github.com/ohack/teamforge/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.TeamSize, convey.ShouldEqual, 4)
			convey.So(cfg.ShardCount, convey.ShouldEqual, 8)
			convey.So(cfg.DebounceMS, convey.ShouldEqual, 800)
			convey.So(cfg.CheckTimeoutMS, convey.ShouldEqual, 8_000)
			convey.So(cfg.GithubAPIURL, convey.ShouldNotBeEmpty)
			convey.So(cfg.SlackAPIURL, convey.ShouldNotBeEmpty)
			convey.So(cfg.SessionTTLMS, convey.ShouldEqual, 1_800_000)
		})
	})
}
