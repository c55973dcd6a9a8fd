package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/config"
)

func TestNew(t *testing.T) {
	Convey("Given a default config", t, func() {
		cfg := config.New()

		Convey("Then sensible defaults are set", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":8080")
			So(cfg.DBPath, ShouldEqual, "battle.db")
			So(cfg.ClearLedgerOnSeed, ShouldBeFalse)
			So(cfg.StatusListLimit, ShouldEqual, 1000)
			So(cfg.AgentMaxTokens, ShouldEqual, 1024)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		ctx := context.Background()

		Convey("When loading with no overrides", func() {
			cfg, err := config.Load(ctx)

			Convey("Then defaults apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.DBPath, ShouldEqual, "battle.db")
			})
		})

		Convey("When environment variables override defaults", func() {
			t.Setenv("BATTLE_ADDR", ":9090")
			t.Setenv("BATTLE_DB_PATH", "/tmp/other.db")
			t.Setenv("BATTLE_LOG_LEVEL", "debug")
			t.Setenv("BATTLE_CLEAR_LEDGER_ON_SEED", "true")

			cfg, err := config.Load(ctx)

			Convey("Then the env values win", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9090")
				So(cfg.DBPath, ShouldEqual, "/tmp/other.db")
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.ClearLedgerOnSeed, ShouldBeTrue)
			})
		})

		Convey("When a YAML config file is provided", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			So(os.WriteFile(path, []byte("addr: \":7070\"\nstatus_list_limit: 5\n"), 0600), ShouldBeNil)
			t.Setenv("BATTLE_CONFIG", path)

			cfg, err := config.Load(ctx)

			Convey("Then the file values apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.StatusListLimit, ShouldEqual, 5)
			})
		})

		Convey("When env overrides the config file", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			So(os.WriteFile(path, []byte("addr: \":7070\"\n"), 0600), ShouldBeNil)
			t.Setenv("BATTLE_CONFIG", path)
			t.Setenv("BATTLE_ADDR", ":6060")

			cfg, err := config.Load(ctx)

			Convey("Then env has the higher precedence", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
			})
		})

		Convey("When the config file does not exist", func() {
			t.Setenv("BATTLE_CONFIG", "/nonexistent/config.yaml")

			_, err := config.Load(ctx)

			Convey("Then loading fails with ErrLoadConfig", func() {
				So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
			})
		})

		Convey("When validation fails", func() {
			t.Setenv("BATTLE_STATUS_LIST_LIMIT", "0")

			_, err := config.Load(ctx)

			Convey("Then loading fails with ErrInvalidConfig", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
