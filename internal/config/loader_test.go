package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/discountmate/internal/config"
	"github.com/smartystreets/goconvey/convey"
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
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.ModelSampleCount, convey.ShouldEqual, 400)
				convey.So(cfg.ModelSeed, convey.ShouldEqual, 42)
				convey.So(cfg.ModelMaxDepth, convey.ShouldEqual, 4)
				convey.So(cfg.ModelMinLeaf, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("DM_ADDR", ":9090")
			_ = os.Setenv("DM_LOG_LEVEL", "debug")
			_ = os.Setenv("DM_MODEL_SAMPLE_COUNT", "800")
			_ = os.Setenv("DM_MODEL_SEED", "7")
			_ = os.Setenv("DM_MODEL_MAX_DEPTH", "6")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.ModelSampleCount, convey.ShouldEqual, 800)
				convey.So(cfg.ModelSeed, convey.ShouldEqual, 7)
				convey.So(cfg.ModelMaxDepth, convey.ShouldEqual, 6)
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			clearConfigEnvVars()

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			content := "addr: \":7070\"\nmodel_seed: 11\n"
			convey.So(os.WriteFile(path, []byte(content), 0o600), convey.ShouldBeNil)

			_ = os.Setenv("DM_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values should override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.ModelSeed, convey.ShouldEqual, 11)
				convey.So(cfg.ModelSampleCount, convey.ShouldEqual, 400)
			})

			convey.Convey("And env vars should still win over the file", func() {
				_ = os.Setenv("DM_ADDR", ":6060")

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the config file is missing", func() {
			clearConfigEnvVars()
			_ = os.Setenv("DM_CONFIG", "/nonexistent/config.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading should fail with a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When validation fails", func() {
			clearConfigEnvVars()
			_ = os.Setenv("DM_MODEL_SAMPLE_COUNT", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading should fail with an invalid-config error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"DM_CONFIG",
		"DM_ADDR",
		"DM_LOG_LEVEL",
		"DM_MODEL_SAMPLE_COUNT",
		"DM_MODEL_SEED",
		"DM_MODEL_MAX_DEPTH",
		"DM_MODEL_MIN_LEAF",
	} {
		_ = os.Unsetenv(key)
	}
}
