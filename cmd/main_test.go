package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/okian/discountmate/internal/adapters/http/api"
	app "github.com/okian/discountmate/internal/app"
	"github.com/okian/discountmate/internal/config"
	"github.com/okian/discountmate/pkg/logger"
	"github.com/okian/discountmate/pkg/metrics"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)

		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("DM_ADDR", ":8081")
			_ = os.Setenv("DM_MODEL_SAMPLE_COUNT", "200")
			defer func() {
				_ = os.Unsetenv("DM_ADDR")
				_ = os.Unsetenv("DM_MODEL_SAMPLE_COUNT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8081")
				convey.So(cfg.ModelSampleCount, convey.ShouldEqual, 200)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithModelSampleCount(100),
					app.WithModelSeed(7),
					app.WithModelMaxDepth(3),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New(app.WithLogger(logger.Get()))
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, metrics.NewManager())
				convey.So(server, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)
		manager := metrics.NewManager()

		convey.Convey("When testing the system metrics updater", func() {
			convey.Convey("Then it should stop when the context is cancelled", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx, manager)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing a system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(func() {
					updateSystemMetrics(manager)
				}, convey.ShouldNotPanic)
			})
		})
	})
}
