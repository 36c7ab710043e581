package smoke_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/discountmate/internal/adapters/http/api"
	app "github.com/okian/discountmate/internal/app"
	"github.com/okian/discountmate/internal/smoke"
	"github.com/okian/discountmate/pkg/logger"
	"github.com/okian/discountmate/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func startTestService(ctx context.Context) (*httptest.Server, func()) {
	m := metrics.NewManager()
	svc := app.New(app.WithLogger(logger.Get()), app.WithMetrics(m))
	if err := svc.Start(ctx); err != nil {
		panic(err)
	}

	mux := http.NewServeMux()
	api.NewServer(svc, m).Register(ctx, mux)

	ts := httptest.NewServer(mux)
	return ts, func() {
		ts.Close()
		svc.Stop()
	}
}

func TestSmokeRunAgainstInProcessService(t *testing.T) {
	Convey("Given a running service", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		ts, stop := startTestService(ctx)
		defer stop()

		Convey("When the full smoke run executes against it", func() {
			config := &smoke.Config{
				BaseURL:        ts.URL,
				Timeout:        5 * time.Second,
				HealthAttempts: 5,
				HealthDelay:    50 * time.Millisecond,
			}

			err := smoke.Run(ctx, config)

			Convey("Then every check should pass", func() {
				So(err, ShouldBeNil)
			})
		})
	})
}

func TestSmokeRunAgainstDeadService(t *testing.T) {
	Convey("Given nothing listening at the base URL", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		config := &smoke.Config{
			BaseURL:        "http://127.0.0.1:1", // reserved port, nothing listens here
			Timeout:        200 * time.Millisecond,
			HealthAttempts: 2,
			HealthDelay:    10 * time.Millisecond,
		}

		Convey("When the smoke run executes", func() {
			err := smoke.Run(ctx, config)

			Convey("Then it should fail the health step", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "health")
			})
		})
	})
}
