package smoke

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const sampleExposition = `# HELP dm_errors_total Simulated errors
# TYPE dm_errors_total counter
dm_errors_total 3
# HELP dm_requests_total Total requests
# TYPE dm_requests_total counter
dm_requests_total{endpoint="/recommend",method="POST",status="200"} 5
dm_requests_total{endpoint="/recommend",method="POST",status="400"} 2
# HELP dm_request_duration_seconds Request latency (s)
# TYPE dm_request_duration_seconds histogram
dm_request_duration_seconds_bucket{le="0.05"} 5
dm_request_duration_seconds_sum 0.1
dm_request_duration_seconds_count 5
`

func TestContainsInstrument(t *testing.T) {
	Convey("Given a metrics exposition", t, func() {
		Convey("Then declared instruments should be found", func() {
			So(containsInstrument(sampleExposition, "dm_errors_total"), ShouldBeTrue)
			So(containsInstrument(sampleExposition, "dm_requests_total"), ShouldBeTrue)
			So(containsInstrument(sampleExposition, "dm_request_duration_seconds"), ShouldBeTrue)
		})

		Convey("And unknown instruments should not", func() {
			So(containsInstrument(sampleExposition, "dm_unknown_total"), ShouldBeFalse)
		})
	})
}

func TestCounterValue(t *testing.T) {
	Convey("Given a metrics exposition", t, func() {
		Convey("When reading an unlabeled counter", func() {
			value, ok := counterValue(sampleExposition, "dm_errors_total")

			Convey("Then its value should be returned", func() {
				So(ok, ShouldBeTrue)
				So(value, ShouldEqual, 3)
			})
		})

		Convey("When reading a labeled counter", func() {
			value, ok := counterValue(sampleExposition, "dm_requests_total")

			Convey("Then samples should be summed across label sets", func() {
				So(ok, ShouldBeTrue)
				So(value, ShouldEqual, 7)
			})
		})

		Convey("When reading a counter whose name prefixes another", func() {
			// dm_request_duration_seconds must not pick up _bucket/_sum/_count lines.
			value, ok := counterValue(sampleExposition, "dm_request_duration_seconds")

			Convey("Then longer names should be skipped", func() {
				So(ok, ShouldBeFalse)
				So(value, ShouldEqual, 0)
			})
		})

		Convey("When reading a missing counter", func() {
			_, ok := counterValue(sampleExposition, "dm_missing_total")

			Convey("Then it should report absence", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}
