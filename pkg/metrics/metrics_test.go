package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			metricPrefixOpt := WithMetricPrefix("test-prefix")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(metricPrefixOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "teamforge")
				So(manager.subsystem, ShouldEqual, "teams")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the options should apply", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "test-namespace")
				So(manager.subsystem, ShouldEqual, "test-subsystem")
				So(manager.histogramBuckets, ShouldResemble, []float64{0.1, 0.5, 1.0})
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording through the package helpers", func() {
			// The helpers must never panic, whatever the label values.
			So(func() {
				RecordMatchComputation()
				RecordMatrixBuildDuration(1.5)
				RecordTeamsFormed(3)
				RecordTeammateQuery()
				UpdateRosterSize(42)
				UpdateRosterShardCount(8)
				RecordWizardSessionStarted()
				RecordWizardSessionSubmitted()
				RecordWizardSessionAbandoned()
				UpdateActiveWizardSessions(2)
				RecordRemoteCheck("github", true)
				RecordRemoteCheck("slack", false)
				RecordRemoteCheckFailure("slack")
				RecordRemoteCheckLatency("github", 120)
				RecordDebounceScheduled("slack_channel")
				RecordDebounceSuperseded("slack_channel")
				RecordDebounceFired("slack_channel")
				RecordHTTPRequest("match", "GET", "200")
				RecordHTTPRequestDuration("match", "GET", "200", 3.2)
				RecordErrorByType("client_error", "medium")
				RecordErrorByEndpoint("match", "GET", "client_error")
				RecordErrorLatency("http", "client_error", 3.2)
			}, ShouldNotPanic)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the metrics package", t, func() {
		Convey("Then the custom registry is available for /healthz", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
