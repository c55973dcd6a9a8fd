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
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			registryOpt := WithPrometheusRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given a custom registry", t, func() {
		registry := prometheus.NewRegistry()

		Convey("When creating a manager", func() {
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then the manager registers its collectors", func() {
				So(manager, ShouldNotBeNil)

				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeEmpty)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		So(GetRegistry(), ShouldNotBeNil)

		Convey("When recording domain metrics", func() {
			RecordVote()
			RecordInvalidVote()
			RecordBattleServed()
			RecordModelsSeeded(8)
			UpdateTotalModels(8)
			UpdateTotalVotes(3)

			Convey("Then the counters are gatherable", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)

				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["aivibe_battle_votes_recorded_total"], ShouldBeTrue)
				So(names["aivibe_battle_battles_served_total"], ShouldBeTrue)
			})
		})

		Convey("When recording transport and storage metrics", func() {
			RecordHTTPRequest("vote", "POST", "200")
			RecordHTTPRequestDuration("vote", "POST", "200", 1.5)
			RecordStorageError("seed")
			RecordStorageLatency("seed", 0.3)
			RecordAgentRequest("chat", "success")
			RecordAgentLatency("chat", 120)

			Convey("Then gathering does not fail", func() {
				_, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
			})
		})

		Convey("When updating system metrics", func() {
			UpdateSystemMemoryUsage(1024)
			UpdateSystemGoroutineCount(12)
			RecordSystemGCPauseTime(0.2)

			Convey("Then gathering does not fail", func() {
				_, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
			})
		})
	})
}
