package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	cycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tempo_cycles_total",
		Help: "Build cycles by outcome (run, skip, noop, invalid, error).",
	}, []string{"outcome"})

	taskDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tempo_task_duration_seconds",
		Help:    "Wall time of task executions.",
		Buckets: prometheus.DefBuckets,
	})

	dependencyFiles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tempo_dependency_files",
		Help: "Dependency files resolved in the latest cycle.",
	})

	changedFiles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tempo_changed_files",
		Help: "Changed dependency files detected in the latest cycle.",
	})
)

func CycleDone(outcome string) { cycles.WithLabelValues(outcome).Inc() }

func ObserveTask(seconds float64) { taskDuration.Observe(seconds) }

func SetCycleCounts(deps, changed int) {
	dependencyFiles.Set(float64(deps))
	changedFiles.Set(float64(changed))
}

func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}
