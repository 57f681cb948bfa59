package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the alert pipeline.
type Metrics struct {
	SchedulerRuns        prometheus.Counter
	SchedulerSkips       prometheus.Counter
	SchedulerFailures    prometheus.Counter
	AlertsCreated        prometheus.Counter
	NotificationsCreated prometheus.Counter
	RunDuration          prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		SchedulerRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "calorsos",
			Name:      "scheduler_runs_total",
			Help:      "Total scheduled alert runs started.",
		}),
		SchedulerSkips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "calorsos",
			Name:      "scheduler_skips_total",
			Help:      "Runs skipped because a previous run was still in flight.",
		}),
		SchedulerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "calorsos",
			Name:      "scheduler_failures_total",
			Help:      "Runs aborted by a fetch or persistence failure.",
		}),
		AlertsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "calorsos",
			Name:      "alerts_created_total",
			Help:      "Heat alerts persisted by the scheduler.",
		}),
		NotificationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "calorsos",
			Name:      "notifications_created_total",
			Help:      "Notification records created by fan-out.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "calorsos",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete fetch-compute-persist-fanout run.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}),
	}

	prometheus.MustRegister(
		m.SchedulerRuns,
		m.SchedulerSkips,
		m.SchedulerFailures,
		m.AlertsCreated,
		m.NotificationsCreated,
		m.RunDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with no registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		SchedulerRuns:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "calorsos", Name: "scheduler_runs_total"}),
		SchedulerSkips:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "calorsos", Name: "scheduler_skips_total"}),
		SchedulerFailures:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "calorsos", Name: "scheduler_failures_total"}),
		AlertsCreated:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "calorsos", Name: "alerts_created_total"}),
		NotificationsCreated: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "calorsos", Name: "notifications_created_total"}),
		RunDuration:          prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "calorsos", Name: "run_duration_seconds"}),
	}
}
