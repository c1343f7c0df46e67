// Package metrics exposes the Prometheus collectors instrumenting plan
// builds and scheduler runs. Ambient traceability only (SPEC_FULL §2 added
// component table) — no spec.md-defined behavior depends on any value read
// here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BuildsTotal counts queryplan.Build calls by outcome ("success" or the
	// error kind's Go type name, e.g. "*queryplan.UnknownModuleError").
	BuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flowgrid_plan_builds_total",
		Help: "Total number of queryplan.Build calls, partitioned by outcome.",
	}, []string{"outcome"})

	// PlanModules observes the module count of successfully built plans.
	PlanModules = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flowgrid_plan_modules",
		Help:    "Number of modules in a successfully built plan.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})

	// SchedulerRunsTotal counts scheduler runs by scheduler kind and
	// outcome.
	SchedulerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flowgrid_scheduler_runs_total",
		Help: "Total number of scheduler Run calls, partitioned by scheduler kind and outcome.",
	}, []string{"scheduler", "outcome"})

	// SchedulerRunDuration observes wall-clock run time by scheduler kind.
	SchedulerRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flowgrid_scheduler_run_duration_seconds",
		Help:    "Wall-clock duration of a scheduler Run call.",
		Buckets: prometheus.DefBuckets,
	}, []string{"scheduler"})
)
