// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sow_generations_completed_total",
			Help: "Total number of SOW generations completed",
		},
		[]string{"template_id"},
	)

	GenerationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sow_generations_failed_total",
			Help: "Total number of SOW generations failed",
		},
		[]string{"step", "error_code"},
	)

	GenerationStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "sow_generation_step_duration_seconds",
			Help: "Duration of each workflow step in seconds",
		},
		[]string{"step"},
	)

	TakeoffValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "takeoff_validation_failures_total",
			Help: "Total number of takeoff submissions that failed validation",
		},
		[]string{"field"},
	)
)
