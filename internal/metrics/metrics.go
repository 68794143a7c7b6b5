package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DocumentsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_documents_generated_total",
			Help: "Total number of resume documents generated",
		},
		[]string{"format"},
	)

	GenerationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_generation_failures_total",
			Help: "Total number of failed generation runs by failing stage",
		},
		[]string{"format", "stage"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resume_generation_duration_seconds",
			Help:    "Duration of a generation run in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"format"},
	)
)

// Observe records the outcome of one run. stage is empty on success.
func Observe(format, stage string, elapsed time.Duration) {
	GenerationDuration.WithLabelValues(format).Observe(elapsed.Seconds())
	if stage == "" {
		DocumentsGenerated.WithLabelValues(format).Inc()
		return
	}
	GenerationFailures.WithLabelValues(format, stage).Inc()
}
