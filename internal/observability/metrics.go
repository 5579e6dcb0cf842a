package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerMetricsOnce sync.Once

	Recomputes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diff_annotator_recomputes_total",
			Help: "Total annotation recomputations",
		},
		[]string{"outcome"},
	)

	RecomputeLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "diff_annotator_recompute_latency_seconds",
			Help:    "End-to-end recompute latency",
			Buckets: prometheus.DefBuckets,
		},
	)

	GitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "diff_annotator_git_errors_total",
			Help: "Total version-control collaborator failures",
		},
	)

	ParsedHunks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "diff_annotator_parsed_hunks_total",
			Help: "Total hunks parsed from diff text",
		},
	)

	Annotations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diff_annotator_annotations_total",
			Help: "Total annotations emitted",
		},
		[]string{"category"},
	)
)

func InitMetrics() {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(Recomputes, RecomputeLatency, GitErrors, ParsedHunks, Annotations)
	})
}
