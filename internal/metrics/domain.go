package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resorter",
			Subsystem: "intake",
			Name:      "documents_total",
			Help:      "Documents passed through intake, by result status.",
		},
		[]string{"status"},
	)

	candidatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resorter",
			Subsystem: "intake",
			Name:      "candidates_total",
			Help:      "Candidates stored, by category.",
		},
		[]string{"category"},
	)

	filterRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resorter",
			Subsystem: "filter",
			Name:      "runs_total",
			Help:      "Filter evaluations, by the path that served them.",
		},
		[]string{"source"},
	)

	filterMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "resorter",
			Subsystem: "filter",
			Name:      "matches",
			Help:      "Number of candidates returned per filter evaluation.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	sortedFiles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resorter",
			Subsystem: "sorter",
			Name:      "files_total",
			Help:      "Files handled by the sorter, by outcome.",
		},
		[]string{"outcome"},
	)
)

func ObserveDocument(status string) {
	documentsTotal.WithLabelValues(status).Inc()
}

func ObserveCandidate(category string) {
	candidatesTotal.WithLabelValues(category).Inc()
}

// ObserveFilter records one filter run served by source ("store" or "memory")
func ObserveFilter(source string, matches int) {
	filterRuns.WithLabelValues(source).Inc()
	filterMatches.Observe(float64(matches))
}

func ObserveSort(outcome string) {
	sortedFiles.WithLabelValues(outcome).Inc()
}
