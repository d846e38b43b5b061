package reports

import (
	"timegrid/internal/shared/metrics"
)

var (
	metricReportsBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "reports_built_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricReportBuildSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "build_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldFormat},
	)
)
