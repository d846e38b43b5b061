package aggregators

import (
	"timegrid/internal/shared/metrics"
)

// metricRecordsFoldedTotal counts records added to a bucket map.
var (
	metricRecordsFoldedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregator,
			Name:      "records_folded_total",
		},
	)
)
