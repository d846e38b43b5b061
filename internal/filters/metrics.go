package filters

import (
	"timegrid/internal/shared/metrics"
)

// metricRecordsDroppedTotal counts records removed by each filter.
var (
	metricRecordsDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFilter,
			Name:      "records_dropped_total",
		},
		[]string{metrics.FieldFilter},
	)
)
