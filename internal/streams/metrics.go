package streams

import (
	"timegrid/internal/shared/metrics"
)

var (
	// metricFilesReadTotal counts log files handed to the stream, labelled
	// with the error code that ended them ("" when read to completion).
	metricFilesReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "files_read_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
