package parsers

import (
	"timegrid/internal/shared/metrics"
)

const (
	reasonMatched     = "matched"
	reasonNoMatch     = "no_match"
	reasonInvalidDate = "invalid_date"
)

// metricLinesParsedTotal counts every line handed to a parser, labelled with
// the outcome: matched, no_match (wrong shape) or invalid_date (right shape,
// impossible calendar date, skipped).
var (
	metricLinesParsedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParser,
			Name:      "lines_parsed_total",
		},
		[]string{metrics.FieldFormat, metrics.FieldReason},
	)
)
