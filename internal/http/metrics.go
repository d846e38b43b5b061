package http

import (
	"timegrid/internal/shared/metrics"
)

const (
	labelMethod = "method"
	labelPath   = "path"
	labelStatus = "status"
	labelMode   = "mode"
	labelBody   = "body"

	bodyJSON = "json"
	bodyText = "text"
)

var (
	metricHTTPRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{labelMethod, labelPath, labelStatus, metrics.FieldErrorCode},
	)

	metricHTTPRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{labelMethod, labelPath, labelStatus, metrics.FieldErrorCode},
	)

	// metricGridsServedTotal counts successful /grid responses by render
	// mode and body type (json or text).
	metricGridsServedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "grids_served_total",
		},
		[]string{labelMode, labelBody},
	)
)
