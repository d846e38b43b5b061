package http

import (
	"net/http"

	"timegrid/internal/reports"
	"timegrid/internal/shared/loggers"
	"timegrid/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reports.ReportService, defaults GridDefaults, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	gridHandler := NewGridHandler(reportService, defaults)

	router.Get("/grid", errorHandlingAdapter(gridHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
