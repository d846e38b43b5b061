package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"timegrid/internal/models"
	"timegrid/internal/renderers"
	"timegrid/internal/reports"
)

const (
	paramDate         = "date"
	paramAll          = "all"
	paramExclude      = "exclude"
	paramExcludeAgent = "exclude-agent"
	paramMode         = "mode"
	paramSummary      = "summary"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// GridDefaults are the report settings used when a request does not override them.
type GridDefaults struct {
	Files            []string
	Mode             models.RenderMode
	Summary          bool
	ExcludeAddresses []string
	ExcludeAgents    []string
}

type gridHandler struct {
	reportService reports.ReportService
	defaults      GridDefaults
	now           func() time.Time
}

func NewGridHandler(reportService reports.ReportService, defaults GridDefaults) AppHttpHandler {
	return &gridHandler{
		reportService: reportService,
		defaults:      defaults,
		now:           time.Now,
	}
}

// Handle processes GET /grid requests. Exclusions given as query parameters
// add to the configured ones.
func (h *gridHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()

	all, err := boolParam(q.Get(paramAll), false, paramAll)
	if err != nil {
		return err
	}
	summary, err := boolParam(q.Get(paramSummary), h.defaults.Summary, paramSummary)
	if err != nil {
		return err
	}
	selection, err := reports.ResolveDateSelection(q.Get(paramDate), all, h.now())
	if err != nil {
		return err
	}

	mode := h.defaults.Mode
	if v := strings.TrimSpace(q.Get(paramMode)); v != "" {
		mode = models.RenderMode(v)
	}
	grid, err := renderers.NewGridRenderer(mode)
	if err != nil {
		return err
	}

	report, err := h.reportService.Build(r.Context(), &reports.Query{
		Paths:            h.defaults.Files,
		Selection:        selection,
		ExcludeAddresses: append(append([]string{}, h.defaults.ExcludeAddresses...), q[paramExclude]...),
		ExcludeAgents:    append(append([]string{}, h.defaults.ExcludeAgents...), q[paramExcludeAgent]...),
	})
	if err != nil {
		return err
	}

	if acceptsJSON(r) {
		w.Header().Set(headerContentType, contentTypeJSON)
		w.WriteHeader(http.StatusOK)
		metricGridsServedTotal.WithLabelValues(string(mode), bodyJSON).Inc()
		return json.NewEncoder(w).Encode(report)
	}

	// Render fully before writing so a failure still gets an error response.
	var buf bytes.Buffer
	if err := renderers.NewReportRenderer(grid, summary).Render(&buf, report); err != nil {
		return err
	}
	w.Header().Set(headerContentType, contentTypeText)
	w.WriteHeader(http.StatusOK)
	metricGridsServedTotal.WithLabelValues(string(mode), bodyText).Inc()
	_, err = buf.WriteTo(w)
	return err
}

func boolParam(value string, fallback bool, name string) (bool, error) {
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errInvalidQueryParam(name, value, err)
	}
	return b, nil
}
