package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"timegrid/internal/models"
	"timegrid/internal/reports"
	reportmocks "timegrid/internal/reports/mocks"
	"timegrid/internal/shared/loggers"
	"timegrid/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	dec18     = models.Date{Year: 2009, Month: time.December, Day: 18}
	fixedTime = time.Date(2009, time.December, 18, 20, 0, 0, 0, time.Local)
)

func newTestGridHandler(service reports.ReportService, defaults GridDefaults) *gridHandler {
	return &gridHandler{
		reportService: service,
		defaults:      defaults,
		now:           func() time.Time { return fixedTime },
	}
}

func sampleReport(selection models.DateSelection) *models.Report {
	buckets := models.BucketMap{{Hour: 16, Minute: 17}: 2}
	return models.NewReport("run-1", selection, []string{"access.log"}, buckets, []models.AgentCount{{Name: "curl", Count: 2}})
}

func TestGridHandler_Handle_TextGrid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := reportmocks.NewMockReportService(ctrl)
	handler := newTestGridHandler(service, GridDefaults{
		Files:            []string{"access.log"},
		Mode:             models.RenderRuler,
		ExcludeAddresses: []string{"127.0.0.1"},
	})

	service.EXPECT().
		Build(gomock.Any(), &reports.Query{
			Paths:            []string{"access.log"},
			Selection:        models.SingleDate(dec18),
			ExcludeAddresses: []string{"127.0.0.1", "1.2.3.4"},
			ExcludeAgents:    []string{"curl"},
		}).
		Return(sampleReport(models.SingleDate(dec18)), nil)

	req := httptest.NewRequest(http.MethodGet, "/grid?exclude=1.2.3.4&exclude-agent=curl&summary=true", nil)
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, contentTypeText, rr.Header().Get(headerContentType))

	lines := strings.Split(rr.Body.String(), "\n")
	assert.Equal(t, "Requests handled on 2009-12-18:", lines[0])
	assert.Equal(t, "      [00        10        20        30        40        50        ]", lines[1])
	assert.Equal(t, byte('#'), lines[2+16][len("16:00 [")+17])
	assert.Contains(t, rr.Body.String(), "busiest minute: 16:17 (2 requests)")
}

func TestGridHandler_Handle_PlainAllDays(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := reportmocks.NewMockReportService(ctrl)
	handler := newTestGridHandler(service, GridDefaults{Files: []string{"*.log"}, Mode: models.RenderRuler})

	service.EXPECT().
		Build(gomock.Any(), &reports.Query{
			Paths:            []string{"*.log"},
			Selection:        models.AllDates(),
			ExcludeAddresses: []string{},
			ExcludeAgents:    []string{},
		}).
		Return(sampleReport(models.AllDates()), nil)

	rr := httptest.NewRecorder()
	require.NoError(t, handler.Handle(rr, httptest.NewRequest(http.MethodGet, "/grid?all=true&mode=plain", nil)))

	lines := strings.Split(rr.Body.String(), "\n")
	assert.Equal(t, "Requests handled on all days:", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "00:00 ["), "plain mode has no ruler")
	assert.NotContains(t, rr.Body.String(), "Summary:")
}

func TestGridHandler_Handle_JSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := reportmocks.NewMockReportService(ctrl)
	handler := newTestGridHandler(service, GridDefaults{Files: []string{"access.log"}, Mode: models.RenderRuler})

	service.EXPECT().Build(gomock.Any(), gomock.Any()).Return(sampleReport(models.SingleDate(dec18)), nil)

	req := httptest.NewRequest(http.MethodGet, "/grid?date=18/Dec/2009", nil)
	req.Header.Set(headerAccept, "text/html, application/json;q=0.9")
	rr := httptest.NewRecorder()

	require.NoError(t, handler.Handle(rr, req))
	assert.Equal(t, contentTypeJSON, rr.Header().Get(headerContentType))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "2009-12-18", body["selection"])
	assert.Equal(t, map[string]any{"16:17": float64(2)}, body["buckets"])
}

func TestGridHandler_Handle_InvalidParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		wantCode string
	}{
		{name: "invalid date", query: "date=2009-02-31", wantCode: "DATE_1000"},
		{name: "malformed date", query: "date=tomorrow", wantCode: "DATE_1002"},
		{name: "date with all", query: "date=2009-12-18&all=1", wantCode: "RPT_1005"},
		{name: "invalid all", query: "all=maybe", wantCode: codeInvalidQueryParam},
		{name: "invalid summary", query: "summary=lots", wantCode: codeInvalidQueryParam},
		{name: "invalid mode", query: "mode=fancy", wantCode: "RND_1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Build must not be reached
			service := reportmocks.NewMockReportService(ctrl)
			handler := newTestGridHandler(service, GridDefaults{Files: []string{"access.log"}, Mode: models.RenderRuler})

			err := handler.Handle(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/grid?"+tt.query, nil))
			require.Error(t, err)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, svcErr.Code)
			assert.Equal(t, http.StatusBadRequest, svcErr.HttpStatusCode)
		})
	}
}

func TestRouter_GridErrorResponse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := reportmocks.NewMockReportService(ctrl)
	service.EXPECT().
		Build(gomock.Any(), gomock.Any()).
		Return(nil, svcerrors.NewFileAccessError("STREAM_1000", "cannot open log file access.log", assert.AnError))

	router := NewRouter(service, GridDefaults{Files: []string{"access.log"}, Mode: models.RenderRuler}, loggers.Nop())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/grid?date=2009-12-18", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "file_access", errorResponse.ErrorCategory)
	assert.Equal(t, "STREAM_1000", errorResponse.ErrorCode)
	assert.Equal(t, rr.Header().Get(headerRequestID), errorResponse.RequestID)
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(reportmocks.NewMockReportService(ctrl), GridDefaults{Mode: models.RenderRuler}, loggers.Nop())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}
