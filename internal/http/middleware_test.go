package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"timegrid/internal/shared/loggers"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMwRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		provided string
	}{
		{name: "generated", provided: ""},
		{name: "provided", provided: "custom-request-id-12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			handler := mwRequestID(loggers.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = requestID(r)
				assert.NotNil(t, loggers.Ctx(r.Context()))
			}))

			req := httptest.NewRequest(http.MethodGet, "/grid", nil)
			if tt.provided != "" {
				req.Header.Set(headerRequestID, tt.provided)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if tt.provided != "" {
				assert.Equal(t, tt.provided, seen)
			} else {
				assert.Len(t, seen, 26, "generated IDs are ULIDs")
			}
			assert.Equal(t, seen, rr.Header().Get(headerRequestID))
		})
	}
}

func TestMwRequestID_LogsWithRequestID(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger, err := loggers.NewWithWriter("info", &logs)
	require.NoError(t, err)

	handler := mwRequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loggers.Ctx(r.Context()).Info().Msg("inside")
	}))

	req := httptest.NewRequest(http.MethodGet, "/grid", nil)
	req.Header.Set(headerRequestID, "abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, logs.String(), `"request_id":"abc"`)
}

func TestMwRecoverer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		panic any
	}{
		{name: "string panic", panic: "critical error occurred"},
		{name: "error panic", panic: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := mwRequestID(loggers.Nop())(mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panic)
			})))

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/grid", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, contentTypeJSON, rr.Header().Get(headerContentType))

			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.NotEmpty(t, errorResponse.RequestID)
			assert.Equal(t, "internal", errorResponse.ErrorCategory)
			assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
			assert.Equal(t, "internal server error", errorResponse.ErrorDescription)
		})
	}
}

func TestMwRecoverer_PassesThroughWhenNoPanic(t *testing.T) {
	t.Parallel()

	handler := mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("grid"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/grid", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "grid", rr.Body.String())
}

func TestSetupMiddleware_Integration(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger, err := loggers.NewWithWriter("info", &logs)
	require.NoError(t, err)

	router := chi.NewRouter()
	setupMiddleware(router, logger)
	router.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("integration test panic")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(headerRequestID))

	rr = httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)

	assert.Contains(t, logs.String(), `"http_status":200`)
	assert.Contains(t, logs.String(), `"http_status":500`)
	assert.Contains(t, logs.String(), `"error_code":"SYS_9000"`)
}
