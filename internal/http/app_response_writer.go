package http

import (
	"net/http"

	"timegrid/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the status and the service error of a response
// so that the logging and metrics middlewares can report them.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// StatusOrOK returns the written status, or 200 when the handler wrote a
// body without an explicit header or nothing at all.
func (w *appResponseWriter) StatusOrOK() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// responseStatus reads the status of w when it is an appResponseWriter.
func responseStatus(w http.ResponseWriter) (status int, errorCode string) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		return appWriter.StatusOrOK(), appWriter.ErrorCode()
	}
	return http.StatusOK, ""
}
