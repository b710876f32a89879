package http

import (
	"net/http"

	"event-handler/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records what the handler answered so the metrics and access log
// middlewares can report it after the fact.
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

// StatusOrOK is the written status, or 200 for a handler that never called WriteHeader.
func (w *appResponseWriter) StatusOrOK() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// responseSummary is what the middlewares know about a finished response.
type responseSummary struct {
	status    int
	errorCode string
	bytes     int
}

func summarizeResponse(w http.ResponseWriter) responseSummary {
	appWriter, ok := w.(*appResponseWriter)
	if !ok {
		return responseSummary{status: http.StatusOK}
	}
	return responseSummary{
		status:    appWriter.StatusOrOK(),
		errorCode: appWriter.ErrorCode(),
		bytes:     appWriter.BytesWritten(),
	}
}
