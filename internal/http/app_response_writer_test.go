package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"event-handler/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Equal(t, "", appWriter.ErrorCode())

	appWriter.SetServiceError(svcerrors.NewInvalidArgumentError("EVT_1001", "Invalid payload", nil))
	assert.Equal(t, "EVT_1001", appWriter.ErrorCode())

	appWriter.SetServiceError(nil)
	assert.Equal(t, "", appWriter.ErrorCode())
}

func TestAppResponseWriter_StatusOrOK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		write    func(w http.ResponseWriter)
		expected int
	}{
		{
			name:     "nothing written",
			write:    func(w http.ResponseWriter) {},
			expected: http.StatusOK,
		},
		{
			name:     "body only",
			write:    func(w http.ResponseWriter) { _, _ = w.Write([]byte(`{"status":"success"}`)) },
			expected: http.StatusOK,
		},
		{
			name: "explicit status sticks after write",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"Invalid payload"}`))
			},
			expected: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			appWriter := newAppResponseWriter(rr, 1)

			tt.write(appWriter)

			assert.Equal(t, tt.expected, appWriter.StatusOrOK())
			if appWriter.Status() != 0 {
				assert.Equal(t, appWriter.Status(), rr.Code)
			}
		})
	}
}

func TestSummarizeResponse(t *testing.T) {
	t.Parallel()

	appWriter := newAppResponseWriter(httptest.NewRecorder(), 1)
	appWriter.SetServiceError(svcerrors.NewInvalidArgumentError("EVT_1000", "Invalid payload", nil))
	appWriter.WriteHeader(http.StatusBadRequest)
	_, _ = appWriter.Write([]byte(`{"error":"Invalid payload"}`))

	assert.Equal(t, responseSummary{status: http.StatusBadRequest, errorCode: "EVT_1000", bytes: 27}, summarizeResponse(appWriter))

	// a plain writer carries no details
	assert.Equal(t, responseSummary{status: http.StatusOK}, summarizeResponse(httptest.NewRecorder()))
}
