package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-handler/internal/ingestors"
	ingestormocks "event-handler/internal/ingestors/mocks"
	"event-handler/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestEventsHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestEventsHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/webhook/events", bytes.NewReader([]byte(`{"events":[]}`)))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	mockIngestionService.EXPECT().
		IngestEvents(gomock.Any(), "application/json", gomock.Any()).
		Return(&ingestors.IngestResult{}, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())
}

func TestIngestEventsHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngestionService := ingestormocks.NewMockIngestionService(ctrl)
	handler := NewIngestEventsHandler(mockIngestionService)

	req := httptest.NewRequest(http.MethodPost, "/webhook/events", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewInvalidArgumentError("TEST_1000", "Invalid payload", nil)
	mockIngestionService.EXPECT().
		IngestEvents(gomock.Any(), "application/json", gomock.Any()).
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "TEST_1000", svcErr.Code)
	// Nothing is written when the service rejects the payload
	assert.Empty(t, rr.Body.String())
}
