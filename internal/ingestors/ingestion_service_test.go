package ingestors_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	batchermocks "event-handler/internal/batchers/mocks"
	"event-handler/internal/ingestors"
	"event-handler/internal/models"
	"event-handler/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	clickEvent  = `{"event_id":"e-1","user_id":"u-1","event_type":"click","source":"web","timestamp":"2026-10-19T08:15:00Z","properties":{}}`
	viewEvent   = `{"event_id":"e-2","user_id":null,"event_type":"view","source":"apple","timestamp":"2026-10-19T08:15:01Z","properties":{"content_id":"content_1"}}`
	signupEvent = `{"event_id":"e-3","user_id":"u-3","event_type":"signup","source":"android","timestamp":"2026-10-19T08:15:02Z","properties":{}}`
)

func newService(engine *batchermocks.MockFlushEngine) ingestors.IngestionService {
	return ingestors.NewIngestionService(ingestors.NewEventValidator(), ingestors.NewSignupEventFilter(), engine, 0)
}

func TestIngestEvents_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := batchermocks.NewMockFlushEngine(ctrl)
	service := newService(engine)

	gomock.InOrder(
		engine.EXPECT().Append(gomock.Any()).DoAndReturn(func(events []models.Event) int {
			require.Len(t, events, 2)
			assert.Equal(t, "e-1", events[0].EventID)
			assert.Equal(t, "e-2", events[1].EventID)
			return 2
		}),
		engine.EXPECT().MaybeFlush().Return(false),
	)

	body := bytes.NewReader([]byte(`{"events":[` + clickEvent + `,` + viewEvent + `]}`))
	result, err := service.IngestEvents(context.Background(), "application/json", body)

	require.NoError(t, err)
	assert.Equal(t, &ingestors.IngestResult{Received: 2, Accepted: 2, Filtered: 0, BufferSize: 2}, result)
}

func TestIngestEvents_FiltersSignup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := batchermocks.NewMockFlushEngine(ctrl)
	service := newService(engine)

	engine.EXPECT().Append(gomock.Any()).DoAndReturn(func(events []models.Event) int {
		require.Len(t, events, 2)
		for _, event := range events {
			assert.NotEqual(t, models.EventTypeSignup, event.EventType)
		}
		return 5
	})
	engine.EXPECT().MaybeFlush().Return(false)

	body := strings.NewReader(`{"events":[` + clickEvent + `,` + signupEvent + `,` + viewEvent + `]}`)
	result, err := service.IngestEvents(context.Background(), "application/json; charset=utf-8", body)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Received)
	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, 1, result.Filtered)
	assert.Equal(t, 5, result.BufferSize)
}

func TestIngestEvents_OnlyFilteredEventsSkipsBuffer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := batchermocks.NewMockFlushEngine(ctrl)
	service := newService(engine)

	engine.EXPECT().BufferSize().Return(7)

	result, err := service.IngestEvents(context.Background(), "", strings.NewReader(`{"events":[`+signupEvent+`]}`))

	require.NoError(t, err)
	assert.Equal(t, 0, result.Accepted)
	assert.Equal(t, 7, result.BufferSize)
	assert.False(t, result.FlushScheduled)
}

func TestIngestEvents_ReportsScheduledFlush(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := batchermocks.NewMockFlushEngine(ctrl)
	service := newService(engine)

	engine.EXPECT().Append(gomock.Any()).Return(50)
	engine.EXPECT().MaybeFlush().Return(true)

	result, err := service.IngestEvents(context.Background(), "application/json", strings.NewReader(`{"events":[`+clickEvent+`]}`))

	require.NoError(t, err)
	assert.True(t, result.FlushScheduled)
}

func TestIngestEvents_RejectedPayloadBuffersNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		contentType  string
		body         string
		expectedCode string
	}{
		{
			name:         "unsupported content type",
			contentType:  "text/plain",
			body:         `{"events":[` + clickEvent + `]}`,
			expectedCode: "EVT_1000",
		},
		{
			name:         "invalid json",
			contentType:  "application/json",
			body:         `{invalid json}`,
			expectedCode: "EVT_1000",
		},
		{
			name:         "events not an array",
			contentType:  "application/json",
			body:         `{"events":{}}`,
			expectedCode: "EVT_1000",
		},
		{
			name:         "one invalid event rejects the batch",
			contentType:  "application/json",
			body:         `{"events":[` + clickEvent + `,{"event_type":"click","source":"web","timestamp":"2026-10-19T08:15:00Z"}]}`,
			expectedCode: "EVT_1001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no expectations: the engine must not be touched
			engine := batchermocks.NewMockFlushEngine(ctrl)
			service := newService(engine)

			result, err := service.IngestEvents(context.Background(), tt.contentType, strings.NewReader(tt.body))

			require.Error(t, err)
			assert.Nil(t, result)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, tt.expectedCode, svcErr.Code)
			assert.Equal(t, "invalid_argument", svcErr.Category)
		})
	}
}

func TestIngestEvents_BodyTooLarge(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := batchermocks.NewMockFlushEngine(ctrl)
	service := ingestors.NewIngestionService(ingestors.NewEventValidator(), ingestors.NewSignupEventFilter(), engine, 64)

	body := `{"events":[` + clickEvent + `]}`
	require.Greater(t, len(body), 64)

	_, err := service.IngestEvents(context.Background(), "application/json", strings.NewReader(body))

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "EVT_1000", svcErr.Code)
	assert.Contains(t, svcErr.Cause.Error(), "body too large")
}

func TestIngestEvents_NilBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newService(batchermocks.NewMockFlushEngine(ctrl))

	_, err := service.IngestEvents(context.Background(), "application/json", nil)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "EVT_1000", svcErr.Code)
}
