package ingestors

import (
	"fmt"

	"event-handler/internal/shared/svcerrors"
)

// Client-facing message for every rejected webhook payload.
const invalidPayloadMessage = "Invalid payload"

// IngestionService errors
const (
	codeMalformedPayload = "EVT_1000"
	codeInvalidEvent     = "EVT_1001"
)

// InvalidEventError identifies the first event that failed validation.
type InvalidEventError struct {
	Index   int
	EventID string
	Field   string
	Reason  string
}

func (e *InvalidEventError) Error() string {
	if e.EventID != "" {
		return fmt.Sprintf("event at index %d (event_id=%s): %s %s", e.Index, e.EventID, e.Field, e.Reason)
	}
	return fmt.Sprintf("event at index %d: %s %s", e.Index, e.Field, e.Reason)
}

// errMalformedPayload returns an error when the body is not an object holding an events array.
func errMalformedPayload(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedPayload, invalidPayloadMessage, cause)
}

// errInvalidEvent returns an error when an event is missing a required field or uses an unknown enum value.
func errInvalidEvent(cause *InvalidEventError) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidEvent, invalidPayloadMessage, cause)
}
