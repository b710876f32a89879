package batchers

import (
	"fmt"

	"event-handler/internal/shared/svcerrors"
)

const (
	codeInternalSerializeFailed = "FLS_9000"
	codeInternalStorePutFailed  = "FLS_9001"
)

// errInternalSerializeFailed returns an error when a flush unit cannot be encoded.
func errInternalSerializeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSerializeFailed, fmt.Errorf("serializeFailed: %w", cause))
}

// errInternalStorePutFailed returns an error when the event batch store rejects a flush.
func errInternalStorePutFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStorePutFailed, fmt.Errorf("eventBatchStorePutFailed: %w", cause))
}
