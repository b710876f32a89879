package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("EVT_1000", "Invalid payload", nil),
			wantErr: NewInvalidArgumentError("EVT_1000", "Invalid payload", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("FLS_9001", nil)),
			wantErr: NewInternalError("FLS_9001", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_UnwrapAndStatus(t *testing.T) {
	cause := errors.New("bucket unreachable")
	svcErr := NewInternalError("FLS_9001", cause)

	assert.ErrorIs(t, svcErr, cause)
	assert.True(t, svcErr.IsInternalError())
	assert.Equal(t, 500, svcErr.HttpStatusCode)
	assert.Equal(t, "FLS_9001: internal server error", svcErr.Error())

	invalid := NewInvalidArgumentError("EVT_1001", "Invalid payload", nil)
	assert.False(t, invalid.IsInternalError())
	assert.Equal(t, 400, invalid.HttpStatusCode)
}

func TestNewPanicError(t *testing.T) {
	fromErr := NewPanicError(assert.AnError)
	assert.Equal(t, "SYS_9000", fromErr.Code)
	assert.ErrorIs(t, fromErr, assert.AnError)

	fromString := NewPanicError("boom")
	assert.Equal(t, "SYS_9000", fromString.Code)
	assert.EqualError(t, fromString.Cause, "boom")
}
