package objectstorages

import (
	"context"
	"errors"
	"io"
	"strings"
)

var (
	ErrInvalidKey     = errors.New("invalid object key")
	ErrInvalidRootDir = errors.New("invalid root directory")
	ErrInvalidBucket  = errors.New("invalid bucket")
)

const ContentTypeJSON = "application/json"

type PutResult struct {
	Key string
}

type PutOptions struct {
	ContentType string
}

// ObjectStorage persists opaque objects under slash-separated keys.
//
//go:generate mockgen -source=object_storage.go -destination=./mocks/object_storage_mock.go -package=mocks
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error)
}

// validateObjectKey rejects keys that cannot address an object in any backend.
func validateObjectKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if strings.HasPrefix(key, "/") {
		return ErrInvalidKey
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return ErrInvalidKey
		}
	}
	return nil
}
