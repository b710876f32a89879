package stores

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"event-handler/internal/models"
	"event-handler/internal/shared/objectstorages"
)

const (
	DefaultObjectName = "events.json"
)

// EventBatchStore files serialized flush units in object storage, partitioned by UTC date:
//
//	<prefix>/<YYYY-MM-DD>/<flushID>/<objectName>
//
// e.g. events/2026-10-19/01JAX5V3M2Q4G3B7YF0K8N1C9D/events.json. The flush ID segment keeps
// several flushes on the same day from overwriting each other.
//
//go:generate mockgen -source=event_batch_store.go -destination=./mocks/event_batch_store_mock.go -package=mocks
type EventBatchStore interface {
	Key(unit *models.FlushUnit) string
	Put(ctx context.Context, key string, payload []byte) error
}

type eventBatchStore struct {
	objectStorage objectstorages.ObjectStorage
	prefix        string
	objectName    string
}

func NewEventBatchStore(objectStorage objectstorages.ObjectStorage, prefix string, objectName string) EventBatchStore {
	if objectName == "" {
		objectName = DefaultObjectName
	}
	return &eventBatchStore{objectStorage: objectStorage, prefix: prefix, objectName: objectName}
}

func (s *eventBatchStore) Key(unit *models.FlushUnit) string {
	return path.Join(s.prefix, unit.StorageDate(), unit.FlushID, s.objectName)
}

func (s *eventBatchStore) Put(ctx context.Context, key string, payload []byte) error {
	_, err := s.objectStorage.Put(ctx, key, bytes.NewReader(payload), objectstorages.PutOptions{
		ContentType: objectstorages.ContentTypeJSON,
	})
	if err != nil {
		return fmt.Errorf("failed to put event batch: %w", err)
	}
	return nil
}
