package batchers

import (
	"context"
	"encoding/json"
	"errors"
	"runtime/debug"
	"sync"
	"time"

	"event-handler/internal/models"
	"event-handler/internal/shared/loggers"
	"event-handler/internal/shared/metrics"
	"event-handler/internal/shared/svcerrors"
	"event-handler/internal/shared/ulid"
	"event-handler/internal/stores"
)

const (
	DefaultBatchSize  = 50
	DefaultPutTimeout = 30 * time.Second
)

type Config struct {
	BatchSize  int
	PutTimeout time.Duration
}

// FlushEngine owns the batch buffer and moves full batches to the event batch store.
//
// Persistence is at-most-once: a drained batch that fails to persist is logged in full under
// the "events" field and then discarded. It is never put back into the buffer.
//
// Only the drain is synchronized with ingestion. Serialization and the storage put run on
// their own goroutine, so a slow or hung store never blocks new appends.
//
//go:generate mockgen -source=flush_engine.go -destination=./mocks/flush_engine_mock.go -package=mocks
type FlushEngine interface {
	// Append buffers events and returns the buffer length after the append.
	Append(events []models.Event) int
	// MaybeFlush drains the buffer if it has reached the batch size and persists the drained
	// events in the background. It reports whether a flush was scheduled.
	MaybeFlush() bool
	// Flush drains whatever is buffered and persists it before returning.
	Flush(ctx context.Context) error
	BufferSize() int
	BatchSize() int
	// Stop stops background scheduling, flushes the remainder and waits for in-flight flushes.
	Stop(ctx context.Context) error
}

type flushEngine struct {
	buffer *BatchBuffer
	store  stores.EventBatchStore
	cfg    Config
	logger loggers.Logger

	now        func() time.Time
	newFlushID func(time.Time) string

	mu       sync.Mutex
	stopped  bool
	inFlight sync.WaitGroup
}

func NewFlushEngine(buffer *BatchBuffer, store stores.EventBatchStore, cfg Config, logger loggers.Logger) FlushEngine {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.PutTimeout <= 0 {
		cfg.PutTimeout = DefaultPutTimeout
	}
	return &flushEngine{
		buffer:     buffer,
		store:      store,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
		newFlushID: ulid.NewULIDAt,
	}
}

func (e *flushEngine) Append(events []models.Event) int {
	size := e.buffer.Append(events)
	metricBufferSize.Set(float64(size))
	e.logger.Debug().Int(loggers.FieldBufferSize, size).Msgf("buffer now contains %d events", size)
	return size
}

func (e *flushEngine) MaybeFlush() bool {
	events, ok := e.buffer.DrainIfAtLeast(e.cfg.BatchSize)
	if !ok {
		return false
	}
	metricBufferSize.Set(float64(e.buffer.Len()))

	unit := e.newFlushUnit(events)
	e.logger.Info().
		Str(loggers.FieldFlushID, unit.FlushID).
		Int(loggers.FieldEventCount, len(unit.Events)).
		Msgf("batch size reached (%d), flushing", e.cfg.BatchSize)

	e.dispatch(unit)
	return true
}

func (e *flushEngine) Flush(ctx context.Context) error {
	events := e.buffer.DrainForFlush()
	if len(events) == 0 {
		return nil
	}
	metricBufferSize.Set(float64(e.buffer.Len()))

	if svcErr := e.flush(ctx, e.newFlushUnit(events)); svcErr != nil {
		return svcErr
	}
	return nil
}

func (e *flushEngine) BufferSize() int {
	return e.buffer.Len()
}

func (e *flushEngine) BatchSize() int {
	return e.cfg.BatchSize
}

func (e *flushEngine) Stop(ctx context.Context) error {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()

	flushErr := e.Flush(ctx)

	done := make(chan struct{})
	go func() {
		e.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return errors.Join(flushErr, ctx.Err())
	}
	return flushErr
}

// dispatch runs the flush on its own goroutine, or inline once the engine is stopping.
func (e *flushEngine) dispatch(unit *models.FlushUnit) {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		e.flushWithTimeout(unit)
		return
	}
	e.inFlight.Add(1)
	e.mu.Unlock()

	go func() {
		defer e.inFlight.Done()
		e.flushWithTimeout(unit)
	}()
}

func (e *flushEngine) flushWithTimeout(unit *models.FlushUnit) {
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.PutTimeout)
	defer cancel()
	_ = e.flush(ctx, unit)
}

func (e *flushEngine) newFlushUnit(events []models.Event) *models.FlushUnit {
	flushedAt := e.now().UTC()
	return &models.FlushUnit{
		FlushID:   e.newFlushID(flushedAt),
		FlushedAt: flushedAt,
		Events:    events,
	}
}

// flush serializes the unit in buffer order and puts it to the store. Failures are logged and
// counted here and never propagate to the request that triggered the flush.
func (e *flushEngine) flush(ctx context.Context, unit *models.FlushUnit) (svcErr *svcerrors.ServiceError) {
	start := time.Now()
	logger := e.logger.With().
		Str(loggers.FieldFlushID, unit.FlushID).
		Int(loggers.FieldEventCount, len(unit.Events)).
		Logger()

	var payload []byte
	defer func() {
		if p := recover(); p != nil {
			svcErr = svcerrors.NewPanicError(p)
			logEvent := logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Str(loggers.FieldErrorCode, svcErr.Code)
			if payload != nil {
				logEvent = logEvent.RawJSON(loggers.FieldEvents, payload)
			} else {
				logEvent = logEvent.Strs("event_ids", eventIDs(unit.Events))
			}
			logEvent.Msgf("flush panic recovered, dropping events: %v", p)
		}

		errorCode := metrics.ValueNoError
		if svcErr != nil {
			errorCode = svcErr.Code
			metricEventsDroppedTotal.Add(float64(len(unit.Events)))
		} else {
			metricEventsFlushedTotal.Add(float64(len(unit.Events)))
		}
		metricFlushTotal.WithLabelValues(errorCode).Inc()
		metricFlushDuration.Observe(time.Since(start).Seconds())
	}()

	payload, err := json.Marshal(unit.Events)
	if err != nil {
		svcErr = errInternalSerializeFailed(err)
		logger.Error().
			Err(err).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Strs("event_ids", eventIDs(unit.Events)).
			Msg("failed to serialize batch, dropping events")
		return svcErr
	}

	key := e.store.Key(unit)
	if err := e.store.Put(ctx, key, payload); err != nil {
		svcErr = errInternalStorePutFailed(err)
		logger.Error().
			Err(err).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Str(loggers.FieldStorageKey, key).
			RawJSON(loggers.FieldEvents, payload).
			Msg("failed to flush batch, dropping events")
		return svcErr
	}

	logger.Info().
		Str(loggers.FieldStorageKey, key).
		Msgf("successfully flushed batch of %d events", len(unit.Events))
	return nil
}

func eventIDs(events []models.Event) []string {
	ids := make([]string, len(events))
	for i, event := range events {
		ids[i] = event.EventID
	}
	return ids
}
