package ingestors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"event-handler/internal/batchers"
	"event-handler/internal/models"
	"event-handler/internal/shared/loggers"
	"event-handler/internal/shared/metrics"
	"event-handler/internal/shared/svcerrors"
)

const (
	DefaultMaxBodyBytes = 2 * 1024 * 1024
)

const (
	FormatJSON = "json"
)

// IngestResult represents the result of a webhook ingestion.
type IngestResult struct {
	Received       int
	Accepted       int
	Filtered       int
	BufferSize     int
	FlushScheduled bool
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestEvents validates a webhook body, drops excluded events and buffers the rest.
	IngestEvents(ctx context.Context, contentType string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	validator    EventValidator
	filter       EventFilter
	flushEngine  batchers.FlushEngine
	maxBodyBytes int
}

func NewIngestionService(validator EventValidator, filter EventFilter, flushEngine batchers.FlushEngine, maxBodyBytes int) IngestionService {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &ingestionService{
		validator:    validator,
		filter:       filter,
		flushEngine:  flushEngine,
		maxBodyBytes: maxBodyBytes,
	}
}

func (s *ingestionService) IngestEvents(ctx context.Context, contentType string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)

	events, err := s.readAndValidate(contentType, r)
	if err != nil {
		logger.Debug().Err(err).Msg("rejected webhook payload")
		recordRejected(err)
		return nil, err
	}

	accepted := s.filter.Filter(events)
	recordEvents(events, accepted)

	result := &IngestResult{
		Received: len(events),
		Accepted: len(accepted),
		Filtered: len(events) - len(accepted),
	}

	if len(accepted) > 0 {
		result.BufferSize = s.flushEngine.Append(accepted)
		result.FlushScheduled = s.flushEngine.MaybeFlush()
	} else {
		result.BufferSize = s.flushEngine.BufferSize()
	}

	logger.Debug().
		Int(loggers.FieldEventCount, result.Accepted).
		Int(loggers.FieldBufferSize, result.BufferSize).
		Msgf("buffered %d of %d events (%d filtered)", result.Accepted, result.Received, result.Filtered)

	return result, nil
}

func (s *ingestionService) readAndValidate(contentType string, r io.Reader) ([]models.Event, error) {
	// An absent content type is tolerated; an explicit non-JSON one is not.
	if ct := strings.ToLower(strings.TrimSpace(contentType)); ct != "" && !strings.Contains(ct, FormatJSON) {
		return nil, errMalformedPayload(fmt.Errorf("unsupported content type: %q", contentType))
	}

	if r == nil {
		return nil, errMalformedPayload(errors.New("empty request body"))
	}

	buf, err := s.readWithLimit(r, s.maxBodyBytes)
	if err != nil {
		return nil, err
	}

	return s.validator.Validate(buf)
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, errMalformedPayload(fmt.Errorf("failed to read body: %w", err))
	}
	if len(buf) > max {
		return nil, errMalformedPayload(fmt.Errorf("body too large: must be <= %d bytes", max))
	}
	return buf, nil
}

func recordRejected(err error) {
	code := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricBatchRejectedTotal.WithLabelValues(code).Inc()
}

// recordEvents counts accepted events and, per type, the difference dropped by the filter.
func recordEvents(received, accepted []models.Event) {
	dropped := make(map[models.EventType]int)
	for _, event := range received {
		dropped[event.EventType]++
	}
	for _, event := range accepted {
		dropped[event.EventType]--
		metricEventsTotal.WithLabelValues(string(event.EventType), outcomeAccepted).Inc()
	}
	for eventType, n := range dropped {
		if n > 0 {
			metricEventsTotal.WithLabelValues(string(eventType), outcomeFiltered).Add(float64(n))
		}
	}
}
