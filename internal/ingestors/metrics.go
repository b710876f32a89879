package ingestors

import (
	"event-handler/internal/shared/metrics"
)

const (
	outcomeAccepted = "accepted"
	outcomeFiltered = "filtered"
)

var (
	metricEventsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "events_total",
		},
		[]string{"event_type", "outcome"},
	)

	metricBatchRejectedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_rejected_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
