package batchers

import (
	"event-handler/internal/shared/metrics"
)

var (
	metricBufferSize = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatching,
			Name:      "buffer_size",
		},
	)

	metricFlushTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatching,
			Name:      "flush_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricEventsFlushedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatching,
			Name:      "events_flushed_total",
		},
	)

	metricEventsDroppedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatching,
			Name:      "events_dropped_total",
		},
	)

	metricFlushDuration = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatching,
			Name:      "flush_latency",
			Buckets:   metrics.DefBuckets,
		},
	)
)
