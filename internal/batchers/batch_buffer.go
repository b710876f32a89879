package batchers

import (
	"sync"

	"event-handler/internal/models"
)

// BatchBuffer accumulates accepted events until they are drained for a flush.
//
// All mutation happens under a single mutex. A drain swaps the backing slice for a fresh one,
// so the returned snapshot is never touched again by the buffer: appends racing with a drain
// land either entirely before the swap (and are part of the snapshot) or entirely after it.
type BatchBuffer struct {
	mu           sync.Mutex
	events       []models.Event
	capacityHint int
}

func NewBatchBuffer(capacityHint int) *BatchBuffer {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &BatchBuffer{
		events:       make([]models.Event, 0, capacityHint),
		capacityHint: capacityHint,
	}
}

// Append adds events to the tail of the buffer, preserving their order, and returns the new length.
func (b *BatchBuffer) Append(events []models.Event) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = append(b.events, events...)
	return len(b.events)
}

func (b *BatchBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.events)
}

func (b *BatchBuffer) SizeAtLeast(threshold int) bool {
	return b.Len() >= threshold
}

// DrainForFlush empties the buffer and returns its previous contents.
// It returns nil when the buffer is empty.
func (b *BatchBuffer) DrainForFlush() []models.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.swapLocked()
}

// DrainIfAtLeast drains the buffer only if it holds at least threshold events. The check and
// the swap happen under one lock, so concurrent callers can never both drain the same events.
func (b *BatchBuffer) DrainIfAtLeast(threshold int) ([]models.Event, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == 0 || len(b.events) < threshold {
		return nil, false
	}
	return b.swapLocked(), true
}

func (b *BatchBuffer) swapLocked() []models.Event {
	if len(b.events) == 0 {
		return nil
	}
	snapshot := b.events
	b.events = make([]models.Event, 0, b.capacityHint)
	return snapshot
}
