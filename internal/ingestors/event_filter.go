package ingestors

import (
	"event-handler/internal/models"
)

type EventFilter interface {
	// Filter returns the events whose type is not excluded, in their original order.
	Filter(events []models.Event) []models.Event
}

type eventFilter struct {
	excluded map[models.EventType]struct{}
}

// NewEventFilter drops events of the given types.
func NewEventFilter(excluded []models.EventType) EventFilter {
	set := make(map[models.EventType]struct{}, len(excluded))
	for _, eventType := range excluded {
		set[eventType] = struct{}{}
	}
	return &eventFilter{excluded: set}
}

// NewSignupEventFilter drops signup events.
func NewSignupEventFilter() EventFilter {
	return NewEventFilter([]models.EventType{models.EventTypeSignup})
}

func (f *eventFilter) Filter(events []models.Event) []models.Event {
	kept := make([]models.Event, 0, len(events))
	for _, event := range events {
		if _, skip := f.excluded[event.EventType]; skip {
			continue
		}
		kept = append(kept, event)
	}
	return kept
}
