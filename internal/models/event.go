package models

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	EventTypeClick    EventType = "click"
	EventTypeView     EventType = "view"
	EventTypePurchase EventType = "purchase"
	EventTypeSignup   EventType = "signup"
	EventTypePray     EventType = "pray"
	EventTypeShare    EventType = "share"
	EventTypeLike     EventType = "like"
)

type Source string

const (
	SourceWeb     Source = "web"
	SourceApple   Source = "apple"
	SourceAndroid Source = "android"
)

// Event is one user or system action received on the webhook.
//
// UserID and Properties are carried as raw JSON so they are forwarded to storage
// exactly as received (key order included) without being interpreted. Any other top-level
// field lands in Extra and is written back next to the declared ones.
//
// Example JSON:
//
//	{
//	  "event_id": "6f1c2d1e-5b0e-4c7a-9f55-0c1d2e3f4a5b",
//	  "user_id": "user_123",
//	  "event_type": "purchase",
//	  "source": "web",
//	  "timestamp": "2026-10-19T08:15:00Z",
//	  "properties": {"amount": 19.99, "product_id": "product_123"}
//	}
type Event struct {
	EventID    string          `json:"event_id"`
	UserID     json.RawMessage `json:"user_id,omitempty"`
	EventType  EventType       `json:"event_type" validate:"oneof=click view purchase signup pray share like"`
	Source     Source          `json:"source" validate:"oneof=web apple android"`
	Timestamp  string          `json:"timestamp"`
	Properties json.RawMessage `json:"properties,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// eventFields has Event's layout without its methods.
type eventFields Event

func (e Event) MarshalJSON() ([]byte, error) {
	declared, err := json.Marshal(eventFields(e))
	if err != nil || len(e.Extra) == 0 {
		return declared, err
	}

	extra, err := json.Marshal(e.Extra)
	if err != nil {
		return nil, err
	}

	// {declared...} + {extra...} => {declared...,extra...}
	out := make([]byte, 0, len(declared)+len(extra))
	out = append(out, declared[:len(declared)-1]...)
	out = append(out, ',')
	out = append(out, extra[1:]...)
	return out, nil
}

// EventBatch is the webhook request body.
type EventBatch struct {
	Events []Event `json:"events"`
}

// FlushUnit is the snapshot of buffered events owned by a single flush.
type FlushUnit struct {
	FlushID   string
	FlushedAt time.Time
	Events    []Event
}

// StorageDate returns the UTC calendar date the unit is filed under.
func (u *FlushUnit) StorageDate() string {
	return u.FlushedAt.UTC().Format(time.DateOnly)
}
