package ingestors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"event-handler/internal/models"
	"event-handler/internal/shared/validators"
)

// requiredStringFields must be present on every event as JSON strings.
var requiredStringFields = []string{"event_id", "event_type", "source", "timestamp"}

var eventFieldNames = append([]string{"user_id", "properties"}, requiredStringFields...)

type EventValidator interface {
	// Validate decodes a webhook body and returns its events in order. Any invalid event
	// rejects the whole batch.
	Validate(body []byte) ([]models.Event, error)
}

type eventValidator struct {
	validate *validators.Validate
}

func NewEventValidator() EventValidator {
	return &eventValidator{validate: validators.New()}
}

func (v *eventValidator) Validate(body []byte) ([]models.Event, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errMalformedPayload(fmt.Errorf("body must be a JSON object: %w", err))
	}
	if envelope == nil {
		return nil, errMalformedPayload(errors.New("body must be a JSON object"))
	}

	rawEvents, ok := envelope["events"]
	if !ok {
		return nil, errMalformedPayload(errors.New("missing events"))
	}
	if !isJSONArray(rawEvents) {
		return nil, errMalformedPayload(errors.New("events must be an array"))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawEvents, &items); err != nil {
		return nil, errMalformedPayload(fmt.Errorf("events must be an array: %w", err))
	}

	events := make([]models.Event, 0, len(items))
	for i, item := range items {
		event, invalid := v.validateEvent(i, item)
		if invalid != nil {
			return nil, errInvalidEvent(invalid)
		}
		events = append(events, event)
	}

	return events, nil
}

func (v *eventValidator) validateEvent(index int, item json.RawMessage) (models.Event, *InvalidEventError) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
		return models.Event{}, &InvalidEventError{Index: index, Field: "event", Reason: "must be an object"}
	}

	eventID := stringField(fields, "event_id")
	for _, name := range requiredStringFields {
		raw, ok := fields[name]
		if !ok {
			return models.Event{}, &InvalidEventError{Index: index, EventID: eventID, Field: name, Reason: "is required"}
		}
		if !isJSONString(raw) {
			return models.Event{}, &InvalidEventError{Index: index, EventID: eventID, Field: name, Reason: "must be a string"}
		}
	}

	// Built from the exact keys checked above; encoding/json would fold case.
	event := models.Event{
		EventID:    eventID,
		UserID:     fields["user_id"],
		EventType:  models.EventType(stringField(fields, "event_type")),
		Source:     models.Source(stringField(fields, "source")),
		Timestamp:  stringField(fields, "timestamp"),
		Properties: fields["properties"],
	}

	for _, name := range slices.Sorted(maps.Keys(fields)) {
		if slices.Contains(eventFieldNames, name) {
			continue
		}
		if declared, ok := declaredFieldFold(name); ok {
			return models.Event{}, &InvalidEventError{Index: index, EventID: eventID, Field: name, Reason: "duplicates " + declared}
		}
		if event.Extra == nil {
			event.Extra = make(map[string]json.RawMessage)
		}
		event.Extra[name] = fields[name]
	}

	if err := v.validate.Struct(&event); err != nil {
		invalid := &InvalidEventError{Index: index, EventID: eventID, Field: "event", Reason: err.Error()}
		if fe, ok := validators.FirstFieldError(err); ok {
			invalid.Field = jsonFieldName(fe.Field())
			invalid.Reason = fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
		}
		return models.Event{}, invalid
	}

	return event, nil
}

// stringField returns the field as a string when it is one.
func stringField(fields map[string]json.RawMessage, name string) string {
	var s string
	if raw, ok := fields[name]; ok && isJSONString(raw) {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// declaredFieldFold reports the declared field a key differs from only by case.
func declaredFieldFold(name string) (string, bool) {
	for _, declared := range eventFieldNames {
		if strings.EqualFold(name, declared) {
			return declared, true
		}
	}
	return "", false
}

func jsonFieldName(structField string) string {
	switch structField {
	case "EventType":
		return "event_type"
	case "Source":
		return "source"
	}
	return structField
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
