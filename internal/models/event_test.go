package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_ForwardsOpaqueFieldsVerbatim(t *testing.T) {
	t.Parallel()

	in := `{"event_id":"e-1","user_id":{"user_id":"u-9","age":31},"event_type":"view","source":"apple",` +
		`"timestamp":"2026-10-19T08:15:00Z","properties":{"z":1,"a":{"nested":[1,2]}}}`

	var event Event
	require.NoError(t, json.Unmarshal([]byte(in), &event))

	out, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
	assert.Contains(t, string(out), `"properties":{"z":1,"a":{"nested":[1,2]}}`, "property order must be preserved")
}

func TestEvent_OmitsAbsentOptionalFields(t *testing.T) {
	t.Parallel()

	event := Event{EventID: "e-1", EventType: EventTypeClick, Source: SourceWeb, Timestamp: "2026-10-19T08:15:00Z"}

	out, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Equal(t, `{"event_id":"e-1","event_type":"click","source":"web","timestamp":"2026-10-19T08:15:00Z"}`, string(out))
}

func TestEvent_WritesExtraFieldsAfterDeclaredOnes(t *testing.T) {
	t.Parallel()

	event := Event{
		EventID:   "e-1",
		EventType: EventTypeClick,
		Source:    SourceWeb,
		Timestamp: "2026-10-19T08:15:00Z",
		Extra: map[string]json.RawMessage{
			"session_id": json.RawMessage(`"s-42"`),
			"app":        json.RawMessage(`{"version":"1.2.0"}`),
		},
	}

	out, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Equal(t,
		`{"event_id":"e-1","event_type":"click","source":"web","timestamp":"2026-10-19T08:15:00Z","app":{"version":"1.2.0"},"session_id":"s-42"}`,
		string(out))

	batch, err := json.Marshal([]Event{event})
	require.NoError(t, err)
	assert.Contains(t, string(batch), `"session_id":"s-42"`)
}

func TestFlushUnit_StorageDateIsUTC(t *testing.T) {
	t.Parallel()

	// 23:30 on the 18th in UTC-5 is already the 19th in UTC
	local := time.Date(2026, 10, 18, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	unit := &FlushUnit{FlushedAt: local}

	assert.Equal(t, "2026-10-19", unit.StorageDate())
}
