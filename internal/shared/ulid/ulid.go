package ulid

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewULID generates a new ULID string for the current time.
var NewULID = func() string {
	return NewULIDAt(time.Now())
}

// NewULIDAt generates a ULID stamped with t. IDs made within the same millisecond still sort in
// creation order, so storage keys built from them list in flush order.
func NewULIDAt(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
