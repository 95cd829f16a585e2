// ABOUTME: Identifier generation for persisted records.
// ABOUTME: Record IDs are ULIDs; nested workout entries use UUIDs.
package models

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a lexically sortable unique ID whose time component is t.
func NewID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// NewEntryID returns an ID for an exercise entry inside a workout draft.
func NewEntryID() string {
	return uuid.NewString()
}
