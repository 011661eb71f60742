package session

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// idPrefix marks session ids in logs and cache values.
const idPrefix = "cmss-"

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a fresh session id. Ids are ULIDs, so they sort by
// creation time, which makes session logs easy to correlate.
func NewID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return idPrefix + ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
