package uid

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULID generates lexicographically sortable 26-character ids.
type ULID struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewULID returns a ULID generator backed by monotonic crypto/rand entropy.
func NewULID() *ULID {
	return &ULID{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Generate returns a new ULID string.
func (u *ULID) Generate() string {
	u.mu.Lock()
	defer u.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(u.now()), u.entropy).String()
}
