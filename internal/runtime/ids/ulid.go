// Package ids generates client-assigned resource identifiers. ARI lets the
// client pick IDs for channels, playbacks, and snoops; using ULIDs keeps them
// unique and time-sortable, which makes correlating CDRs and logs easier.
package ids

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

// New returns a 26-character ULID suitable for channelId/playbackId request
// parameters.
func New() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return id.String()
}
