// Package transcript records interpreter exchanges for later review.
// A transcript is never read back into an engine.
package transcript

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store persists exchanges
type Store interface {
	Close() error

	// Append records one exchange
	Append(ctx context.Context, ex Exchange) error

	// Recent returns up to limit exchanges, newest first.
	// A limit <= 0 returns every exchange.
	Recent(ctx context.Context, limit int) ([]Exchange, error)
}

// Exchange is one line of input and the reply it produced
type Exchange struct {
	ID    string // ULID, sortable by time
	Line  string
	Kind  string
	Reply string
	At    time.Time
}

// IDs generates monotonic ULIDs. It is safe for concurrent use.
type IDs struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewIDs creates a new ID generator
func NewIDs() *IDs {
	return &IDs{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Next returns a ULID for time t
func (g *IDs) Next(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}
