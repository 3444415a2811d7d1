package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock for the ledgers. Every operation reads the
// clock exactly once and reuses that instant for all calculations in the
// call, so a deterministic implementation can drive the full state machine in
// tests.
type TimeProvider interface {
	// Now returns the current time
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// Until returns the duration until t
	Until(t time.Time) time.Duration
	// WithTimeout returns a context that is canceled after the given timeout
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
