package core

import (
	"context"
	"time"
)

// TimeProvider is the clock the domain reads "now" from.
// Implementations must be safe for concurrent use.
type TimeProvider interface {
	// Now returns the current instant
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// Until returns the duration until t
	Until(t time.Time) time.Duration
	// WithTimeout derives a context that is canceled after timeout
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
