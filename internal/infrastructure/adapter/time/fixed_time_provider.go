package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
)

// FixedTimeProvider always reports the same instant.
// The CLI uses it for --now, and tests use it to pin "today".
type FixedTimeProvider struct {
	now time.Time
}

// NewFixedTimeProvider creates a clock frozen at now
func NewFixedTimeProvider(now time.Time) core.TimeProvider {
	return &FixedTimeProvider{now: now}
}

// Now returns the frozen instant
func (p *FixedTimeProvider) Now() time.Time {
	return p.now
}

// Since returns the time elapsed between t and the frozen instant
func (p *FixedTimeProvider) Since(t time.Time) time.Duration {
	return p.now.Sub(t)
}

// Until returns the duration from the frozen instant until t
func (p *FixedTimeProvider) Until(t time.Time) time.Duration {
	return t.Sub(p.now)
}

// WithTimeout returns a context that will be canceled after the specified timeout.
// Deadlines still run on the system clock.
func (p *FixedTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
