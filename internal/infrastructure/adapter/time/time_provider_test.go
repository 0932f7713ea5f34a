package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedTimeProvider(t *testing.T) {
	now := time.Date(2015, 5, 13, 14, 30, 45, 0, time.UTC)
	provider := NewFixedTimeProvider(now)

	assert.Equal(t, now, provider.Now())
	assert.Equal(t, now, provider.Now())
	assert.Equal(t, time.Hour, provider.Since(now.Add(-time.Hour)))
	assert.Equal(t, 2*time.Minute, provider.Until(now.Add(2*time.Minute)))

	ctx, cancel := provider.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.True(t, deadline.After(time.Now()))
}

func TestRealTimeProvider(t *testing.T) {
	provider := NewRealTimeProvider()

	before := time.Now()
	now := provider.Now()
	assert.False(t, now.Before(before))
	assert.GreaterOrEqual(t, provider.Since(before), time.Duration(0))
	assert.Greater(t, provider.Until(time.Now().Add(time.Hour)), time.Duration(0))

	ctx, cancel := provider.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
