package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryApprovalLock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)
	lock := NewMemoryApprovalLock(time.Minute)
	lock.now = func() time.Time { return now }

	release, ok, err := lock.TryLock(ctx, "quote:1:approval")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = lock.TryLock(ctx, "quote:1:approval")
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be refused")

	_, ok, _ = lock.TryLock(ctx, "quote:2:approval")
	assert.True(t, ok, "other keys are independent")

	release(ctx)
	release2, ok, _ := lock.TryLock(ctx, "quote:1:approval")
	require.True(t, ok, "released lock can be re-acquired")

	// A stale release from the first holder must not free the new holder's lock.
	release(ctx)
	_, ok, _ = lock.TryLock(ctx, "quote:1:approval")
	assert.False(t, ok)
	release2(ctx)
}

func TestMemoryApprovalLock_Expires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)
	lock := NewMemoryApprovalLock(time.Second)
	lock.now = func() time.Time { return now }

	_, ok, _ := lock.TryLock(ctx, "k")
	require.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok, _ = lock.TryLock(ctx, "k")
	assert.True(t, ok, "expired lock can be taken over")
}
