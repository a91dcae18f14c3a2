package cache

import (
	"context"
	"sync"
	"time"

	"hvac_service/internal/usecase/interfaces"
)

// MemoryApprovalLock is the single-process fallback used when REDIS_ADDR is unset.
type MemoryApprovalLock struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	held  map[string]heldLock
	nonce uint64
}

type heldLock struct {
	nonce     uint64
	expiresAt time.Time
}

var _ interfaces.IApprovalLock = (*MemoryApprovalLock)(nil)

func NewMemoryApprovalLock(ttl time.Duration) *MemoryApprovalLock {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &MemoryApprovalLock{ttl: ttl, now: time.Now, held: map[string]heldLock{}}
}

func (l *MemoryApprovalLock) TryLock(_ context.Context, key string) (func(context.Context), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if h, ok := l.held[key]; ok && now.Before(h.expiresAt) {
		return nil, false, nil
	}
	l.nonce++
	nonce := l.nonce
	l.held[key] = heldLock{nonce: nonce, expiresAt: now.Add(l.ttl)}

	release := func(context.Context) {
		l.mu.Lock()
		defer l.mu.Unlock()
		if h, ok := l.held[key]; ok && h.nonce == nonce {
			delete(l.held, key)
		}
	}
	return release, true, nil
}
