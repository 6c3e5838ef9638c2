package cache

import (
	"context"
	"sync"
	"time"
)

// MemorySessionStore is an in-process fallback for the Redis session store,
// used in development and tests. Revocations do not survive a restart.
type MemorySessionStore struct {
	mu    sync.RWMutex
	items map[string]time.Time
}

// NewMemorySessionStore creates a new in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	store := &MemorySessionStore{
		items: make(map[string]time.Time),
	}

	// Cleanup goroutine to remove expired revocations
	go store.cleanupExpired()

	return store
}

// Revoke marks the token revoked until its expiry
func (ms *MemorySessionStore) Revoke(_ context.Context, token string, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[revocationKey(token)] = time.Now().Add(ttl)
	return nil
}

// IsRevoked reports whether the token has been revoked
func (ms *MemorySessionStore) IsRevoked(_ context.Context, token string) (bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	expiry, exists := ms.items[revocationKey(token)]
	if !exists {
		return false, nil
	}
	return time.Now().Before(expiry), nil
}

// cleanupExpired periodically removes expired revocations
func (ms *MemorySessionStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ms.mu.Lock()
		now := time.Now()
		for key, expiry := range ms.items {
			if now.After(expiry) {
				delete(ms.items, key)
			}
		}
		ms.mu.Unlock()
	}
}
