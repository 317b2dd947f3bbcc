package middleware

import (
	"context"
	"sync"
	"time"
)

// MemoryBlacklist keeps revoked tokens in process memory. It stands in for
// Redis in dev; revocations are lost on restart.
type MemoryBlacklist struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{tokens: make(map[string]time.Time), now: time.Now}
}

func (b *MemoryBlacklist) WriteJWTToBlacklist(_ context.Context, token string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	for t, exp := range b.tokens {
		if !now.Before(exp) {
			delete(b.tokens, t)
		}
	}
	b.tokens[token] = now.Add(ttl)
	return nil
}

func (b *MemoryBlacklist) IsJWTBlacklisted(_ context.Context, token string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	exp, ok := b.tokens[token]
	return ok && b.now().Before(exp), nil
}

var _ Blacklist = (*MemoryBlacklist)(nil)
