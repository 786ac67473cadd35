// Package hints is an in-memory cache of accounts believed to exist on
// chain. It is advisory only: the ledger stays authoritative, and callers
// use entries to detect divergence rather than to answer existence checks.
// The cache may silently drift until the next Reconcile.
package hints

import (
	"sync"

	"github.com/gagliardetto/solana-go"
)

// Cache tracks addresses observed to exist. Safe for concurrent use.
type Cache struct {
	mu   sync.RWMutex
	seen map[solana.PublicKey]struct{}
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{seen: make(map[solana.PublicKey]struct{})}
}

// MarkExists records that an account was observed on chain.
func (c *Cache) MarkExists(key solana.PublicKey) {
	c.mu.Lock()
	c.seen[key] = struct{}{}
	c.mu.Unlock()
}

// BelievedToExist reports whether the account was previously observed.
// False only means "unknown", not "absent".
func (c *Cache) BelievedToExist(key solana.PublicKey) bool {
	c.mu.RLock()
	_, ok := c.seen[key]
	c.mu.RUnlock()
	return ok
}

// Reconcile overwrites the cached belief for a key with a fresh ledger
// observation.
func (c *Cache) Reconcile(key solana.PublicKey, exists bool) {
	c.mu.Lock()
	if exists {
		c.seen[key] = struct{}{}
	} else {
		delete(c.seen, key)
	}
	c.mu.Unlock()
}

// Forget removes a key from the cache.
func (c *Cache) Forget(key solana.PublicKey) {
	c.mu.Lock()
	delete(c.seen, key)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.seen)
}
