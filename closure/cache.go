package closure

import (
	"sync"

	"github.com/ck-algebra/closure/term"
)

// Cache memoizes Closure results keyed by a term's canonical form. Spec §5
// explicitly permits ("recommended for closure") a memoization cache keyed
// by term identity; a *Cache is guarded by sync.RWMutex the way
// core.Graph guards its adjacency maps in the teacher library, since
// Closure may reasonably be invoked concurrently from multiple goroutines
// sharing one cache.
type Cache struct {
	mu sync.RWMutex
	m  map[string]*term.Term
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{m: make(map[string]*term.Term)}
}

// DefaultCache is the package-level cache used by Closure. Callers needing
// isolated memoization (independent computations that must not share
// state, or tests that want a clean slate) should use ClosureWith and their
// own *Cache instead.
var DefaultCache = NewCache()

func (c *Cache) get(key string) (*term.Term, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *Cache) put(key string, v *term.Term) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = v
}
