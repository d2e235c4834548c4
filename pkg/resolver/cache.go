package resolver

import (
	"sync"
	"time"
)

// Entry is a release confirmed to be newer than a pinned ref.
type Entry struct {
	Latest     string
	ObservedAt time.Time
}

type CacheStats struct {
	Hits   int
	Misses int
}

// Cache maps an action name to its latest release for one invocation.
// Only confirmed-newer results are stored, so a lookup which found no update
// or failed is retried for the next reference of the same action.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*Entry
	hits    int
	misses  int
}

func NewCache() *Cache {
	return &Cache{
		entries: map[string]*Entry{},
	}
}

func (c *Cache) Get(name string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[name]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return entry, ok
}

func (c *Cache) Set(name string, entry *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = entry
}

func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Hits:   c.hits,
		Misses: c.misses,
	}
}
