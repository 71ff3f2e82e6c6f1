package hwinfo

import "sync"

// SessionCache memoizes expensive source fetches and the final resolved
// record for the lifetime of one invocation. It is constructed once and
// passed by reference; there is no package-level state. Each slot is
// written at most once, so the single mutex doubles as the memoization
// barrier for multi-goroutine hosts.
type SessionCache struct {
	mu      sync.Mutex
	record  *DriverRecord
	fetches map[string]string
}

// NewSessionCache returns an empty cache.
func NewSessionCache() *SessionCache {
	return &SessionCache{fetches: make(map[string]string)}
}

// Fetch returns the cached value for key, invoking load exactly once on
// first use. Later callers see the stored value even if it is empty.
func (c *SessionCache) Fetch(key string, load func() string) string {
	c.mu.Lock()
	if v, ok := c.fetches[key]; ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	// load may be slow (it can run external commands); keep it outside
	// the lock. If two goroutines race here the first store wins.
	v := load()

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.fetches[key]; ok {
		return prev
	}
	c.fetches[key] = v
	return v
}

// Record returns the cached driver record, or nil if not yet resolved.
func (c *SessionCache) Record() *DriverRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record
}

// SetRecord stores the resolved record. The first store wins; the stored
// record is returned either way.
func (c *SessionCache) SetRecord(rec *DriverRecord) *DriverRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.record == nil {
		c.record = rec
	}
	return c.record
}
