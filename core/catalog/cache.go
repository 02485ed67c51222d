package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Snapshot is an immutable catalog load.
type Snapshot struct {
	// Entries is the loaded catalog; callers must not modify it.
	Entries []Entry

	// Built is the timestamp when this snapshot was loaded.
	Built time.Time
}

// Cache serves catalog snapshots from a Source with a TTL.
// Concurrent misses share a single load.
type Cache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu   sync.RWMutex
	snap *Snapshot
	sf   singleflight.Group
}

// NewCache creates a cache in front of source. A zero ttl reloads on every call.
func NewCache(source Source, ttl time.Duration) *Cache {
	return &Cache{source: source, ttl: ttl, now: time.Now}
}

func (c *Cache) fresh(s *Snapshot) bool {
	if s == nil || c.ttl == 0 {
		return false
	}
	return c.now().Sub(s.Built) <= c.ttl
}

// Get returns the current snapshot, loading it when missing or expired.
func (c *Cache) Get(ctx context.Context) (*Snapshot, error) {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()

	if c.fresh(snap) {
		return snap, nil
	}

	result, err, _ := c.sf.Do("catalog", func() (interface{}, error) {
		// Double-check after joining the flight.
		c.mu.RLock()
		snap := c.snap
		c.mu.RUnlock()
		if c.fresh(snap) {
			return snap, nil
		}

		entries, err := c.source.Load(ctx)
		if err != nil {
			return nil, err
		}
		next := &Snapshot{Entries: entries, Built: c.now()}

		c.mu.Lock()
		c.snap = next
		c.mu.Unlock()
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// Invalidate drops the cached snapshot.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}
