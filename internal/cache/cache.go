// Package cache implements the cache boundary: the single source of truth
// the synchronization engine reads collections from and replaces them into.
//
// The boundary is two calls - Get and Set, one collection per name. The
// engine never touches any entry other than the one it owns, and Set always
// carries the full next collection; there is no partial-update surface.
//
// Two implementations exist: Memory for tests and embedding callers, and
// SQLite for durable single-file storage with a revision audit trail.
package cache

import (
	"sync"

	"github.com/naatacademy/kalaamdesk/internal/record"
)

// Cache is the external source of truth for collections, keyed by
// collection name. Get of a name that was never set returns an empty
// collection, not an error.
type Cache interface {
	Get(name string) (record.Collection, error)
	Set(name string, c record.Collection) error
}

// Memory is an in-memory Cache. Collections are cloned on the way in and
// out so callers never share mutable state with the cache.
type Memory struct {
	mu   sync.Mutex
	docs map[string]record.Collection
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]record.Collection)}
}

// Get returns a snapshot of the named collection.
func (m *Memory) Get(name string) (record.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.docs[name]
	if !ok {
		return record.Collection{}, nil
	}
	return c.Clone(), nil
}

// Set replaces the named collection. Last set wins.
func (m *Memory) Set(name string, c record.Collection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[name] = c.Clone()
	return nil
}
