// Package store binds one collection name to the cache boundary and
// enforces the engine's only mutation discipline: read an immutable
// snapshot, reconcile, replace the whole collection.
package store

import (
	"github.com/naatacademy/kalaamdesk/internal/cache"
	"github.com/naatacademy/kalaamdesk/internal/record"
)

// Store is the record store for a single collection. Get is the only reader
// and Replace the only mutator exposed to the reconcilers - there is no
// partial-update API, which forces every reconciler to produce the full next
// collection itself.
type Store struct {
	cache cache.Cache
	name  string
}

// New creates a store over the named collection.
func New(c cache.Cache, name string) *Store {
	return &Store{cache: c, name: name}
}

// Name returns the collection name this store owns.
func (s *Store) Name() string {
	return s.name
}

// Get returns an immutable snapshot of the collection. Callers may hold and
// mutate the snapshot freely; it never aliases cache state.
func (s *Store) Get() (record.Collection, error) {
	c, err := s.cache.Get(s.name)
	if err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// Replace swaps in the full next collection. Last replace wins; there is no
// merge-of-merges across concurrent edits.
func (s *Store) Replace(c record.Collection) error {
	return s.cache.Set(s.name, c)
}
