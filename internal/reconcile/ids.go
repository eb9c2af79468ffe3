package reconcile

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/naatacademy/kalaamdesk/internal/record"
)

// IDGenerator produces candidate record identifiers. Candidates are not
// guaranteed unique on their own; UniqueID checks them against the live
// collection and regenerates on collision.
type IDGenerator interface {
	NewID() string
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomIDs generates "_" followed by nine base-36 characters. The tokens
// are not security material - math/rand suffices because uniqueness comes
// from the collision check, not from entropy.
//
// Thread-safety: RandomIDs is stateless and safe for concurrent use.
type RandomIDs struct{}

// NewID returns a fresh random identifier.
func (RandomIDs) NewID() string {
	var b strings.Builder
	b.Grow(10)
	b.WriteByte('_')
	for i := 0; i < 9; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return b.String()
}

// FixedIDs returns predetermined identifiers for deterministic tests.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedIDs struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedIDs creates a generator that returns ids in order.
//
// Example:
//
//	gen := NewFixedIDs("_aaa111111", "_bbb222222")
//	gen.NewID() // "_aaa111111"
//	gen.NewID() // "_bbb222222"
//	gen.NewID() // panic: all ids exhausted
func NewFixedIDs(ids ...string) *FixedIDs {
	return &FixedIDs{ids: ids}
}

// NewID returns the next predetermined identifier. Panics when exhausted so
// a test that consumes more ids than it planned fails loudly.
func (g *FixedIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.ids) {
		panic("FixedIDs: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

// UniqueID draws identifiers from gen until one does not collide with the
// live collection. Collisions are vanishingly rare with RandomIDs but are
// still checked, never assumed away.
func UniqueID(gen IDGenerator, existing record.Collection) string {
	id := gen.NewID()
	for existing.HasID(id) {
		id = gen.NewID()
	}
	return id
}
