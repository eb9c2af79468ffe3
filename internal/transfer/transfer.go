// Package transfer serializes a collection to a downloadable transfer
// document and parses an uploaded one back into a candidate collection.
//
// Import is two-phase by design: Parse validates and produces a Pending
// document, and the caller commits it to the store only after its own
// confirmation step. The confirmation can be intercepted without
// re-parsing.
package transfer

import (
	"fmt"
	"io"

	"github.com/naatacademy/kalaamdesk/internal/reconcile"
	"github.com/naatacademy/kalaamdesk/internal/record"
)

// Export serializes the collection as a pretty-printed transfer document.
// Pure serialization - it always succeeds for collections built from decoded
// documents.
func Export(c record.Collection) ([]byte, error) {
	return record.EncodeDocument(c)
}

// Pending is a parsed upload awaiting the caller's confirmation before it
// may replace the live collection.
type Pending struct {
	collection record.Collection
}

// Collection returns the candidate collection. The caller replaces the
// store with it after confirmation.
func (p *Pending) Collection() record.Collection {
	return p.collection
}

// Len returns the number of records in the candidate collection.
func (p *Pending) Len() int {
	return len(p.collection)
}

// Parse reads an uploaded document and validates it exactly like the
// document reconciler: invalid JSON or a non-array top level yields a
// *reconcile.FormatError and the live collection stays untouched.
func Parse(r io.Reader) (*Pending, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	col, err := reconcile.ReconcileDocument(string(data))
	if err != nil {
		return nil, err
	}
	return &Pending{collection: col}, nil
}
