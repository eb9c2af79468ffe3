package record

import (
	"encoding/json"
	"fmt"
)

// Reserved field names. Everything else on a Record is an open bag owned by
// the entity kind, not by the engine.
const (
	FieldID         = "id"
	FieldCreatedAt  = "createdAt"
	FieldModifiedAt = "modifiedAt"
)

// Record is one entity (poem, writer, book, ...) as an open field map.
// Values are the decoded JSON tree: string, json.Number, bool, nil,
// map[string]any and []any.
type Record map[string]any

// ID returns the record's identifier as a string. Identifiers are usually
// strings but operator-supplied documents may carry numeric ids; those are
// normalized to their text form so lookups compare consistently.
func (r Record) ID() string {
	switch v := r[FieldID].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// String returns the named field as a string, or "" when the field is absent
// or not a string.
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Clone returns a deep copy of the record. Reconcilers start from a clone so
// the caller's snapshot is never mutated.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = cloneValue(elem)
		}
		return out
	case Record:
		return map[string]any(val.Clone())
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = cloneValue(elem)
		}
		return out
	default:
		// string, json.Number, bool, nil - immutable as stored
		return val
	}
}

// Collection is the ordered set of Records for one entity kind. Ordering is
// insertion order; identifiers are unique within a collection. All methods
// return new collections, the receiver is never mutated.
type Collection []Record

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i, rec := range c {
		out[i] = rec.Clone()
	}
	return out
}

// Find returns the record with the given identifier.
func (c Collection) Find(id string) (Record, bool) {
	for _, rec := range c {
		if rec.ID() == id {
			return rec, true
		}
	}
	return nil, false
}

// HasID reports whether any record carries the given identifier.
func (c Collection) HasID(id string) bool {
	_, ok := c.Find(id)
	return ok
}

// Upsert returns a new collection with rec updated in place when a record
// with the same identifier exists, appended otherwise. Updates keep the
// record's position; inserts go to the end.
func (c Collection) Upsert(rec Record) Collection {
	id := rec.ID()
	out := make(Collection, len(c), len(c)+1)
	copy(out, c)
	for i, existing := range out {
		if existing.ID() == id {
			out[i] = rec
			return out
		}
	}
	return append(out, rec)
}

// Remove returns a new collection without the record carrying the given
// identifier. Removing an unknown identifier is a no-op.
func (c Collection) Remove(id string) Collection {
	out := make(Collection, 0, len(c))
	for _, rec := range c {
		if rec.ID() == id {
			continue
		}
		out = append(out, rec)
	}
	return out
}
