package reconcile

import (
	"sort"

	"github.com/naatacademy/kalaamdesk/internal/record"
)

// Headers returns the union of field names across all records, in order of
// first appearance. This is the column set a grid renders for a
// heterogeneous collection.
func Headers(c record.Collection) []string {
	var headers []string
	seen := make(map[string]struct{})
	for _, rec := range c {
		for _, k := range fieldOrder(rec) {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			headers = append(headers, k)
		}
	}
	return headers
}

// fieldOrder lists a record's fields with the reserved keys first, then the
// rest sorted, so header order is stable across runs despite map iteration.
func fieldOrder(rec record.Record) []string {
	reserved := []string{record.FieldID, record.FieldCreatedAt, record.FieldModifiedAt}
	out := make([]string, 0, len(rec))
	for _, k := range reserved {
		if _, ok := rec[k]; ok {
			out = append(out, k)
		}
	}
	rest := make([]string, 0, len(rec))
	for k := range rec {
		if k == record.FieldID || k == record.FieldCreatedAt || k == record.FieldModifiedAt {
			continue
		}
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// RowEdit is one grid row's pending state: the identifier of the original
// record (empty for rows that never round-tripped one) and the current text
// of every rendered cell.
type RowEdit struct {
	ID    string
	Cells map[string]string
}

// ReconcileTable rebuilds the full collection from the grid. For each edit
// row the original record is located by identifier, falling back to the
// row's position for freshly-added rows without one; the row starts as a
// clone of that record so hidden fields survive, then every rendered cell is
// merged over it.
//
// Cell text is coerced: valid JSON becomes the structured value, anything
// else stays raw text. Columns in headers with no value after the merge are
// padded with "" - only rendered columns, preserved hidden fields are never
// padded over.
//
// Output order is edit order, so reordering and appended rows come through.
//
// Known sharp edge, kept deliberately: when id-less rows are reordered
// before saving, the positional fallback attributes edits to the wrong
// original. Assign identifiers before reordering.
func ReconcileTable(original record.Collection, headers []string, edits []RowEdit) record.Collection {
	next := make(record.Collection, 0, len(edits))
	for i, edit := range edits {
		base := record.Record{}
		if rec, ok := original.Find(edit.ID); ok && edit.ID != "" {
			base = rec.Clone()
		} else if i < len(original) {
			base = original[i].Clone()
		}

		for field, text := range edit.Cells {
			if v, err := record.DecodeValue(text); err == nil {
				base[field] = v
			} else {
				// unparseable cell keeps its raw text
				base[field] = text
			}
		}

		for _, h := range headers {
			if _, ok := base[h]; !ok {
				base[h] = ""
			}
		}

		next = append(next, base)
	}
	return next
}

// DeleteRow returns the collection with exactly the row at index removed.
// An out-of-range index returns the collection unchanged.
func DeleteRow(c record.Collection, index int) record.Collection {
	if index < 0 || index >= len(c) {
		return c.Clone()
	}
	out := make(record.Collection, 0, len(c)-1)
	out = append(out, c[:index]...)
	return append(out, c[index+1:]...)
}

// BlankRow builds a fresh grid row: every header empty, plus the given
// identifier.
func BlankRow(headers []string, id string) record.Record {
	rec := make(record.Record, len(headers)+1)
	for _, h := range headers {
		rec[h] = ""
	}
	rec[record.FieldID] = id
	return rec
}
