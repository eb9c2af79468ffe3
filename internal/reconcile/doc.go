// Package reconcile merges pending edits from the three editing surfaces
// with an authoritative collection snapshot to produce the next collection.
//
// Three reconcilers exist, one per surface:
//
//   - Form: builds a single full record from structured form values plus the
//     original record, preserving every field the form does not expose.
//   - Table: rebuilds the whole collection from a grid edit buffer, merging
//     cell text over each row's original record.
//   - Document: parses a raw replacement document, validating only the
//     top-level array-of-objects shape.
//
// Failure policy: nothing here is fatal. The document path returns a
// FormatError and leaves the collection for the caller to keep; the SEO
// schema text box degrades to an empty object; an unparseable table cell
// keeps its raw text. Operator productivity wins over strict validation.
//
// Reconcilers never mutate the snapshot they are given - every operation
// works over clones and returns fresh values.
package reconcile
