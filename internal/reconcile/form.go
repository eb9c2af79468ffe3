package reconcile

import (
	"strings"

	"github.com/naatacademy/kalaamdesk/internal/derive"
	"github.com/naatacademy/kalaamdesk/internal/record"
)

// FormValues holds the fields exposed by a structured edit form. Fields the
// form does not expose are simply absent and survive from the original
// record.
type FormValues map[string]any

// Default field names consumed by the form reconciler.
const (
	FieldTitle     = "title"
	FieldSlug      = "slug"
	FieldSeoSchema = "aeoSchema"
)

// Form builds a single full record from form values plus the original
// record. The zero value is not usable; use NewForm.
type Form struct {
	clock       Clock
	ids         IDGenerator
	schemaField string
}

// NewForm creates a form reconciler with the system clock and random ids.
func NewForm() *Form {
	return &Form{
		clock:       SystemClock{},
		ids:         RandomIDs{},
		schemaField: FieldSeoSchema,
	}
}

// NewFormWith creates a form reconciler with injected collaborators, for
// deterministic tests.
func NewFormWith(clock Clock, ids IDGenerator) *Form {
	return &Form{
		clock:       clock,
		ids:         ids,
		schemaField: FieldSeoSchema,
	}
}

// Submit produces the insert-or-update payload for one record.
//
// With original == nil a new record is created: a unique identifier is drawn
// against the live collection and the creation timestamp is set. With an
// original present the identifier is carried over unchanged, the
// modification timestamp is set and the creation timestamp is preserved.
//
// All fields present on the original but absent from values are copied
// forward verbatim - a thumbnail kept as a filename string survives a save
// that did not re-upload it, and so does any field this engine has never
// heard of.
//
// The SEO schema field is accepted as serialized text and parsed on submit;
// unparseable text degrades to an empty object without failing the save.
// The slug is always recomputed from the title and is never taken from
// values.
//
// Submit has no side effects; the caller inserts the returned record into
// the collection and replaces the store.
func (f *Form) Submit(original record.Record, values FormValues, existing record.Collection) record.Record {
	now := Timestamp(f.clock.Now())

	var next record.Record
	if original == nil {
		next = record.Record{
			record.FieldID:        UniqueID(f.ids, existing),
			record.FieldCreatedAt: now,
		}
	} else {
		next = original.Clone()
		next[record.FieldModifiedAt] = now
		if _, ok := next[record.FieldCreatedAt]; !ok {
			next[record.FieldCreatedAt] = now
		}
	}

	for k, v := range values {
		switch k {
		case record.FieldID, record.FieldCreatedAt, record.FieldModifiedAt:
			// id is immutable and timestamps are owned here
			continue
		case FieldSlug:
			// derived below, never hand-edited
			continue
		}
		next[k] = v
	}

	if text, ok := next[f.schemaField].(string); ok {
		next[f.schemaField] = parseSchemaText(text)
	}

	if _, ok := next[FieldTitle]; ok {
		next[FieldSlug] = derive.Slug(next.String(FieldTitle))
	}

	return next
}

// parseSchemaText parses the SEO schema text box leniently: empty or
// unparseable text becomes an empty object so a stray character in one text
// box cannot reject the whole submission.
func parseSchemaText(text string) any {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return map[string]any{}
	}
	v, err := record.DecodeValue(trimmed)
	if err != nil {
		return map[string]any{}
	}
	return v
}
