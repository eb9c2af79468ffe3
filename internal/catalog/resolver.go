package catalog

import "github.com/naatacademy/kalaamdesk/internal/record"

// Unresolved is returned when a reference points at no known record.
const Unresolved = "N/A"

// Resolver maps reference ids to display text, built from sibling
// collection snapshots. Read-only presentation sugar: a dangling reference
// resolves to Unresolved, it is never an error.
type Resolver struct {
	display map[string]map[string]string // kind -> id -> text
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{display: make(map[string]map[string]string)}
}

// Add indexes a collection snapshot under its kind, using the kind's display
// field as the text.
func (r *Resolver) Add(kind Kind, c record.Collection) {
	idx := make(map[string]string, len(c))
	for _, rec := range c {
		id := rec.ID()
		if id == "" {
			continue
		}
		idx[id] = rec.String(kind.DisplayField)
	}
	r.display[kind.Name] = idx
}

// Resolve returns the display text for an id in the named kind.
func (r *Resolver) Resolve(kindName, id string) string {
	if text, ok := r.display[kindName][id]; ok && text != "" {
		return text
	}
	return Unresolved
}
