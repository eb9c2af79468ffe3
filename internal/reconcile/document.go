package reconcile

import "github.com/naatacademy/kalaamdesk/internal/record"

// ReconcileDocument parses a full serialized replacement for the collection.
// It fails with *FormatError when the text is not valid JSON or does not
// parse to a top-level array of objects. On success the parsed collection
// replaces the store verbatim - no per-record validation, by design: the raw
// document path is the escape hatch for bulk edits and trusts the operator.
func ReconcileDocument(text string) (record.Collection, error) {
	col, err := record.DecodeDocument([]byte(text))
	if err != nil {
		return nil, &FormatError{Reason: "invalid document", Err: err}
	}
	return col, nil
}
