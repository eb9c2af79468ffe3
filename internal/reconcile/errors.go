package reconcile

import "fmt"

// FormatError reports a replacement document that was rejected: either the
// text is not valid JSON or it does not parse to a top-level array of
// objects. The collection is left unchanged when a FormatError is returned -
// there is no partial replace.
type FormatError struct {
	// Reason is a human-readable description of what was rejected.
	Reason string

	// Err is the underlying parse diagnostic, if any.
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

// Unwrap returns the underlying parse diagnostic.
func (e *FormatError) Unwrap() error {
	return e.Err
}
