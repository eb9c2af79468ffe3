// Package console orchestrates the editing surfaces for one collection: the
// structured form, the inline-editable grid and the raw document editor, all
// reconciled against the same record store.
//
// The console itself has no UI dependency. Blocking prompts and
// fire-and-forget messages go through the injected Confirmer and Notifier
// collaborators, so the whole engine is testable with fakes.
package console

// Level classifies a notification.
type Level int

const (
	// Info reports a successful save or import.
	Info Level = iota
	// Error reports a format or validation failure.
	Error
)

// Confirmer is the blocking yes/no prompt invoked before destructive
// operations: importing a document that replaces a whole collection, and
// deleting a single record. Declining leaves the collection untouched.
type Confirmer interface {
	Confirm(message string) bool
}

// Notifier receives fire-and-forget human-readable messages after
// successful saves/imports and on failures. Not part of the data contract.
type Notifier interface {
	Notify(message string, level Level)
}
