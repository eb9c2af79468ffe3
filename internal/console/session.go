package console

import (
	"fmt"
	"io"

	"github.com/naatacademy/kalaamdesk/internal/catalog"
	"github.com/naatacademy/kalaamdesk/internal/reconcile"
	"github.com/naatacademy/kalaamdesk/internal/record"
	"github.com/naatacademy/kalaamdesk/internal/store"
	"github.com/naatacademy/kalaamdesk/internal/transfer"
)

// View identifies the active editing surface for the collection. The two
// states are mutually exclusive and share the same underlying collection.
type View int

const (
	// ViewTable is the spreadsheet-like inline-editable grid.
	ViewTable View = iota
	// ViewDocument is the raw serialized-document editor.
	ViewDocument
)

const savedMessage = "Success! Data has been saved to the local cache."

// Session is the editing session for one collection: it owns the grid's
// cell buffer and the raw editor text, and funnels every save through the
// store's replace-whole-collection contract.
//
// Single-operator, single-session design: a Session is not safe for
// concurrent use.
type Session struct {
	store   *store.Store
	kind    catalog.Kind
	confirm Confirmer
	notify  Notifier
	form    *reconcile.Form
	ids     reconcile.IDGenerator

	view     View
	headers  []string
	buffer   *reconcile.CellBuffer
	document string
}

// NewSession opens a session over the kind's collection. The grid view is
// active initially.
func NewSession(st *store.Store, kind catalog.Kind, confirm Confirmer, notify Notifier) (*Session, error) {
	s := &Session{
		store:   st,
		kind:    kind,
		confirm: confirm,
		notify:  notify,
		form:    reconcile.NewForm(),
		ids:     reconcile.RandomIDs{},
		view:    ViewTable,
	}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSessionWith injects the form reconciler and id generator, for
// deterministic tests.
func NewSessionWith(st *store.Store, kind catalog.Kind, confirm Confirmer, notify Notifier, form *reconcile.Form, ids reconcile.IDGenerator) (*Session, error) {
	s, err := NewSession(st, kind, confirm, notify)
	if err != nil {
		return nil, err
	}
	s.form = form
	s.ids = ids
	return s, nil
}

// Kind returns the entity kind this session edits.
func (s *Session) Kind() catalog.Kind {
	return s.kind
}

// View returns the active editing surface.
func (s *Session) View() View {
	return s.view
}

// Collection returns a snapshot of the live collection.
func (s *Session) Collection() (record.Collection, error) {
	return s.store.Get()
}

// Refresh reseeds the active surface from the live collection. Called after
// every committed replace so neither surface ever shows a stale state.
func (s *Session) Refresh() error {
	col, err := s.store.Get()
	if err != nil {
		return err
	}
	s.headers = reconcile.Headers(col)
	s.buffer = reconcile.NewCellBuffer(col, s.headers)

	doc, err := transfer.Export(col)
	if err != nil {
		return err
	}
	s.document = string(doc)
	return nil
}

// SwitchView activates the other editing surface, re-deriving its content
// from the current in-memory collection - never from a stale cached string.
func (s *Session) SwitchView(v View) error {
	if v == s.view {
		return nil
	}
	if err := s.Refresh(); err != nil {
		return err
	}
	s.view = v
	return nil
}

// Buffer exposes the grid's cell edit buffer.
func (s *Session) Buffer() *reconcile.CellBuffer {
	return s.buffer
}

// Headers returns the grid's rendered column set.
func (s *Session) Headers() []string {
	return append([]string(nil), s.headers...)
}

// Document returns the raw editor's current text.
func (s *Session) Document() string {
	return s.document
}

// SetDocument records the raw editor's text as the operator types. Nothing
// is parsed or saved until SaveDocument.
func (s *Session) SetDocument(text string) {
	s.document = text
}

// SaveForm reconciles a structured form submission into the collection.
// originalID selects the record being edited; empty means create. The saved
// record is returned.
func (s *Session) SaveForm(originalID string, values reconcile.FormValues) (record.Record, error) {
	col, err := s.store.Get()
	if err != nil {
		return nil, err
	}
	var original record.Record
	if originalID != "" {
		original, _ = col.Find(originalID)
	}

	rec := s.form.Submit(original, values, col)
	if err := s.store.Replace(col.Upsert(rec)); err != nil {
		return nil, err
	}
	s.notify.Notify(savedMessage, Info)
	return rec, s.Refresh()
}

// Delete removes one record after confirmation. Returns false when the
// operator declined; the collection is untouched in that case.
func (s *Session) Delete(id string) (bool, error) {
	if !s.confirm.Confirm("Are you sure you want to delete this record?") {
		return false, nil
	}
	col, err := s.store.Get()
	if err != nil {
		return false, err
	}
	if err := s.store.Replace(col.Remove(id)); err != nil {
		return false, err
	}
	return true, s.Refresh()
}

// AddRow appends a blank grid row with a fresh identifier and saves it, so
// the new record is immediately part of the collection like any other.
func (s *Session) AddRow() (record.Record, error) {
	col, err := s.store.Get()
	if err != nil {
		return nil, err
	}
	headers := s.headers
	if len(headers) == 0 {
		headers = []string{record.FieldID, "title"}
	}
	rec := reconcile.BlankRow(headers, reconcile.UniqueID(s.ids, col))
	if err := s.store.Replace(append(col, rec)); err != nil {
		return nil, err
	}
	return rec, s.Refresh()
}

// SaveTable reconciles the grid's edit buffer against the live collection
// and replaces it.
func (s *Session) SaveTable() error {
	col, err := s.store.Get()
	if err != nil {
		return err
	}
	next := reconcile.ReconcileTable(col, s.headers, s.buffer.Edits())
	if err := s.store.Replace(next); err != nil {
		return err
	}
	s.notify.Notify(savedMessage, Info)
	return s.Refresh()
}

// SaveDocument parses the raw editor text as a full replacement. A format
// error is surfaced to the notifier and returned; the collection stays
// untouched.
func (s *Session) SaveDocument() error {
	col, err := reconcile.ReconcileDocument(s.document)
	if err != nil {
		s.notify.Notify(fmt.Sprintf("Invalid JSON: %v", err), Error)
		return err
	}
	if err := s.store.Replace(col); err != nil {
		return err
	}
	s.notify.Notify(savedMessage, Info)
	return s.Refresh()
}

// Import parses an uploaded transfer document and, after confirmation,
// replaces the whole collection. A parse failure or a declined confirmation
// leaves the collection untouched; only the former is an error.
func (s *Session) Import(r io.Reader) error {
	pending, err := transfer.Parse(r)
	if err != nil {
		s.notify.Notify(fmt.Sprintf("Import Error: %v", err), Error)
		return err
	}
	msg := fmt.Sprintf("This will replace all data in '%s'. Continue?", s.kind.CacheKey())
	if !s.confirm.Confirm(msg) {
		return nil
	}
	if err := s.store.Replace(pending.Collection()); err != nil {
		return err
	}
	s.notify.Notify(savedMessage, Info)
	return s.Refresh()
}

// Export writes the current collection as a transfer document. The target
// filename is fixed per kind; see ExportFilename.
func (s *Session) Export(w io.Writer) error {
	col, err := s.store.Get()
	if err != nil {
		return err
	}
	data, err := transfer.Export(col)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExportFilename is the fixed download filename for this collection kind.
func (s *Session) ExportFilename() string {
	return s.kind.ExportFile
}
