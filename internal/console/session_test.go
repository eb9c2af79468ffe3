package console_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naatacademy/kalaamdesk/internal/cache"
	"github.com/naatacademy/kalaamdesk/internal/catalog"
	"github.com/naatacademy/kalaamdesk/internal/console"
	"github.com/naatacademy/kalaamdesk/internal/reconcile"
	"github.com/naatacademy/kalaamdesk/internal/record"
	"github.com/naatacademy/kalaamdesk/internal/store"
	"github.com/naatacademy/kalaamdesk/internal/testutil"
)

var sessionNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

type fixture struct {
	session *console.Session
	store   *store.Store
	confirm *testutil.Confirmer
	notify  *testutil.Notifier
}

func newFixture(t *testing.T, initial record.Collection, ids ...string) *fixture {
	t.Helper()

	st := store.New(cache.NewMemory(), "kalaam")
	if initial != nil {
		require.NoError(t, st.Replace(initial))
	}
	kind, ok := catalog.Default().Lookup("kalaam")
	require.True(t, ok)

	confirm := &testutil.Confirmer{Answer: true}
	notify := &testutil.Notifier{}

	var gen reconcile.IDGenerator = reconcile.RandomIDs{}
	if len(ids) > 0 {
		gen = reconcile.NewFixedIDs(ids...)
	}
	form := reconcile.NewFormWith(reconcile.FixedClock{T: sessionNow}, gen)

	s, err := console.NewSessionWith(st, kind, confirm, notify, form, gen)
	require.NoError(t, err)
	return &fixture{session: s, store: st, confirm: confirm, notify: notify}
}

func collection(t *testing.T, f *fixture) record.Collection {
	t.Helper()
	col, err := f.store.Get()
	require.NoError(t, err)
	return col
}

func TestSaveFormCreateAndUpdate(t *testing.T) {
	f := newFixture(t, nil, "_n1aaaaaaa")

	created, err := f.session.SaveForm("", reconcile.FormValues{"title": "Ishq Nabi"})
	require.NoError(t, err)
	assert.Equal(t, "_n1aaaaaaa", created.ID())

	_, err = f.session.SaveForm(created.ID(), reconcile.FormValues{"title": "Ishq Nabi ﷺ"})
	require.NoError(t, err)

	col := collection(t, f)
	require.Len(t, col, 1)
	assert.Equal(t, "ishq-nabi", col[0].String("slug"))
	assert.NotEmpty(t, f.notify.Infos())
}

func TestDeleteConfirmedAndDeclined(t *testing.T) {
	initial := record.Collection{{record.FieldID: "a"}, {record.FieldID: "b"}}

	t.Run("confirmed", func(t *testing.T) {
		f := newFixture(t, initial)
		done, err := f.session.Delete("a")
		require.NoError(t, err)
		assert.True(t, done)
		assert.Len(t, collection(t, f), 1)
	})

	t.Run("declined", func(t *testing.T) {
		f := newFixture(t, initial)
		f.confirm.Answer = false

		done, err := f.session.Delete("a")
		require.NoError(t, err)
		assert.False(t, done)
		assert.Len(t, collection(t, f), 2)
		assert.NotEmpty(t, f.confirm.Asked)
	})
}

func TestSaveTableFromBuffer(t *testing.T) {
	f := newFixture(t, record.Collection{
		{record.FieldID: "a", "title": "old", "hiddenField": "keep"},
	})

	buf := f.session.Buffer()
	buf.Set(0, "title", "new")
	require.NoError(t, f.session.SaveTable())

	col := collection(t, f)
	require.Len(t, col, 1)
	assert.Equal(t, "new", col[0].String("title"))
	assert.Equal(t, "keep", col[0].String("hiddenField"))
}

func TestAddRow(t *testing.T) {
	f := newFixture(t, record.Collection{{record.FieldID: "a", "title": "one"}}, "_n2bbbbbbb")

	rec, err := f.session.AddRow()
	require.NoError(t, err)
	assert.Equal(t, "_n2bbbbbbb", rec.ID())

	col := collection(t, f)
	require.Len(t, col, 2)
	assert.Equal(t, "", col[1].String("title"))
	// the refreshed buffer includes the new row
	assert.Equal(t, 2, f.session.Buffer().Len())
}

func TestSaveDocumentValidAndInvalid(t *testing.T) {
	f := newFixture(t, record.Collection{{record.FieldID: "a"}})

	f.session.SetDocument(`[{"id": "z", "title": "replaced"}]`)
	require.NoError(t, f.session.SaveDocument())
	col := collection(t, f)
	require.Len(t, col, 1)
	assert.Equal(t, "z", col[0].ID())

	f.session.SetDocument(`{not an array}`)
	err := f.session.SaveDocument()
	require.Error(t, err)

	// prior state kept, error surfaced
	col = collection(t, f)
	assert.Equal(t, "z", col[0].ID())
	require.NotEmpty(t, f.notify.Errors())
	assert.Contains(t, f.notify.Errors()[0], "Invalid JSON")
}

func TestImportConfirmedReplacesCollection(t *testing.T) {
	f := newFixture(t, record.Collection{{record.FieldID: "old"}})

	err := f.session.Import(strings.NewReader(`[{"id": "new", "title": "imported"}]`))
	require.NoError(t, err)

	col := collection(t, f)
	require.Len(t, col, 1)
	assert.Equal(t, "new", col[0].ID())
	require.NotEmpty(t, f.confirm.Asked)
	assert.Contains(t, f.confirm.Asked[0], "cache.kalaam")
}

func TestImportDeclinedLeavesCollection(t *testing.T) {
	f := newFixture(t, record.Collection{{record.FieldID: "old"}})
	f.confirm.Answer = false

	err := f.session.Import(strings.NewReader(`[{"id": "new"}]`))
	require.NoError(t, err)
	assert.Equal(t, "old", collection(t, f)[0].ID())
}

func TestImportMalformedLeavesCollection(t *testing.T) {
	f := newFixture(t, record.Collection{{record.FieldID: "old"}})

	err := f.session.Import(strings.NewReader(`{not an array}`))
	require.Error(t, err)

	assert.Equal(t, "old", collection(t, f)[0].ID())
	assert.Empty(t, f.confirm.Asked, "malformed import must fail before the confirm prompt")
	require.NotEmpty(t, f.notify.Errors())
	assert.Contains(t, f.notify.Errors()[0], "Import Error")
}

func TestExportUsesFixedFilename(t *testing.T) {
	f := newFixture(t, record.Collection{{record.FieldID: "a"}})

	var out strings.Builder
	require.NoError(t, f.session.Export(&out))
	assert.Contains(t, out.String(), `"id": "a"`)
	assert.Equal(t, "kalaam.json", f.session.ExportFilename())
}

func TestSwitchViewReserializesCurrentCollection(t *testing.T) {
	f := newFixture(t, record.Collection{{record.FieldID: "a", "title": "one"}})

	// edit through the grid while the table view is active
	f.session.Buffer().Set(0, "title", "edited")
	require.NoError(t, f.session.SaveTable())

	require.NoError(t, f.session.SwitchView(console.ViewDocument))
	assert.Equal(t, console.ViewDocument, f.session.View())
	// the document reflects the saved edit, not a stale serialization
	assert.Contains(t, f.session.Document(), "edited")

	// and back: the grid is reseeded from the live collection
	require.NoError(t, f.session.SwitchView(console.ViewTable))
	assert.Equal(t, "edited", f.session.Buffer().Cell(0, "title"))
}
