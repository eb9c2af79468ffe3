package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naatacademy/kalaamdesk/internal/cache"
	"github.com/naatacademy/kalaamdesk/internal/record"
)

// run executes the root command with the given args against a temp cache,
// returning stdout, stderr and the error.
func run(t *testing.T, cachePath string, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--cache", cachePath}, args...))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func seedCache(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	db, err := cache.Open(path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Set("kalaam", record.Collection{
		{record.FieldID: "k1", "title": "Ishq Nabi", "slug": "ishq-nabi"},
		{record.FieldID: "k2", "title": "Hello World"},
	}))
	return path
}

func TestListCountsRecords(t *testing.T) {
	path := seedCache(t)

	out, _, err := run(t, path, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "kalaam")
	assert.Contains(t, out, "2 records")
	assert.Contains(t, out, "poets")
}

func TestShowText(t *testing.T) {
	path := seedCache(t)

	out, _, err := run(t, path, "", "show", "kalaam")
	require.NoError(t, err)
	assert.Contains(t, out, "k1")
	assert.Contains(t, out, "Ishq Nabi")
}

func TestShowUnknownKind(t *testing.T) {
	path := seedCache(t)

	_, _, err := run(t, path, "", "show", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExportToStdout(t *testing.T) {
	path := seedCache(t)

	out, _, err := run(t, path, "", "export", "kalaam", "-o", "-")
	require.NoError(t, err)

	col, err := record.DecodeDocument([]byte(out))
	require.NoError(t, err)
	assert.Len(t, col, 2)
}

func TestImportWithYesFlag(t *testing.T) {
	path := seedCache(t)
	doc := filepath.Join(t.TempDir(), "kalaam.json")
	require.NoError(t, os.WriteFile(doc, []byte(`[{"id": "fresh", "title": "Imported"}]`), 0o644))

	_, errOut, err := run(t, path, "", "import", "kalaam", doc, "--yes")
	require.NoError(t, err)
	assert.Contains(t, errOut, "imported 1 records")

	db, err := cache.Open(path)
	require.NoError(t, err)
	defer db.Close()
	col, err := db.Get("kalaam")
	require.NoError(t, err)
	require.Len(t, col, 1)
	assert.Equal(t, "fresh", col[0].ID())
}

func TestImportDeclinedLeavesCollection(t *testing.T) {
	path := seedCache(t)
	doc := filepath.Join(t.TempDir(), "kalaam.json")
	require.NoError(t, os.WriteFile(doc, []byte(`[{"id": "fresh"}]`), 0o644))

	_, errOut, err := run(t, path, "n\n", "import", "kalaam", doc)
	require.NoError(t, err)
	assert.Contains(t, errOut, "cancelled")

	db, err := cache.Open(path)
	require.NoError(t, err)
	defer db.Close()
	col, err := db.Get("kalaam")
	require.NoError(t, err)
	assert.Len(t, col, 2)
}

func TestImportMalformedDocument(t *testing.T) {
	path := seedCache(t)
	doc := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{not an array}`), 0o644))

	_, _, err := run(t, path, "", "import", "kalaam", doc, "--yes")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	// collection untouched
	db, err := cache.Open(path)
	require.NoError(t, err)
	defer db.Close()
	col, err := db.Get("kalaam")
	require.NoError(t, err)
	assert.Len(t, col, 2)
}

func TestHistoryListsRevisions(t *testing.T) {
	path := seedCache(t)

	out, _, err := run(t, path, "", "history", "kalaam")
	require.NoError(t, err)
	assert.NotContains(t, out, "no revisions")
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestInvalidFormatRejected(t *testing.T) {
	path := seedCache(t)
	_, _, err := run(t, path, "", "--format", "xml", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
