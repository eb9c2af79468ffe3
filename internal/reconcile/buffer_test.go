package reconcile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naatacademy/kalaamdesk/internal/record"
)

func seedBuffer(t *testing.T) (*CellBuffer, record.Collection, []string) {
	t.Helper()
	col := record.Collection{
		{record.FieldID: "a", "title": "one", "layout": json.Number("2"), "hiddenField": "keep"},
		{record.FieldID: "b", "title": "two", "layout": json.Number("4")},
	}
	headers := []string{"id", "title", "layout"}
	return NewCellBuffer(col, headers), col, headers
}

func TestCellBufferSeedsFromSnapshot(t *testing.T) {
	buf, _, _ := seedBuffer(t)

	assert.Equal(t, 2, buf.Len())
	assert.Equal(t, "one", buf.Cell(0, "title"))
	assert.Equal(t, "2", buf.Cell(0, "layout"))
	// hidden field is not rendered
	assert.Equal(t, "", buf.Cell(0, "hiddenField"))
}

func TestCellBufferEditRoundTrip(t *testing.T) {
	buf, col, headers := seedBuffer(t)

	buf.Set(0, "title", "one edited")
	buf.Set(1, "layout", "6")

	next := ReconcileTable(col, headers, buf.Edits())
	require.Len(t, next, 2)
	assert.Equal(t, "one edited", next[0].String("title"))
	assert.Equal(t, json.Number("2"), next[0]["layout"])
	assert.Equal(t, "keep", next[0].String("hiddenField"))
	assert.Equal(t, json.Number("6"), next[1]["layout"])
	assert.Equal(t, "two", next[1].String("title"))
}

func TestCellBufferUntouchedCellsRoundTripTypes(t *testing.T) {
	col := record.Collection{
		{record.FieldID: "a", "meta": map[string]any{"lang": "ur"}, "published": true},
	}
	headers := Headers(col)
	buf := NewCellBuffer(col, headers)

	next := ReconcileTable(col, headers, buf.Edits())
	require.Len(t, next, 1)
	assert.Equal(t, map[string]any{"lang": "ur"}, next[0]["meta"])
	assert.Equal(t, true, next[0]["published"])
}

func TestCellBufferDeleteRow(t *testing.T) {
	buf, col, headers := seedBuffer(t)

	buf.DeleteRow(0)

	next := ReconcileTable(col, headers, buf.Edits())
	require.Len(t, next, 1)
	assert.Equal(t, "b", next[0].ID())
	assert.Equal(t, "two", next[0].String("title"))
}

func TestCellBufferAppendRow(t *testing.T) {
	buf, col, headers := seedBuffer(t)

	buf.AppendRow("_n3ccccccc")
	buf.Set(2, "title", "three")

	next := ReconcileTable(col, headers, buf.Edits())
	require.Len(t, next, 3)
	assert.Equal(t, "_n3ccccccc", next[2].ID())
	assert.Equal(t, "three", next[2].String("title"))
	assert.Equal(t, "", next[2]["layout"])
}

func TestCellBufferSetOutOfRange(t *testing.T) {
	buf, _, _ := seedBuffer(t)
	buf.Set(99, "title", "x") // ignored
	assert.Equal(t, 2, buf.Len())
}

func TestRenderCell(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"number", json.Number("42"), "42"},
		{"bool_true", true, "true"},
		{"bool_false", false, "false"},
		{"object", map[string]any{"a": json.Number("1")}, `{"a":1}`},
		{"array", []any{"x"}, `["x"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderCell(tt.v))
		})
	}
}
