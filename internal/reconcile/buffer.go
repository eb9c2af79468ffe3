package reconcile

import (
	"encoding/json"
	"fmt"

	"github.com/naatacademy/kalaamdesk/internal/record"
)

// CellBuffer is the explicit in-memory edit buffer behind a grid: the
// current text of every editable cell, keyed by row position and field name,
// updated on every keystroke. Table reconciliation reads this buffer plus
// the original snapshot - never a rendered view.
type CellBuffer struct {
	headers []string
	rows    []bufferRow
}

type bufferRow struct {
	id    string
	cells map[string]string
}

// NewCellBuffer seeds a buffer from a collection snapshot: one row per
// record in order, one cell per header rendered as text.
func NewCellBuffer(c record.Collection, headers []string) *CellBuffer {
	b := &CellBuffer{headers: append([]string(nil), headers...)}
	for _, rec := range c {
		row := bufferRow{id: rec.ID(), cells: make(map[string]string, len(headers))}
		for _, h := range headers {
			row.cells[h] = RenderCell(rec[h])
		}
		b.rows = append(b.rows, row)
	}
	return b
}

// Headers returns the column set the buffer was rendered with.
func (b *CellBuffer) Headers() []string {
	return append([]string(nil), b.headers...)
}

// Len returns the number of rows.
func (b *CellBuffer) Len() int {
	return len(b.rows)
}

// Set records the current text of one cell. Out-of-range rows are ignored;
// fields outside the rendered headers are not, since a caller may render an
// extra column deliberately.
func (b *CellBuffer) Set(row int, field, text string) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	b.rows[row].cells[field] = text
}

// Cell returns the current text of one cell.
func (b *CellBuffer) Cell(row int, field string) string {
	if row < 0 || row >= len(b.rows) {
		return ""
	}
	return b.rows[row].cells[field]
}

// DeleteRow removes exactly one row by position.
func (b *CellBuffer) DeleteRow(row int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	b.rows = append(b.rows[:row], b.rows[row+1:]...)
}

// AppendRow adds a blank row with the given identifier at the end.
func (b *CellBuffer) AppendRow(id string) {
	cells := make(map[string]string, len(b.headers))
	for _, h := range b.headers {
		cells[h] = ""
	}
	cells[record.FieldID] = id
	b.rows = append(b.rows, bufferRow{id: id, cells: cells})
}

// Edits converts the buffer into the row edits fed to ReconcileTable, in
// display order.
func (b *CellBuffer) Edits() []RowEdit {
	edits := make([]RowEdit, len(b.rows))
	for i, row := range b.rows {
		cells := make(map[string]string, len(row.cells))
		for k, v := range row.cells {
			cells[k] = v
		}
		edits[i] = RowEdit{ID: row.id, Cells: cells}
	}
	return edits
}

// RenderCell renders a record value as grid cell text: strings as-is,
// structured values as compact JSON, absent values as "".
func RenderCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	default:
		return fmt.Sprint(val)
	}
}
