package component

import "time"

// EmptyTable creates a TableA skeleton with column headers but no rows.
// Columns are set once at creation and preserved across row updates.
func EmptyTable(t *Tracker, id string, columns []string) Record {
	data := map[string]any{
		"columns": columns,
		"rows":    [][]any{},
	}
	t.Set(id, map[string]any{"columns": columns, "rows": [][]any{}})
	return Record{Type: TypeTable, ID: id, Data: data}
}

// TableRowUpdate appends newRows to the tracked cumulative row list and
// returns a wire record carrying only the NEW rows. Columns are included so
// consumers can identify the table shape without prior state; the cumulative
// list lives only in the tracker.
func TableRowUpdate(t *Tracker, id string, newRows [][]any) Record {
	columns := t.Get(id)["columns"]
	t.AppendRows(id, newRows)
	if columns == nil {
		columns = []string{}
	}
	return Record{Type: TypeTable, ID: id, Data: map[string]any{
		"columns": columns,
		"rows":    newRows,
	}}
}

// FilledTable creates a complete single-shot TableA record. totalRows <= 0
// omits the total_rows field.
func FilledTable(t *Tracker, id string, columns []string, rows [][]any, totalRows int) Record {
	data := map[string]any{
		"columns":   columns,
		"rows":      rows,
		"timestamp": time.Now().Format(time.RFC3339Nano),
	}
	if totalRows > 0 {
		data["total_rows"] = totalRows
	}
	t.Set(id, data)
	return Record{Type: TypeTable, ID: id, Data: data}
}
