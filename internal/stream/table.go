package stream

import (
	"context"
	"fmt"

	"github.com/streamforge/streamforge/internal/component"
	"github.com/streamforge/streamforge/internal/pattern"
	"github.com/streamforge/streamforge/internal/util"
)

type tableData struct {
	id        string
	tableType string
	columns   []string
	rows      [][]any
}

// handleTables streams one or more tables progressively: all skeletons
// first, then rows interleaved round-robin across tables with occasional
// progress text, then a completion message with row totals.
func (s *Streamer) handleTables(ctx context.Context, emit Emitter, tr *component.Tracker, message string) error {
	num := pattern.TableCount(message)
	types := pattern.ResolveTableTypes(num, pattern.DetectTableTypes(message))
	if len(types) > s.cfg.MaxTablesPerResponse {
		types = types[:s.cfg.MaxTablesPerResponse]
	}
	num = len(types)

	tables := s.prepareTables(types)

	// Stage 1: skeletons in quick succession.
	for _, t := range tables {
		if err := s.record(ctx, emit, component.EmptyTable(tr, t.id, t.columns)); err != nil {
			return err
		}
		if err := s.sleep(ctx, s.cfg.QuickEmitDelay); err != nil {
			return err
		}
	}

	// Stage 2: loading text.
	if err := s.text(ctx, emit, "\n"); err != nil {
		return err
	}
	loading := fmt.Sprintf("Loading data for all %d tables", num)
	if num == 1 {
		loading = fmt.Sprintf("Here's your %s table. Loading data", tables[0].tableType)
	}
	if err := s.words(ctx, emit, loading); err != nil {
		return err
	}
	if err := s.dots(ctx, emit, s.cfg.ComponentUpdateDelay); err != nil {
		return err
	}
	if err := s.text(ctx, emit, "\n"); err != nil {
		return err
	}

	// Stage 3: rows, round-robin across tables.
	maxRows := 0
	for _, t := range tables {
		if len(t.rows) > maxRows {
			maxRows = len(t.rows)
		}
	}
	for rowIdx := 0; rowIdx < maxRows; rowIdx++ {
		for _, t := range tables {
			if rowIdx >= len(t.rows) {
				continue
			}
			update := component.TableRowUpdate(tr, t.id, [][]any{t.rows[rowIdx]})
			if err := s.record(ctx, emit, update); err != nil {
				return err
			}
			if err := s.sleep(ctx, s.cfg.TableRowDelay); err != nil {
				return err
			}
		}

		if (rowIdx+1)%2 == 0 && rowIdx < maxRows-1 {
			loaded := 0
			for _, t := range tables {
				loaded += min(rowIdx+1, len(t.rows))
			}
			if err := s.text(ctx, emit, fmt.Sprintf("Loaded %d rows... ", loaded)); err != nil {
				return err
			}
		}
	}

	// Stage 4: completion with row totals.
	total := 0
	for _, t := range tables {
		total += len(t.rows)
	}
	if num == 1 {
		return s.text(ctx, emit, fmt.Sprintf("\n✓ All %d rows loaded successfully!", total))
	}
	return s.text(ctx, emit, fmt.Sprintf("\n✓ All %d tables loaded with %d total rows!", num, total))
}

func (s *Streamer) prepareTables(types []string) []tableData {
	tables := make([]tableData, 0, len(types))
	for _, tableType := range types {
		columns, ok := s.cfg.TableColumnPresets[tableType]
		if !ok {
			columns = []string{"Column 1", "Column 2", "Column 3"}
		}
		rows := sampleRows(tableType)
		if len(rows) > s.cfg.MaxTableRows {
			rows = rows[:s.cfg.MaxTableRows]
		}
		tables = append(tables, tableData{
			id:        util.NewComponentID(),
			tableType: tableType,
			columns:   columns,
			rows:      rows,
		})
	}
	return tables
}
