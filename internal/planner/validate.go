package planner

import (
	"fmt"

	"github.com/streamforge/streamforge/internal/component"
	"github.com/streamforge/streamforge/internal/util"
)

type limits struct {
	maxComponents  int
	maxTableRows   int
	maxChartPoints int
}

// validateComponents checks required fields per component type, truncates
// oversized payloads, and assigns fresh server-side IDs. Invalid components
// are dropped; an error is returned only when nothing survives, so the
// retry loop can re-prompt the model.
func validateComponents(raw []rawComponent, lim limits) ([]component.Record, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("layout contains no components")
	}
	if len(raw) > lim.maxComponents {
		raw = raw[:lim.maxComponents]
	}

	records := make([]component.Record, 0, len(raw))
	for _, rc := range raw {
		if !validComponent(rc, lim) {
			continue
		}
		records = append(records, component.Record{
			Type: rc.Type,
			ID:   util.NewComponentID(),
			Data: rc.Data,
		})
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no valid components in layout of %d", len(raw))
	}
	return records, nil
}

func validComponent(rc rawComponent, lim limits) bool {
	if rc.Data == nil {
		return false
	}
	switch rc.Type {
	case component.TypeCard:
		return requireFields(rc.Data, "title") == nil
	case component.TypeTable:
		if requireFields(rc.Data, "columns", "rows") != nil {
			return false
		}
		truncateRows(rc.Data, lim.maxTableRows)
		return true
	case component.TypeChart:
		if requireFields(rc.Data, "chart_type", "title", "x_axis", "series") != nil {
			return false
		}
		if ct, _ := rc.Data["chart_type"].(string); ct != component.ChartLine && ct != component.ChartBar {
			return false
		}
		truncateSeries(rc.Data, lim.maxChartPoints)
		return true
	default:
		return false
	}
}

func requireFields(data map[string]any, fields ...string) error {
	for _, f := range fields {
		v, ok := data[f]
		if !ok || v == nil {
			return fmt.Errorf("missing required field %q", f)
		}
		if s, isStr := v.(string); isStr && s == "" {
			return fmt.Errorf("empty required field %q", f)
		}
	}
	return nil
}

func truncateRows(data map[string]any, max int) {
	rows, ok := data["rows"].([]any)
	if !ok || len(rows) <= max {
		return
	}
	data["rows"] = rows[:max]
}

func truncateSeries(data map[string]any, max int) {
	series, ok := data["series"].([]any)
	if !ok {
		return
	}
	for _, entry := range series {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		values, ok := m["values"].([]any)
		if ok && len(values) > max {
			m["values"] = values[:max]
		}
	}
}
