package planner

import (
	"github.com/streamforge/streamforge/internal/component"
	"github.com/streamforge/streamforge/internal/util"
)

// fallbackComponents returns the static layout emitted when the model is
// unreachable or keeps failing validation. Fresh IDs on every call keep the
// layout safe to emit for concurrent requests.
func fallbackComponents() []component.Record {
	return []component.Record{
		{
			Type: component.TypeCard,
			ID:   util.NewComponentID(),
			Data: map[string]any{
				"title":       "Dashboard Summary",
				"description": "Here's an overview of your data",
				"units":       42,
			},
		},
		{
			Type: component.TypeTable,
			ID:   util.NewComponentID(),
			Data: map[string]any{
				"columns": []any{"Metric", "Value", "Status"},
				"rows": []any{
					[]any{"Total Sales", "$118,500", "Up"},
					[]any{"Active Users", "1,234", "Stable"},
					[]any{"Conversion Rate", "3.2%", "Up"},
				},
			},
		},
		{
			Type: component.TypeChart,
			ID:   util.NewComponentID(),
			Data: map[string]any{
				"chart_type": component.ChartLine,
				"title":      "Sample Trend",
				"x_axis":     []any{"Jan", "Feb", "Mar", "Apr", "May"},
				"series": []any{
					map[string]any{
						"label":  "Trend",
						"values": []any{100, 120, 150, 140, 180},
					},
				},
			},
		},
	}
}
