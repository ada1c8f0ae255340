package component

import "time"

// EmptyChart creates a ChartComponent skeleton carrying metadata (chart
// type, title, axis labels) but no series data.
func EmptyChart(t *Tracker, id, chartType, title string, xAxis []string) Record {
	data := map[string]any{
		"chart_type": chartType,
		"title":      title,
		"x_axis":     xAxis,
		"series":     []Series{},
	}
	t.Set(id, map[string]any{
		"chart_type": chartType,
		"title":      title,
		"x_axis":     xAxis,
		"series":     []Series{},
	})
	return Record{Type: TypeChart, ID: id, Data: data}
}

// CumulativeChartUpdate appends newValues to the series matching label and
// returns a wire record carrying the FULL cumulative values array for that
// label. This deliberately contrasts with TableRowUpdate, which sends only
// deltas; consumers replace the chart series array wholesale.
func CumulativeChartUpdate(t *Tracker, id string, newValues []float64, label string) Record {
	cumulative := t.AppendSeriesValues(id, label, newValues)
	return Record{Type: TypeChart, ID: id, Data: map[string]any{
		"series": []Series{{Label: label, Values: cumulative}},
	}}
}

// FilledChart creates a complete single-shot ChartComponent record from
// fully prepared chart data.
func FilledChart(t *Tracker, id string, chartData map[string]any) Record {
	data := make(map[string]any, len(chartData)+1)
	for k, v := range chartData {
		data[k] = v
	}
	data["timestamp"] = time.Now().Format(time.RFC3339Nano)
	t.Set(id, data)
	return Record{Type: TypeChart, ID: id, Data: data}
}
