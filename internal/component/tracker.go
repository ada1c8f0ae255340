package component

// Tracker holds the cumulative server-side view of every component emitted
// during one request/response cycle. It is exclusively owned by the single
// task processing that request and must never be shared across requests;
// discard it when the stream ends.
//
// All operations are total: unknown ids behave as empty prior state.
type Tracker struct {
	states map[string]map[string]any
}

// NewTracker returns an empty request-scoped tracker.
func NewTracker() *Tracker {
	return &Tracker{states: make(map[string]map[string]any)}
}

// Set replaces the tracked state for id with data verbatim.
func (t *Tracker) Set(id string, data map[string]any) {
	t.states[id] = data
}

// Get returns the tracked state for id, or an empty payload if absent.
func (t *Tracker) Get(id string) map[string]any {
	if data, ok := t.states[id]; ok {
		return data
	}
	return map[string]any{}
}

// Len returns the number of tracked components.
func (t *Tracker) Len() int {
	return len(t.states)
}

// MergeShallow applies partial over the existing state (new keys win),
// stores the merged view and returns it.
func (t *Tracker) MergeShallow(id string, partial map[string]any) map[string]any {
	existing := t.Get(id)
	merged := make(map[string]any, len(existing)+len(partial))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	t.states[id] = merged
	return merged
}

// AppendRows concatenates newRows onto the tracked cumulative row list,
// preserving columns and call order, and returns the cumulative rows.
func (t *Tracker) AppendRows(id string, newRows [][]any) [][]any {
	existing := t.Get(id)
	rows := rowsFrom(existing["rows"])
	columns := existing["columns"]

	cumulative := make([][]any, 0, len(rows)+len(newRows))
	cumulative = append(cumulative, rows...)
	cumulative = append(cumulative, newRows...)

	merged := make(map[string]any, len(existing))
	for k, v := range existing {
		merged[k] = v
	}
	merged["columns"] = columns
	merged["rows"] = cumulative
	t.states[id] = merged

	return cumulative
}

// AppendSeriesValues concatenates newValues onto the series entry matching
// label (first match; created if absent), stores the full series list back
// and returns the cumulative values for that label only.
func (t *Tracker) AppendSeriesValues(id, label string, newValues []float64) []float64 {
	existing := t.Get(id)
	series := seriesFrom(existing["series"])

	var cumulative []float64
	found := false
	merged := make([]Series, 0, len(series)+1)
	for _, s := range series {
		if !found && s.Label == label {
			cumulative = append(append([]float64{}, s.Values...), newValues...)
			merged = append(merged, Series{Label: label, Values: cumulative})
			found = true
			continue
		}
		merged = append(merged, s)
	}
	if !found {
		cumulative = append([]float64{}, newValues...)
		merged = append(merged, Series{Label: label, Values: cumulative})
	}

	next := make(map[string]any, len(existing))
	for k, v := range existing {
		next[k] = v
	}
	next["series"] = merged
	t.states[id] = next

	return cumulative
}

// rowsFrom normalizes a tracked or decoded rows value to [][]any.
func rowsFrom(v any) [][]any {
	switch rows := v.(type) {
	case [][]any:
		return rows
	case []any:
		out := make([][]any, 0, len(rows))
		for _, r := range rows {
			if cells, ok := r.([]any); ok {
				out = append(out, cells)
			}
		}
		return out
	default:
		return nil
	}
}

// seriesFrom normalizes a tracked or decoded series value to []Series.
func seriesFrom(v any) []Series {
	switch s := v.(type) {
	case []Series:
		return s
	case []any:
		out := make([]Series, 0, len(s))
		for _, e := range s {
			m, ok := e.(map[string]any)
			if !ok {
				continue
			}
			entry := Series{}
			if label, ok := m["label"].(string); ok {
				entry.Label = label
			}
			if vals, ok := m["values"].([]any); ok {
				for _, val := range vals {
					if f, ok := val.(float64); ok {
						entry.Values = append(entry.Values, f)
					}
				}
			} else if vals, ok := m["values"].([]float64); ok {
				entry.Values = append([]float64{}, vals...)
			}
			out = append(out, entry)
		}
		return out
	default:
		return nil
	}
}
