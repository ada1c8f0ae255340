package component

import "time"

// EmptyCard creates a SimpleComponent placeholder with no data, used to
// render an immediate skeleton in the frontend.
func EmptyCard(t *Tracker, id string) Record {
	t.Set(id, map[string]any{})
	return Record{Type: TypeCard, ID: id, Data: map[string]any{}}
}

// FilledCard creates a SimpleComponent with complete data, used to update a
// previously created placeholder.
func FilledCard(t *Tracker, id, title, description string, value int) Record {
	data := map[string]any{
		"title":       title,
		"description": description,
		"value":       value,
		"timestamp":   time.Now().Format(time.RFC3339Nano),
	}
	t.Set(id, data)
	return Record{Type: TypeCard, ID: id, Data: data}
}

// PartialCard creates an incremental update for an existing card. The wire
// record carries only the delta; the tracker carries the cumulative merged
// view. Consumers are expected to merge client-side.
func PartialCard(t *Tracker, id string, partial map[string]any) Record {
	t.MergeShallow(id, partial)
	return Record{Type: TypeCard, ID: id, Data: partial}
}

// InitialCard creates a SimpleComponent that already carries structural
// fields (title, date, a placeholder description) ahead of a delayed partial
// update.
func InitialCard(t *Tracker, id, title, description string) Record {
	data := map[string]any{
		"title":       title,
		"date":        time.Now().Format(time.RFC3339Nano),
		"description": description,
	}
	t.Set(id, data)
	return Record{Type: TypeCard, ID: id, Data: data}
}
