// Package component implements the progressive UI component protocol: the
// record types exchanged with the transport, the per-request state tracker
// that merges partial updates, the wire codec, and the widget builders.
package component

// Component type names as they appear on the wire. The set is open for
// extension; the codec checks against the configured allow-list, not these
// constants.
const (
	TypeCard  = "SimpleComponent"
	TypeTable = "TableA"
	TypeChart = "ChartComponent"
)

// Chart type values accepted inside ChartComponent data.
const (
	ChartLine = "line"
	ChartBar  = "bar"
)

// Record is the unit exchanged between the streaming core and the transport.
// Data is an untyped payload whose shape is type-specific; an empty map
// signals a skeleton/placeholder.
type Record struct {
	Type string         `json:"type"`
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

// Series is one labelled value sequence inside ChartComponent data.
type Series struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}
