// Package planner turns free-form user messages into component layouts by
// prompting a chat model, with validation, retries, caching, and a static
// fallback so layout generation never fails outright.
package planner

import (
	"time"

	"github.com/streamforge/streamforge/internal/component"
)

// Layout is the validated result of one planning request.
type Layout struct {
	Components     []component.Record
	FromCache      bool
	Fallback       bool
	ModelID        string
	ProcessingTime time.Duration
}

// rawComponent mirrors the JSON shape the model is asked to produce. IDs
// are assigned server-side after validation, so the model's id field (if
// any) is ignored.
type rawComponent struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}
