// Package pattern classifies free-text chat messages into streaming intents
// using keyword and regex heuristics with an explicit precedence order.
package pattern

// Intent is the classified purpose of a user request, selecting which
// streaming pattern executes. Exactly one intent is chosen per request.
type Intent string

const (
	IntentPlanner            Intent = "planner"
	IntentDelayedSingleCard  Intent = "delayed_single_card"
	IntentSingleCard         Intent = "single_card"
	IntentDelayedMultiCards  Intent = "delayed_multi_cards"
	IntentNormalMultiCards   Intent = "normal_multi_cards"
	IntentIncrementalLoading Intent = "incremental_loading"
	IntentTableRequest       Intent = "table_request"
	IntentChartRequest       Intent = "chart_request"
	IntentDefaultText        Intent = "default_text"
)
