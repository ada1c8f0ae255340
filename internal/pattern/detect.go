package pattern

import (
	"regexp"
	"strings"
)

// Keyword sets driving detection. Matching is case-insensitive via
// lowercasing the message once in Detect.
var (
	multiKeywords   = []string{"two", "2", "three", "3", "four", "4", "five", "5", "multiple", "several"}
	delayedKeywords = []string{"delayed", "partial"}
	loadingKeywords = []string{"loading", "incremental"}

	cardRegex    = regexp.MustCompile(`\b(cards?|components?)\b`)
	tableRegex   = regexp.MustCompile(`\b(tables?|sales|users?|products?)\b`)
	chartRegex   = regexp.MustCompile(`\b(charts?|lines?|bars?|graphs?|plots?)\b`)
	metricRegex  = regexp.MustCompile(`\b(trends?|revenue|growth|performance|metrics?)\b`)
	plannerRegex = regexp.MustCompile(`\b(ai|llm|plan|analyze|dashboard|intelligent|smart|insights?|summary)\b`)
)

// detector pairs an intent with its predicate. The slice order is the
// precedence order; the first matching predicate wins.
type detector struct {
	intent Intent
	match  func(string) bool
}

var detectors = []detector{
	{IntentDelayedSingleCard, isDelayedSingleCard},
	{IntentSingleCard, isSingleCard},
	{IntentDelayedMultiCards, isDelayedMultiCards},
	{IntentNormalMultiCards, isNormalMultiCards},
	{IntentIncrementalLoading, isIncrementalLoading},
	{IntentTableRequest, isTableRequest},
	{IntentChartRequest, isChartRequest},
}

// Detect classifies a user message. The planner pre-check has precedence
// over the pattern table; otherwise predicates are evaluated in order and
// the first match wins, falling through to default-text.
func Detect(message string) Intent {
	lower := strings.ToLower(message)

	if plannerRegex.MatchString(lower) {
		return IntentPlanner
	}
	return DetectCanned(message)
}

// DetectCanned classifies a message against the canned pattern table only,
// skipping the planner pre-check. Used when the planner path declines a
// message and it must be rerouted.
func DetectCanned(message string) Intent {
	lower := strings.ToLower(message)
	for _, d := range detectors {
		if d.match(lower) {
			return d.intent
		}
	}
	return IntentDefaultText
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func isDelayedSingleCard(lower string) bool {
	return containsAny(lower, delayedKeywords) &&
		strings.Contains(lower, "card") &&
		!containsAny(lower, multiKeywords)
}

func isSingleCard(lower string) bool {
	return strings.Contains(lower, "card") && !containsAny(lower, multiKeywords)
}

func isDelayedMultiCards(lower string) bool {
	return containsAny(lower, delayedKeywords) &&
		cardRegex.MatchString(lower) &&
		containsAny(lower, multiKeywords)
}

func isNormalMultiCards(lower string) bool {
	hasCardOrMulti := cardRegex.MatchString(lower) || containsAny(lower, multiKeywords)
	hasTableOrChart := tableRegex.MatchString(lower) || chartRegex.MatchString(lower) || metricRegex.MatchString(lower)
	return hasCardOrMulti && !hasTableOrChart
}

func isIncrementalLoading(lower string) bool {
	return containsAny(lower, loadingKeywords)
}

func isTableRequest(lower string) bool {
	return tableRegex.MatchString(lower)
}

func isChartRequest(lower string) bool {
	return chartRegex.MatchString(lower) || metricRegex.MatchString(lower)
}
