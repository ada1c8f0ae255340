package pattern

import "strings"

// CardCount extracts the requested number of cards/components. Only reached
// under multi-card intents, so the default is 2 (covers "two", "multiple",
// "several"). Callers clamp to the configured maximum.
func CardCount(message string) int {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "three") || strings.Contains(lower, "3"):
		return 3
	case strings.Contains(lower, "four") || strings.Contains(lower, "4"):
		return 4
	case strings.Contains(lower, "five") || strings.Contains(lower, "5"):
		return 5
	default:
		return 2
	}
}

// TableCount extracts the requested number of tables; singular requests
// yield 1.
func TableCount(message string) int {
	return tableOrChartCount(strings.ToLower(message))
}

// ChartCount extracts the requested number of charts; singular requests
// yield 1.
func ChartCount(message string) int {
	return tableOrChartCount(strings.ToLower(message))
}

func tableOrChartCount(lower string) int {
	if strings.Contains(lower, "three") || strings.Contains(lower, "3") {
		return 3
	}
	if containsAny(lower, []string{"two", "2", "multiple", "several"}) {
		return 2
	}
	return 1
}
