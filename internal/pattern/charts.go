package pattern

import (
	"regexp"
	"strings"
)

var (
	barContextRegex  = regexp.MustCompile(`\b(bar|revenue|performance)\b`)
	lineContextRegex = regexp.MustCompile(`\b(line|trend|growth|sales)\b`)
)

// allChartPresets is the fixed fallback fill order for mixed-preset
// requests.
var allChartPresets = []string{"sales_line", "revenue_bar", "growth_line", "performance_bar"}

// DetectChartPresets returns the chart presets named in the message;
// "sales_line" when none are named. Bar presets are detected before line
// presets, matching the precedence of the keyword rules.
func DetectChartPresets(message string) []string {
	lower := strings.ToLower(message)
	var presets []string
	presets = append(presets, detectBarPresets(lower)...)
	presets = append(presets, detectLinePresets(lower)...)
	if len(presets) == 0 {
		return []string{"sales_line"}
	}
	return presets
}

func detectBarPresets(lower string) []string {
	if !barContextRegex.MatchString(lower) {
		return nil
	}
	switch {
	case strings.Contains(lower, "revenue"):
		return []string{"revenue_bar"}
	case strings.Contains(lower, "performance"):
		return []string{"performance_bar"}
	case strings.Contains(lower, "bar"):
		return []string{"revenue_bar"}
	}
	return nil
}

func detectLinePresets(lower string) []string {
	if !lineContextRegex.MatchString(lower) {
		return nil
	}
	switch {
	case strings.Contains(lower, "growth"):
		return []string{"growth_line"}
	case strings.Contains(lower, "sales"):
		return []string{"sales_line"}
	case strings.Contains(lower, "line"), strings.Contains(lower, "trend"):
		return []string{"sales_line"}
	}
	return nil
}

// ResolveChartPresets turns a requested count and the detected presets into
// the final preset list, with the same duplication and fallback rules as
// tables.
func ResolveChartPresets(count int, detected []string) []string {
	return resolveTypes(count, detected, allChartPresets)
}
