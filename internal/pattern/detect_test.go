package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"show me a card", IntentSingleCard},
		{"show me a component", IntentNormalMultiCards},
		{"show me a delayed card", IntentDelayedSingleCard},
		{"show me a partial card", IntentDelayedSingleCard},
		{"show me two cards", IntentNormalMultiCards},
		{"show me three delayed cards", IntentDelayedMultiCards},
		{"show me loading states", IntentIncrementalLoading},
		// "card" wins over "incremental": single-card sits earlier in the
		// precedence order.
		{"show me an incremental card", IntentSingleCard},
		{"show me a table", IntentTableRequest},
		{"show me two sales tables", IntentTableRequest},
		// Only plural "sales" routes to tables; the singular does not.
		{"show me a sale", IntentDefaultText},
		{"show me the users", IntentTableRequest},
		{"show me a chart", IntentChartRequest},
		{"show me two line charts", IntentChartRequest},
		{"revenue trends please", IntentChartRequest},
		{"analyze my dashboard", IntentPlanner},
		{"give me an intelligent summary", IntentPlanner},
		{"hello there", IntentDefaultText},
		{"", IntentDefaultText},
		// Word boundaries: "chair" must not trip the planner's "ai".
		{"I need a new chair", IntentDefaultText},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.message))
		})
	}
}

func TestDetectCannedSkipsPlannerCheck(t *testing.T) {
	// A message that trips both the planner pre-check and a canned
	// predicate routes to the canned intent when rerouted.
	msg := "analyze my sales table"
	assert.Equal(t, IntentPlanner, Detect(msg))
	assert.Equal(t, IntentTableRequest, DetectCanned(msg))

	// Planner keywords with no canned match fall through to default text.
	assert.Equal(t, IntentDefaultText, DetectCanned("analyze everything"))
}

func TestCardCount(t *testing.T) {
	assert.Equal(t, 2, CardCount("show me two cards"))
	assert.Equal(t, 3, CardCount("show me three cards"))
	assert.Equal(t, 4, CardCount("4 cards"))
	assert.Equal(t, 5, CardCount("five cards"))
	assert.Equal(t, 2, CardCount("several cards"))
}

func TestTableAndChartCount(t *testing.T) {
	assert.Equal(t, 1, TableCount("show me a table"))
	assert.Equal(t, 2, TableCount("show me two tables"))
	assert.Equal(t, 2, TableCount("multiple tables"))
	assert.Equal(t, 3, TableCount("three tables"))

	assert.Equal(t, 1, ChartCount("show me a chart"))
	assert.Equal(t, 2, ChartCount("2 charts"))
	assert.Equal(t, 3, ChartCount("three charts"))
}

func TestDetectTableTypes(t *testing.T) {
	assert.Equal(t, []string{"sales"}, DetectTableTypes("show me a table"))
	assert.Equal(t, []string{"users"}, DetectTableTypes("show me the user table"))
	assert.ElementsMatch(t, []string{"sales", "products"}, DetectTableTypes("sales and product tables"))
}

func TestResolveTableTypes(t *testing.T) {
	// Single detected type is duplicated to meet the count.
	assert.Equal(t, []string{"sales", "sales"}, ResolveTableTypes(2, []string{"sales"}))

	// Shortfall with mixed types is filled from the remaining presets.
	got := ResolveTableTypes(3, []string{"sales", "users"})
	assert.Len(t, got, 3)
	assert.Equal(t, []string{"sales", "users", "products"}, got)

	// Excess is trimmed.
	assert.Equal(t, []string{"sales"}, ResolveTableTypes(1, []string{"sales", "users"}))
}

func TestDetectChartPresets(t *testing.T) {
	assert.Equal(t, []string{"sales_line"}, DetectChartPresets("show me a chart"))
	assert.Equal(t, []string{"sales_line"}, DetectChartPresets("show me two line charts"))
	assert.Equal(t, []string{"revenue_bar"}, DetectChartPresets("revenue bar chart"))
	assert.Equal(t, []string{"performance_bar"}, DetectChartPresets("performance metrics chart"))
	assert.Equal(t, []string{"growth_line"}, DetectChartPresets("growth trend graph"))
}

func TestResolveChartPresets(t *testing.T) {
	assert.Equal(t, []string{"sales_line", "sales_line"}, ResolveChartPresets(2, []string{"sales_line"}))

	got := ResolveChartPresets(3, []string{"sales_line", "revenue_bar"})
	assert.Len(t, got, 3)
	assert.Equal(t, "sales_line", got[0])
	assert.Equal(t, "revenue_bar", got[1])
}
