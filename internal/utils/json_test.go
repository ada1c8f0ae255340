package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDelimited(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name:     "wrapped payload",
			response: "Here is your layout: $$[{\"type\":\"SimpleComponent\"}]$$ enjoy!",
			want:     `[{"type":"SimpleComponent"}]`,
		},
		{
			name:     "markdown fence around delimiters",
			response: "```json\n$$[1,2]$$\n```",
			want:     "[1,2]",
		},
		{
			name:     "no delimiters returns cleaned input",
			response: "```json\n[1,2]\n```",
			want:     "[1,2]",
		},
		{
			name:     "unterminated delimiter returns cleaned input",
			response: "$$[1,2]",
			want:     "$$[1,2]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDelimited(tt.response, "$$"))
		})
	}
}

func TestExtractAndParseJSON(t *testing.T) {
	type card struct {
		Title string `json:"title"`
		Units int    `json:"units"`
	}

	t.Run("plain JSON", func(t *testing.T) {
		got, err := ExtractAndParseJSON[card](`{"title":"A","units":3}`)
		require.NoError(t, err)
		assert.Equal(t, card{Title: "A", Units: 3}, got)
	})

	t.Run("prose around JSON", func(t *testing.T) {
		got, err := ExtractAndParseJSON[card]("Sure! {\"title\":\"A\",\"units\":3} hope that helps")
		require.NoError(t, err)
		assert.Equal(t, "A", got.Title)
	})

	t.Run("single quotes repaired", func(t *testing.T) {
		got, err := ExtractAndParseJSON[card](`{'title': 'A', 'units': 3}`)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Title)
	})

	t.Run("trailing comma repaired", func(t *testing.T) {
		got, err := ExtractAndParseJSON[map[string]any](`{"a": 1,}`)
		require.NoError(t, err)
		assert.Equal(t, float64(1), got["a"])
	})

	t.Run("truncated structure closed", func(t *testing.T) {
		got, err := ExtractAndParseJSON[map[string]any](`{"a": {"b": 1`)
		require.NoError(t, err)
		assert.NotNil(t, got["a"])
	})

	t.Run("no JSON", func(t *testing.T) {
		_, err := ExtractAndParseJSON[card]("nothing here")
		assert.Error(t, err)
	})
}

func TestRepairJSONSmartQuotes(t *testing.T) {
	repaired := RepairJSON("{“title”: “A”}")
	assert.Equal(t, `{"title": "A"}`, repaired)
}
