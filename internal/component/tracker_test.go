package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerGetUnknownID(t *testing.T) {
	tr := NewTracker()
	got := tr.Get("missing")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTrackerSetOverwrites(t *testing.T) {
	tr := NewTracker()
	tr.Set("a", map[string]any{"title": "one", "value": 1})
	tr.Set("a", map[string]any{"title": "two"})

	got := tr.Get("a")
	assert.Equal(t, "two", got["title"])
	assert.NotContains(t, got, "value")
}

func TestMergeShallowPartialWins(t *testing.T) {
	tr := NewTracker()
	tr.Set("a", map[string]any{"title": "old", "description": "keep"})

	merged := tr.MergeShallow("a", map[string]any{"title": "new", "units": 150})

	assert.Equal(t, "new", merged["title"])
	assert.Equal(t, "keep", merged["description"])
	assert.Equal(t, 150, merged["units"])
	assert.Equal(t, merged, tr.Get("a"))
}

// Applying the same partial twice must yield the same tracked state as
// applying it once.
func TestMergeShallowIdempotent(t *testing.T) {
	tr := NewTracker()
	tr.Set("a", map[string]any{"title": "base"})

	partial := map[string]any{"description": "done", "units": 42}
	once := tr.MergeShallow("a", partial)
	onceCopy := make(map[string]any, len(once))
	for k, v := range once {
		onceCopy[k] = v
	}
	twice := tr.MergeShallow("a", partial)

	assert.Equal(t, onceCopy, twice)
}

// Cumulative row count equals the sum of each call's new-row count, and row
// order equals call order concatenated.
func TestAppendRowsMonotonic(t *testing.T) {
	tr := NewTracker()
	tr.Set("t", map[string]any{"columns": []string{"Name", "Sales"}, "rows": [][]any{}})

	first := [][]any{{"Alice", 100}, {"Bob", 200}}
	second := [][]any{{"Carol", 300}}

	afterFirst := tr.AppendRows("t", first)
	assert.Len(t, afterFirst, 2)

	afterSecond := tr.AppendRows("t", second)
	require.Len(t, afterSecond, 3)
	assert.Equal(t, first[0], afterSecond[0])
	assert.Equal(t, first[1], afterSecond[1])
	assert.Equal(t, second[0], afterSecond[2])

	// Columns survive row appends.
	assert.Equal(t, []string{"Name", "Sales"}, tr.Get("t")["columns"])
	assert.Equal(t, afterSecond, rowsFrom(tr.Get("t")["rows"]))
}

func TestAppendRowsUnknownID(t *testing.T) {
	tr := NewTracker()
	got := tr.AppendRows("fresh", [][]any{{"x", 1}})
	assert.Len(t, got, 1)
}

// The Nth cumulative array equals the concatenation of all values arguments
// through call N, in order.
func TestAppendSeriesValuesCumulative(t *testing.T) {
	tr := NewTracker()
	tr.Set("c", map[string]any{"series": []Series{}})

	calls := [][]float64{{1000}, {1200, 1300}, {900}}
	var want []float64
	for _, vals := range calls {
		want = append(want, vals...)
		got := tr.AppendSeriesValues("c", "Sales", vals)
		assert.Equal(t, want, got)
	}
}

func TestAppendSeriesValuesMultipleLabels(t *testing.T) {
	tr := NewTracker()
	tr.AppendSeriesValues("c", "A", []float64{1})
	tr.AppendSeriesValues("c", "B", []float64{10})
	gotA := tr.AppendSeriesValues("c", "A", []float64{2})
	gotB := tr.AppendSeriesValues("c", "B", []float64{20})

	assert.Equal(t, []float64{1, 2}, gotA)
	assert.Equal(t, []float64{10, 20}, gotB)

	stored := seriesFrom(tr.Get("c")["series"])
	require.Len(t, stored, 2)
	assert.Equal(t, "A", stored[0].Label)
	assert.Equal(t, "B", stored[1].Label)
}

func TestTrackersAreIndependent(t *testing.T) {
	a := NewTracker()
	b := NewTracker()
	a.Set("id", map[string]any{"title": "a"})

	assert.Empty(t, b.Get("id"))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
}
