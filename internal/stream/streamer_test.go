package stream

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamforge/streamforge/internal/component"
	"github.com/streamforge/streamforge/internal/config"
	"github.com/streamforge/streamforge/internal/pattern"
	"github.com/streamforge/streamforge/internal/planner"
)

// captureEmitter records every chunk and can fail after a given count to
// simulate a consumer disconnect.
type captureEmitter struct {
	chunks    [][]byte
	failAfter int
}

func (c *captureEmitter) Emit(_ context.Context, chunk []byte) error {
	if c.failAfter > 0 && len(c.chunks) >= c.failAfter {
		return errors.New("consumer gone")
	}
	c.chunks = append(c.chunks, append([]byte(nil), chunk...))
	return nil
}

func (c *captureEmitter) joined() string {
	var b strings.Builder
	for _, ch := range c.chunks {
		b.Write(ch)
	}
	return b.String()
}

type stubPlanner struct {
	layout planner.Layout
	err    error
	calls  int
}

func (p *stubPlanner) GenerateLayout(_ context.Context, _ string) (planner.Layout, error) {
	p.calls++
	return p.layout, p.err
}

func fastSettings(t *testing.T) *config.Settings {
	t.Helper()
	cfg := config.Default()
	cfg.StreamDelay = 0
	cfg.ComponentUpdateDelay = 0
	cfg.TableRowDelay = 0
	cfg.ChartPointDelay = 0
	cfg.QuickEmitDelay = 0
	cfg.DelayedCardWait = 0
	cfg.DelayedCardsWait = 0
	cfg.SimulateProcessing = false
	return cfg
}

func newTestStreamer(t *testing.T, lp LayoutPlanner) *Streamer {
	t.Helper()
	return New(fastSettings(t), lp, slog.New(slog.NewTextHandler(&strings.Builder{}, nil)))
}

func TestStreamSingleCard(t *testing.T) {
	s := newTestStreamer(t, nil)
	emitter := &captureEmitter{}

	res, err := s.Stream(context.Background(), "show me a card", emitter)
	require.NoError(t, err)
	assert.Equal(t, pattern.IntentSingleCard, res.Intent)
	assert.Equal(t, 1, res.Components)

	records := s.Codec().DecodeAll(emitter.joined())
	require.Len(t, records, 2)

	// Skeleton first, filled card second, same component id.
	assert.Equal(t, component.TypeCard, records[0].Type)
	assert.Empty(t, records[0].Data)
	assert.Equal(t, records[0].ID, records[1].ID)
	assert.Equal(t, "Dynamic Card", records[1].Data["title"])
	assert.Equal(t, "Data loaded successfully from the backend", records[1].Data["description"])

	out := emitter.joined()
	assert.Contains(t, out, "Generating your card")
	assert.Contains(t, out, "All set!")
}

func TestStreamDelayedSingleCard(t *testing.T) {
	s := newTestStreamer(t, nil)
	emitter := &captureEmitter{}

	res, err := s.Stream(context.Background(), "show me a delayed card", emitter)
	require.NoError(t, err)
	assert.Equal(t, pattern.IntentDelayedSingleCard, res.Intent)

	records := s.Codec().DecodeAll(emitter.joined())
	require.Len(t, records, 2)
	assert.Equal(t, "Card Title", records[0].Data["title"])

	// The wire update carries only the delta fields.
	assert.Equal(t, records[0].ID, records[1].ID)
	assert.Equal(t, "Units added successfully!", records[1].Data["description"])
	assert.Equal(t, float64(150), records[1].Data["units"])
	assert.NotContains(t, records[1].Data, "title")
}

func TestStreamMultiCardsCount(t *testing.T) {
	s := newTestStreamer(t, nil)
	emitter := &captureEmitter{}

	res, err := s.Stream(context.Background(), "show me three cards", emitter)
	require.NoError(t, err)
	assert.Equal(t, pattern.IntentNormalMultiCards, res.Intent)
	assert.Equal(t, 3, res.Components)

	records := s.Codec().DecodeAll(emitter.joined())
	require.Len(t, records, 6)
	for _, rec := range records[:3] {
		assert.Empty(t, rec.Data)
	}
	assert.Equal(t, "Card 1", records[3].Data["title"])
	assert.Equal(t, "Card 3", records[5].Data["title"])
}

func TestStreamTwoSalesTables(t *testing.T) {
	s := newTestStreamer(t, nil)
	emitter := &captureEmitter{}

	res, err := s.Stream(context.Background(), "show me two sales tables", emitter)
	require.NoError(t, err)
	assert.Equal(t, pattern.IntentTableRequest, res.Intent)
	assert.Equal(t, 2, res.Components)

	records := s.Codec().DecodeAll(emitter.joined())
	// 2 skeletons + 5 rows per table.
	require.Len(t, records, 12)

	skeletons := records[:2]
	for _, rec := range skeletons {
		assert.Equal(t, component.TypeTable, rec.Type)
		assert.Equal(t, []any{"Name", "Sales", "Region"}, rec.Data["columns"])
		assert.Empty(t, rec.Data["rows"])
	}
	assert.NotEqual(t, skeletons[0].ID, skeletons[1].ID)

	// Every row update carries exactly one new row, never the full set.
	for _, rec := range records[2:] {
		rows, ok := rec.Data["rows"].([]any)
		require.True(t, ok)
		assert.Len(t, rows, 1)
	}

	assert.Contains(t, emitter.joined(), "✓ All 2 tables loaded with 10 total rows!")
}

func TestStreamChartCumulativeValues(t *testing.T) {
	s := newTestStreamer(t, nil)
	emitter := &captureEmitter{}

	res, err := s.Stream(context.Background(), "show me a chart", emitter)
	require.NoError(t, err)
	assert.Equal(t, pattern.IntentChartRequest, res.Intent)

	records := s.Codec().DecodeAll(emitter.joined())
	require.Greater(t, len(records), 1)
	assert.Equal(t, component.TypeChart, records[0].Type)
	assert.Equal(t, "line", records[0].Data["chart_type"])

	// Each point update carries the full cumulative array, one longer each
	// time.
	for i, rec := range records[1:] {
		series, ok := rec.Data["series"].([]any)
		require.True(t, ok)
		require.Len(t, series, 1)
		entry := series[0].(map[string]any)
		values := entry["values"].([]any)
		assert.Len(t, values, i+1)
	}

	assert.Contains(t, emitter.joined(), "✓ Chart completed with")
}

func TestStreamDefaultText(t *testing.T) {
	s := newTestStreamer(t, nil)
	emitter := &captureEmitter{}

	res, err := s.Stream(context.Background(), "hello there", emitter)
	require.NoError(t, err)
	assert.Equal(t, pattern.IntentDefaultText, res.Intent)
	assert.Equal(t, 0, res.Components)
	assert.Empty(t, s.Codec().DecodeAll(emitter.joined()))
	assert.Contains(t, emitter.joined(), "progressive component")
}

func TestStreamPlannerPath(t *testing.T) {
	lp := &stubPlanner{layout: planner.Layout{
		Components: []component.Record{
			{Type: component.TypeCard, ID: "0190a6e2-1111-7000-8000-000000000001", Data: map[string]any{"title": "Summary"}},
		},
		FromCache: true,
	}}
	s := newTestStreamer(t, lp)
	emitter := &captureEmitter{}

	res, err := s.Stream(context.Background(), "analyze my dashboard", emitter)
	require.NoError(t, err)
	assert.Equal(t, pattern.IntentPlanner, res.Intent)
	assert.True(t, res.FromCache)
	assert.Equal(t, 1, res.Components)
	assert.Equal(t, 1, lp.calls)

	records := s.Codec().DecodeAll(emitter.joined())
	require.Len(t, records, 1)
	assert.Equal(t, "Summary", records[0].Data["title"])
}

func TestStreamPlannerFallbackToCanned(t *testing.T) {
	lp := &stubPlanner{err: errors.New("model unavailable")}
	s := newTestStreamer(t, lp)
	emitter := &captureEmitter{}

	res, err := s.Stream(context.Background(), "analyze my sales table", emitter)
	require.NoError(t, err)
	assert.Equal(t, pattern.IntentTableRequest, res.Intent)
	assert.Equal(t, 1, lp.calls)

	records := s.Codec().DecodeAll(emitter.joined())
	require.NotEmpty(t, records)
	assert.Equal(t, component.TypeTable, records[0].Type)
}

func TestStreamStopsOnEmitError(t *testing.T) {
	s := newTestStreamer(t, nil)
	emitter := &captureEmitter{failAfter: 1}

	_, err := s.Stream(context.Background(), "show me a card", emitter)
	require.Error(t, err)
	assert.Len(t, emitter.chunks, 1)
}

func TestStreamStopsOnContextCancel(t *testing.T) {
	cfg := fastSettings(t)
	cfg.DelayedCardWait = time.Hour
	s := New(cfg, nil, slog.New(slog.NewTextHandler(&strings.Builder{}, nil)))
	emitter := &captureEmitter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Stream(ctx, "show me a delayed card", emitter)
	require.ErrorIs(t, err, context.Canceled)
}
