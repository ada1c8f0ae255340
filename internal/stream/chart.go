package stream

import (
	"context"
	"fmt"

	"github.com/streamforge/streamforge/internal/component"
	"github.com/streamforge/streamforge/internal/config"
	"github.com/streamforge/streamforge/internal/pattern"
	"github.com/streamforge/streamforge/internal/util"
)

type chartData struct {
	id          string
	chartType   string
	title       string
	xAxis       []string
	seriesLabel string
	values      []float64
}

// handleCharts streams one or more charts progressively, interleaving
// per-point cumulative updates round-robin across charts. Unlike tables,
// every update carries the full cumulative values array for its series.
func (s *Streamer) handleCharts(ctx context.Context, emit Emitter, tr *component.Tracker, message string) error {
	num := pattern.ChartCount(message)
	presets := pattern.ResolveChartPresets(num, pattern.DetectChartPresets(message))
	if len(presets) > s.cfg.MaxChartsPerResponse {
		presets = presets[:s.cfg.MaxChartsPerResponse]
	}
	num = len(presets)

	charts := s.prepareCharts(presets)

	// Stage 1: skeletons in quick succession.
	for _, c := range charts {
		empty := component.EmptyChart(tr, c.id, c.chartType, c.title, c.xAxis)
		if err := s.record(ctx, emit, empty); err != nil {
			return err
		}
		if err := s.sleep(ctx, s.cfg.QuickEmitDelay); err != nil {
			return err
		}
	}

	// Stage 2: loading text.
	if err := s.text(ctx, emit, "\n"); err != nil {
		return err
	}
	loading := fmt.Sprintf("Generating all %d charts", num)
	if num == 1 {
		loading = fmt.Sprintf("Generating %s chart", charts[0].chartType)
	}
	if err := s.words(ctx, emit, loading); err != nil {
		return err
	}
	if err := s.dots(ctx, emit, s.cfg.ComponentUpdateDelay); err != nil {
		return err
	}
	if err := s.text(ctx, emit, "\n"); err != nil {
		return err
	}

	// Stage 3: data points, round-robin across charts.
	maxPoints := 0
	for _, c := range charts {
		if len(c.values) > maxPoints {
			maxPoints = len(c.values)
		}
	}
	for pointIdx := 0; pointIdx < maxPoints; pointIdx++ {
		for _, c := range charts {
			if pointIdx >= len(c.values) {
				continue
			}
			update := component.CumulativeChartUpdate(tr, c.id, []float64{c.values[pointIdx]}, c.seriesLabel)
			if err := s.record(ctx, emit, update); err != nil {
				return err
			}
			if err := s.sleep(ctx, s.cfg.ChartPointDelay); err != nil {
				return err
			}
		}

		if (pointIdx+1)%2 == 0 && pointIdx < maxPoints-1 {
			if err := s.text(ctx, emit, fmt.Sprintf("\nLoaded %d/%d points...\n", pointIdx+1, maxPoints)); err != nil {
				return err
			}
		}
	}

	// Stage 4: completion with point totals.
	total := 0
	for _, c := range charts {
		total += len(c.values)
	}
	if num == 1 {
		return s.text(ctx, emit, fmt.Sprintf("\n✓ Chart completed with %d data points!", total))
	}
	return s.text(ctx, emit, fmt.Sprintf("\n✓ All %d charts completed with %d total data points!", num, total))
}

func (s *Streamer) prepareCharts(presets []string) []chartData {
	charts := make([]chartData, 0, len(presets))
	for _, name := range presets {
		p, ok := s.cfg.ChartPresets[name]
		if !ok {
			p = config.ChartPreset{
				ChartType:   component.ChartLine,
				Title:       "Sample Chart",
				XAxis:       []string{"A", "B", "C"},
				SeriesLabel: "Data",
				Values:      []float64{10, 20, 30},
			}
		}
		values := p.Values
		if len(values) > s.cfg.MaxChartPoints {
			values = values[:s.cfg.MaxChartPoints]
		}
		charts = append(charts, chartData{
			id:          util.NewComponentID(),
			chartType:   p.ChartType,
			title:       p.Title,
			xAxis:       p.XAxis,
			seriesLabel: p.SeriesLabel,
			values:      values,
		})
	}
	return charts
}
