package stream

import (
	"context"
	"fmt"

	"github.com/streamforge/streamforge/internal/component"
	"github.com/streamforge/streamforge/internal/util"
)

const (
	generatingUnitsText = "Generating units... please wait."
	unitsAddedText      = "Units added successfully!"
)

// delayedSingleCard emits one card with initial structural fields, waits the
// long configured delay, then emits one partial update adding units. The
// wire carries the delta; the frontend merges.
func (s *Streamer) delayedSingleCard(ctx context.Context, emit Emitter, tr *component.Tracker) error {
	id := util.NewComponentID()

	initial := component.InitialCard(tr, id, "Card Title", generatingUnitsText)
	if err := s.record(ctx, emit, initial); err != nil {
		return err
	}
	if err := s.sleep(ctx, s.cfg.QuickEmitDelay); err != nil {
		return err
	}

	if err := s.sleep(ctx, s.cfg.DelayedCardWait); err != nil {
		return err
	}

	update := component.PartialCard(tr, id, map[string]any{
		"description": unitsAddedText,
		"units":       150,
	})
	if err := s.record(ctx, emit, update); err != nil {
		return err
	}
	return s.sleep(ctx, s.cfg.QuickEmitDelay)
}

// singleCard emits a skeleton, streams loading text, then fills the card.
func (s *Streamer) singleCard(ctx context.Context, emit Emitter, tr *component.Tracker) error {
	id := util.NewComponentID()

	if err := s.record(ctx, emit, component.EmptyCard(tr, id)); err != nil {
		return err
	}
	if err := s.sleep(ctx, s.cfg.StreamDelay); err != nil {
		return err
	}

	if err := s.words(ctx, emit, "Generating your card"); err != nil {
		return err
	}
	if err := s.dots(ctx, emit, s.cfg.ComponentUpdateDelay); err != nil {
		return err
	}
	if err := s.text(ctx, emit, " "); err != nil {
		return err
	}

	filled := component.FilledCard(tr, id, "Dynamic Card", "Data loaded successfully from the backend", 150)
	if err := s.record(ctx, emit, filled); err != nil {
		return err
	}
	if err := s.sleep(ctx, s.cfg.StreamDelay); err != nil {
		return err
	}

	return s.text(ctx, emit, " All set!")
}

// delayedMultiCards emits n initial cards in quick succession, one shared
// delay phase, then n partial updates.
func (s *Streamer) delayedMultiCards(ctx context.Context, emit Emitter, tr *component.Tracker, n int) error {
	if n > s.cfg.MaxComponentsPerResponse {
		n = s.cfg.MaxComponentsPerResponse
	}

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := util.NewComponentID()
		ids = append(ids, id)
		initial := component.InitialCard(tr, id, fmt.Sprintf("Delayed Card #%d", i+1), generatingUnitsText)
		if err := s.record(ctx, emit, initial); err != nil {
			return err
		}
		if err := s.sleep(ctx, s.cfg.QuickEmitDelay); err != nil {
			return err
		}
	}

	if err := s.text(ctx, emit, fmt.Sprintf("\nProcessing %d delayed %s", n, plural("card", n))); err != nil {
		return err
	}
	if s.cfg.SimulateProcessing {
		if err := s.dots(ctx, emit, s.cfg.DelayedCardsWait/3); err != nil {
			return err
		}
	} else if err := s.sleep(ctx, s.cfg.DelayedCardsWait); err != nil {
		return err
	}
	if err := s.text(ctx, emit, "\n"); err != nil {
		return err
	}

	for i, id := range ids {
		update := component.PartialCard(tr, id, map[string]any{
			"description": unitsAddedText,
			"units":       (i + 1) * 50,
		})
		if err := s.record(ctx, emit, update); err != nil {
			return err
		}
		if err := s.sleep(ctx, s.cfg.QuickEmitDelay); err != nil {
			return err
		}
	}

	return s.text(ctx, emit, fmt.Sprintf("\n✓ All %d delayed %s completed!\n", n, plural("card", n)))
}

// normalMultiCards emits n skeletons, loading text, then n filled cards with
// a staggered delay between fills.
func (s *Streamer) normalMultiCards(ctx context.Context, emit Emitter, tr *component.Tracker, n int) error {
	if n > s.cfg.MaxComponentsPerResponse {
		n = s.cfg.MaxComponentsPerResponse
	}

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := util.NewComponentID()
		ids = append(ids, id)
		if err := s.record(ctx, emit, component.EmptyCard(tr, id)); err != nil {
			return err
		}
		if err := s.sleep(ctx, s.cfg.QuickEmitDelay); err != nil {
			return err
		}
	}

	if err := s.words(ctx, emit, fmt.Sprintf("Loading data for all %d cards", n)); err != nil {
		return err
	}
	if err := s.dots(ctx, emit, s.cfg.ComponentUpdateDelay); err != nil {
		return err
	}
	if err := s.text(ctx, emit, " "); err != nil {
		return err
	}

	for i, id := range ids {
		filled := component.FilledCard(tr, id,
			fmt.Sprintf("Card %d", i+1),
			fmt.Sprintf("This is card number %d with unique data", i+1),
			(i+1)*100)
		if err := s.record(ctx, emit, filled); err != nil {
			return err
		}
		if err := s.sleep(ctx, s.cfg.ComponentUpdateDelay); err != nil {
			return err
		}
	}

	return s.text(ctx, emit, " Complete!")
}

// incrementalLoading walks a single component through four stages: empty,
// title-only, title+description, full fill.
func (s *Streamer) incrementalLoading(ctx context.Context, emit Emitter, tr *component.Tracker) error {
	id := util.NewComponentID()

	if err := s.record(ctx, emit, component.EmptyCard(tr, id)); err != nil {
		return err
	}
	if err := s.sleep(ctx, s.cfg.QuickEmitDelay); err != nil {
		return err
	}

	if err := s.text(ctx, emit, "Watch the card load incrementally... "); err != nil {
		return err
	}
	if err := s.sleep(ctx, s.cfg.ComponentUpdateDelay); err != nil {
		return err
	}

	stages := []map[string]any{
		{"title": "Loading..."},
		{"title": "Progressive Card", "description": "Description loaded..."},
	}
	for _, partial := range stages {
		if err := s.record(ctx, emit, component.PartialCard(tr, id, partial)); err != nil {
			return err
		}
		if err := s.sleep(ctx, s.cfg.ComponentUpdateDelay); err != nil {
			return err
		}
	}

	filled := component.FilledCard(tr, id, "Progressive Card", "All data loaded successfully!", 100)
	if err := s.record(ctx, emit, filled); err != nil {
		return err
	}
	if err := s.sleep(ctx, s.cfg.QuickEmitDelay); err != nil {
		return err
	}

	return s.text(ctx, emit, " Done with incremental loading!")
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
