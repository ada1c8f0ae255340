package stream

import (
	"context"

	"github.com/streamforge/streamforge/internal/component"
)

// runPlanner delegates layout generation to the external planner and emits
// the returned components as a flat, non-progressive burst with a small
// fixed delay between records. handled is false when the planner is
// unavailable or produced nothing usable, in which case the caller reroutes
// the message through the canned patterns.
func (s *Streamer) runPlanner(ctx context.Context, emit Emitter, tr *component.Tracker, message string) (fromCache, handled bool, err error) {
	if s.planner == nil {
		s.log.Info("planner unavailable, falling back to canned patterns")
		return false, false, nil
	}

	layout, err := s.planner.GenerateLayout(ctx, message)
	if err != nil || len(layout.Components) == 0 {
		if err != nil {
			s.log.Warn("planner failed, falling back to canned patterns", "error", err)
		}
		return false, false, nil
	}

	s.log.Info("planner layout generated",
		"components", len(layout.Components),
		"from_cache", layout.FromCache,
		"model", layout.ModelID)

	for _, rec := range layout.Components {
		if !s.codec.Validate(rec) {
			continue
		}
		tr.Set(rec.ID, rec.Data)
		if err := s.record(ctx, emit, rec); err != nil {
			return layout.FromCache, true, err
		}
		if err := s.sleep(ctx, s.cfg.QuickEmitDelay); err != nil {
			return layout.FromCache, true, err
		}
	}

	return layout.FromCache, true, nil
}
