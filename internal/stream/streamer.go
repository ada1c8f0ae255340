// Package stream implements the pattern executor: for a detected intent it
// drives an ordered, delayed sequence of text chunks and encoded component
// emissions over a single cooperative control flow.
package stream

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/streamforge/streamforge/internal/component"
	"github.com/streamforge/streamforge/internal/config"
	"github.com/streamforge/streamforge/internal/pattern"
	"github.com/streamforge/streamforge/internal/planner"
)

// Emitter delivers one chunk to the transport. Handing a chunk over is the
// implicit suspension point between delays; a write error (e.g. the consumer
// disconnected) stops the producing task.
type Emitter interface {
	Emit(ctx context.Context, chunk []byte) error
}

// LayoutPlanner generates a component layout from free text. The production
// implementation never returns an error (worst case is a static fallback
// layout), but the orchestrator still guards against misbehaving
// implementations by falling back to the canned pattern path.
type LayoutPlanner interface {
	GenerateLayout(ctx context.Context, message string) (planner.Layout, error)
}

// Result summarizes one completed (or aborted) response stream.
type Result struct {
	Intent     pattern.Intent
	Components int
	FromCache  bool
}

// Streamer routes messages to pattern handlers and owns the codec used to
// encode component records inline.
type Streamer struct {
	cfg     *config.Settings
	codec   *component.Codec
	planner LayoutPlanner
	log     *slog.Logger
}

// New creates a Streamer. planner may be nil, in which case planner-intent
// messages fall back to the canned pattern path.
func New(cfg *config.Settings, lp LayoutPlanner, log *slog.Logger) *Streamer {
	if log == nil {
		log = slog.Default()
	}
	return &Streamer{
		cfg:     cfg,
		codec:   component.NewCodec(cfg.ComponentDelimiter, cfg.ComponentTypes),
		planner: lp,
		log:     log,
	}
}

// Codec exposes the wire codec (shared with transport-side tests).
func (s *Streamer) Codec() *component.Codec {
	return s.codec
}

// Stream produces the full response for one message. A fresh request-scoped
// tracker is created here and discarded when the stream ends. The returned
// error is non-nil only when emission was cut short (consumer disconnect or
// context cancellation); it is not a server fault.
func (s *Streamer) Stream(ctx context.Context, message string, emit Emitter) (Result, error) {
	tracker := component.NewTracker()
	intent := pattern.Detect(message)
	res := Result{Intent: intent}

	s.log.Info("pattern detected", "intent", string(intent))

	var err error
	if intent == pattern.IntentPlanner {
		var handled bool
		res.FromCache, handled, err = s.runPlanner(ctx, emit, tracker, message)
		if err == nil && !handled {
			// Planner unavailable or produced nothing usable; route the
			// same message through the canned patterns instead.
			res.Intent = pattern.DetectCanned(message)
			err = s.runCanned(ctx, emit, tracker, message, res.Intent)
		}
	} else {
		err = s.runCanned(ctx, emit, tracker, message, intent)
	}

	res.Components = tracker.Len()
	return res, err
}

func (s *Streamer) runCanned(ctx context.Context, emit Emitter, tr *component.Tracker, message string, intent pattern.Intent) error {
	switch intent {
	case pattern.IntentDelayedSingleCard:
		return s.delayedSingleCard(ctx, emit, tr)
	case pattern.IntentSingleCard:
		return s.singleCard(ctx, emit, tr)
	case pattern.IntentDelayedMultiCards:
		return s.delayedMultiCards(ctx, emit, tr, pattern.CardCount(message))
	case pattern.IntentNormalMultiCards:
		return s.normalMultiCards(ctx, emit, tr, pattern.CardCount(message))
	case pattern.IntentIncrementalLoading:
		return s.incrementalLoading(ctx, emit, tr)
	case pattern.IntentTableRequest:
		return s.handleTables(ctx, emit, tr, message)
	case pattern.IntentChartRequest:
		return s.handleCharts(ctx, emit, tr, message)
	default:
		return s.defaultText(ctx, emit)
	}
}

// text emits a literal prose chunk.
func (s *Streamer) text(ctx context.Context, emit Emitter, chunk string) error {
	return emit.Emit(ctx, []byte(chunk))
}

// record encodes and emits one component record.
func (s *Streamer) record(ctx context.Context, emit Emitter, rec component.Record) error {
	token, err := s.codec.Encode(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return emit.Emit(ctx, []byte(token))
}

// words streams text word-by-word with the configured inter-word delay.
func (s *Streamer) words(ctx context.Context, emit Emitter, text string) error {
	for _, word := range strings.Fields(text) {
		if err := s.text(ctx, emit, word+" "); err != nil {
			return err
		}
		if err := s.sleep(ctx, s.cfg.StreamDelay); err != nil {
			return err
		}
	}
	return nil
}

// dots emits three "processing" dots when simulation is enabled.
func (s *Streamer) dots(ctx context.Context, emit Emitter, delay time.Duration) error {
	if !s.cfg.SimulateProcessing {
		return nil
	}
	for i := 0; i < 3; i++ {
		if err := s.text(ctx, emit, "."); err != nil {
			return err
		}
		if err := s.sleep(ctx, delay); err != nil {
			return err
		}
	}
	return nil
}

// sleep suspends the current task cooperatively. It is the only blocking
// primitive in the orchestrator, so a cancelled context always interrupts a
// stream at its next delay point.
func (s *Streamer) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
