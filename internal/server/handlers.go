package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/streamforge/streamforge/internal/telemetry"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// flushEmitter writes each chunk straight to the response and flushes, so
// the client sees tokens as they are produced rather than on buffer
// boundaries.
type flushEmitter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func (e *flushEmitter) Emit(ctx context.Context, chunk []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := e.w.Write(chunk); err != nil {
		return err
	}
	if e.flusher != nil {
		e.flusher.Flush()
	}
	return nil
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, _ := w.(http.Flusher)
	emitter := &flushEmitter{w: w, flusher: flusher}

	start := time.Now()
	result, err := s.streamer.Stream(r.Context(), req.Message, emitter)
	if err != nil {
		// The consumer went away or the server is shutting down; the
		// stream simply stops at the next emission point.
		if errors.Is(err, context.Canceled) {
			s.log.Debug("chat stream aborted", "intent", string(result.Intent))
		} else {
			s.log.Warn("chat stream ended early", "intent", string(result.Intent), "error", err)
		}
		return
	}

	s.log.Info("chat stream completed",
		"intent", string(result.Intent),
		"components", result.Components,
		"duration", time.Since(start))

	s.telemetry.Track(telemetry.EventChatRequest, map[string]any{
		"intent":      string(result.Intent),
		"components":  result.Components,
		"from_cache":  result.FromCache,
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleChatHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":          "ok",
		"delimiter":       s.cfg.ComponentDelimiter,
		"component_types": s.cfg.ComponentTypes,
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
