// Package server exposes the chat streaming engine over HTTP: one
// long-lived POST endpoint that streams mixed prose and component tokens,
// plus health probes.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/streamforge/streamforge/internal/config"
	"github.com/streamforge/streamforge/internal/stream"
	"github.com/streamforge/streamforge/internal/telemetry"
)

// Server wires the streamer and telemetry into an http.Server.
type Server struct {
	cfg       *config.Settings
	streamer  *stream.Streamer
	telemetry telemetry.Client
	log       *slog.Logger
	origins   map[string]struct{}
	allowAll  bool
	server    *http.Server
}

// New creates a Server. telemetryClient may be nil; a no-op client is
// substituted.
func New(cfg *config.Settings, streamer *stream.Streamer, telemetryClient telemetry.Client, log *slog.Logger) *Server {
	if telemetryClient == nil {
		telemetryClient = telemetry.NewNoopClient()
	}
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		cfg:       cfg,
		streamer:  streamer,
		telemetry: telemetryClient,
		log:       log,
		origins:   make(map[string]struct{}),
	}
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			s.allowAll = true
			continue
		}
		s.origins[origin] = struct{}{}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /chat/health", s.handleChatHealth)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("OPTIONS /", s.handlePreflight)

	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: s.corsMiddleware(mux),
		// No WriteTimeout: chat responses stream for an unbounded time.
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe blocks until the server stops. http.ErrServerClosed is
// returned on graceful shutdown.
func (s *Server) ListenAndServe() error {
	s.log.Info("server listening", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown drains in-flight streams until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the full middleware-wrapped handler for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
