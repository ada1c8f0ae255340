package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/streamforge/streamforge/internal/config"
	"github.com/streamforge/streamforge/internal/llm"
	"github.com/streamforge/streamforge/internal/planner"
	"github.com/streamforge/streamforge/internal/server"
	"github.com/streamforge/streamforge/internal/stream"
	"github.com/streamforge/streamforge/internal/telemetry"
	"github.com/streamforge/streamforge/internal/util"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chat streaming server",
	Long: `Starts the HTTP server that answers POST /chat with a progressive
stream of prose and component tokens. The LLM planner is enabled when the
configured provider has credentials; otherwise planner-flavored messages
fall back to the built-in patterns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	settings, err := LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	layoutPlanner := buildPlanner(ctx, settings, log)
	telemetryClient := buildTelemetry(settings, log)
	defer func() { _ = telemetryClient.Close() }()

	streamer := stream.New(settings, layoutPlanner, log)
	srv := server.New(settings, streamer, telemetryClient, log)

	telemetryClient.Track(telemetry.EventServerStart, telemetry.Properties{
		"planner_enabled": layoutPlanner != nil,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// buildPlanner creates the layout planner when the configured provider has
// enough credentials. A nil return disables the planner path entirely.
func buildPlanner(ctx context.Context, settings *config.Settings, log *slog.Logger) stream.LayoutPlanner {
	provider, err := llm.ValidateProvider(settings.Planner.Provider)
	if err != nil {
		log.Warn("planner disabled: unknown provider", "provider", settings.Planner.Provider, "error", err)
		return nil
	}

	llmCfg := llm.Config{
		Provider: provider,
		Model:    settings.Planner.Model,
		APIKey:   settings.Planner.APIKey,
		BaseURL:  settings.Planner.BaseURL,
	}
	if !llmCfg.Available() {
		log.Info("planner disabled: no credentials for provider", "provider", settings.Planner.Provider)
		return nil
	}

	chatModel, err := llm.NewChatModel(ctx, llmCfg)
	if err != nil {
		log.Warn("planner disabled: chat model init failed", "error", err)
		return nil
	}

	log.Info("planner enabled", "provider", settings.Planner.Provider, "model", llmCfg.Model)
	return planner.New(chatModel, planner.Config{
		ModelID:        llmCfg.Model,
		Delimiter:      settings.ComponentDelimiter,
		MaxComponents:  settings.MaxComponentsPerResponse,
		MaxTableRows:   settings.MaxTableRows,
		MaxChartPoints: settings.MaxChartPoints,
		MaxRetries:     settings.Planner.MaxRetries,
		CacheTTL:       settings.Planner.CacheTTL,
	}, log)
}

func buildTelemetry(settings *config.Settings, log *slog.Logger) telemetry.Client {
	if !settings.Telemetry.Enabled || settings.Telemetry.APIKey == "" {
		return telemetry.NewNoopClient()
	}
	client, err := telemetry.NewPostHogClient(telemetry.ClientConfig{
		APIKey:     settings.Telemetry.APIKey,
		DistinctID: util.NewComponentID(),
		Version:    version,
		Endpoint:   settings.Telemetry.Host,
	})
	if err != nil {
		log.Warn("telemetry disabled: client init failed", "error", err)
		return telemetry.NewNoopClient()
	}
	return client
}
