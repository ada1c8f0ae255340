package planner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/streamforge/streamforge/internal/component"
	"github.com/streamforge/streamforge/internal/utils"
)

const (
	defaultMaxRetries   = 3
	defaultCacheTTL     = time.Hour
	defaultRetryBackoff = time.Second
)

// Config configures the planning service.
type Config struct {
	ModelID        string // label recorded on layouts, not sent to the model
	Delimiter      string
	MaxComponents  int
	MaxTableRows   int
	MaxChartPoints int
	MaxRetries     int           // 0 means defaultMaxRetries
	CacheTTL       time.Duration // 0 means defaultCacheTTL
	RetryBackoff   time.Duration // 0 means defaultRetryBackoff
}

// Service generates component layouts from a chat model. GenerateLayout
// never returns an error: every failure path degrades to the static
// fallback layout.
type Service struct {
	chatModel model.BaseChatModel
	cfg       Config
	cache     *layoutCache
	log       *slog.Logger
}

// New creates a planning Service backed by the given chat model.
func New(chatModel model.BaseChatModel, cfg Config, log *slog.Logger) *Service {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = defaultRetryBackoff
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		cache:     newLayoutCache(cfg.CacheTTL),
		log:       log,
	}
}

// GenerateLayout produces a validated layout for the message. Identical
// messages (case- and whitespace-insensitive) hit the cache within the TTL.
func (s *Service) GenerateLayout(ctx context.Context, message string) (Layout, error) {
	start := time.Now()

	// Blank input gets the fallback immediately, uncached.
	if strings.TrimSpace(message) == "" {
		return Layout{
			Components:     fallbackComponents(),
			Fallback:       true,
			ModelID:        s.cfg.ModelID,
			ProcessingTime: time.Since(start),
		}, nil
	}

	key := cacheKey(message)

	if cached, ok := s.cache.get(key); ok {
		cached.FromCache = true
		cached.ProcessingTime = time.Since(start)
		return cached, nil
	}

	records, err := s.generateWithRetry(ctx, message)
	layout := Layout{
		Components: records,
		ModelID:    s.cfg.ModelID,
	}
	if err != nil {
		s.log.Warn("layout generation failed, using fallback",
			"error", err,
			"model", s.cfg.ModelID)
		layout.Components = fallbackComponents()
		layout.Fallback = true
	}
	layout.ProcessingTime = time.Since(start)

	// Fallback layouts are never cached; the next identical request
	// re-consults the model once it has recovered.
	if !layout.Fallback {
		s.cache.put(key, layout)
	}
	return layout, nil
}

// generateWithRetry prompts the model up to MaxRetries times with
// exponential backoff between attempts.
func (s *Service) generateWithRetry(ctx context.Context, message string) ([]component.Record, error) {
	if s.chatModel == nil {
		return nil, fmt.Errorf("no chat model configured")
	}

	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt(s.cfg.Delimiter, s.cfg.MaxComponents)),
		schema.UserMessage(message),
	}

	var lastErr error
	for attempt := 0; attempt < s.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := s.cfg.RetryBackoff * (1 << attempt)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := s.chatModel.Generate(ctx, messages)
		if err != nil {
			lastErr = fmt.Errorf("generate: %w", err)
			s.log.Debug("planner attempt failed", "attempt", attempt+1, "error", err)
			continue
		}

		records, err := s.parseResponse(resp.Content)
		if err != nil {
			lastErr = fmt.Errorf("parse response: %w", err)
			s.log.Debug("planner response rejected", "attempt", attempt+1, "error", err)
			continue
		}
		return records, nil
	}
	return nil, lastErr
}

// parseResponse extracts the delimited JSON array from the model output and
// validates it into wire records. A bare single object is wrapped into a
// one-element layout.
func (s *Service) parseResponse(content string) ([]component.Record, error) {
	payload := utils.ExtractDelimited(content, s.cfg.Delimiter)
	raw, err := utils.ExtractAndParseJSON[[]rawComponent](payload)
	if err != nil {
		single, singleErr := utils.ExtractAndParseJSON[rawComponent](payload)
		if singleErr != nil || single.Type == "" {
			return nil, err
		}
		raw = []rawComponent{single}
	}
	return validateComponents(raw, limits{
		maxComponents:  s.cfg.MaxComponents,
		maxTableRows:   s.cfg.MaxTableRows,
		maxChartPoints: s.cfg.MaxChartPoints,
	})
}

// cacheKey hashes the canonicalized message.
func cacheKey(message string) string {
	sum := sha256.Sum256([]byte(cacheKeyInput(message)))
	return hex.EncodeToString(sum[:])
}
