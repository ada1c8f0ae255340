// Package telemetry sends anonymous usage events to PostHog. Everything is
// opt-in: without an API key and the enabled flag, every call is a no-op.
package telemetry

import (
	"io"
	"runtime"
	"time"

	"github.com/posthog/posthog-go"
)

// Client is the interface handlers use to record events.
type Client interface {
	// Track enqueues an event asynchronously and returns immediately.
	Track(event string, properties map[string]any)

	// Close flushes pending events.
	Close() error
}

// Properties is a type alias for event properties.
type Properties = map[string]any

// enqueuer covers the PostHog client methods we use, so tests can swap in
// a mock.
type enqueuer interface {
	io.Closer
	Enqueue(msg posthog.Message) error
}

// PostHogClient wraps the PostHog SDK for async server-side telemetry.
type PostHogClient struct {
	client     enqueuer
	distinctID string
	version    string
}

// ClientConfig holds configuration for initializing the telemetry client.
type ClientConfig struct {
	APIKey string

	// DistinctID is a stable anonymous identifier for this deployment.
	DistinctID string

	// Version is the server version string.
	Version string

	// Endpoint overrides the PostHog cloud endpoint (for self-hosted).
	Endpoint string
}

// NewPostHogClient creates a PostHog telemetry client. An empty API key
// yields a NoopClient so callers never need to branch.
func NewPostHogClient(cfg ClientConfig) (Client, error) {
	if cfg.APIKey == "" {
		return NewNoopClient(), nil
	}

	phConfig := posthog.Config{
		BatchSize: 20,
		Interval:  5 * time.Second,
		// Transport warnings must not end up in server logs.
		Logger: quietPostHogLogger{},
	}
	if cfg.Endpoint != "" {
		phConfig.Endpoint = cfg.Endpoint
	}

	client, err := posthog.NewWithConfig(cfg.APIKey, phConfig)
	if err != nil {
		return nil, err
	}

	return &PostHogClient{
		client:     client,
		distinctID: cfg.DistinctID,
		version:    cfg.Version,
	}, nil
}

// newPostHogClientWithEnqueuer creates a client with a custom enqueuer
// (for testing).
func newPostHogClientWithEnqueuer(enq enqueuer, distinctID, version string) *PostHogClient {
	return &PostHogClient{
		client:     enq,
		distinctID: distinctID,
		version:    version,
	}
}

// Track enqueues an event; the SDK handles async dispatch.
func (c *PostHogClient) Track(event string, properties map[string]any) {
	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	props.Set("os", runtime.GOOS)
	props.Set("arch", runtime.GOARCH)
	props.Set("server_version", c.version)

	// No person profiles; events stay anonymous.
	props.Set("$process_person_profile", false)

	_ = c.client.Enqueue(posthog.Capture{
		DistinctId: c.distinctID,
		Event:      event,
		Properties: props,
	})
}

// Close flushes the queue.
func (c *PostHogClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// NoopClient is a telemetry client that does nothing.
type NoopClient struct{}

// Track is a no-op.
func (c *NoopClient) Track(event string, properties map[string]any) {}

// Close is a no-op.
func (c *NoopClient) Close() error { return nil }

// NewNoopClient returns a client that does nothing.
func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

// quietPostHogLogger suppresses PostHog client logs.
type quietPostHogLogger struct{}

func (quietPostHogLogger) Debugf(string, ...interface{}) {}
func (quietPostHogLogger) Logf(string, ...interface{})   {}
func (quietPostHogLogger) Warnf(string, ...interface{})  {}
func (quietPostHogLogger) Errorf(string, ...interface{}) {}
