// Package config provides centralized configuration for the StreamForge
// backend. All default values are defined here to ensure a single source of
// truth; viper supplies overrides from config file and environment.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// validate is a singleton validator instance.
var validate = validator.New()

// ChartPreset is a named, statically configured chart template used to
// synthesize demo content.
type ChartPreset struct {
	ChartType   string    `mapstructure:"chartType" validate:"required,oneof=line bar"`
	Title       string    `mapstructure:"title" validate:"required"`
	XAxis       []string  `mapstructure:"xAxis" validate:"required,min=1"`
	SeriesLabel string    `mapstructure:"seriesLabel" validate:"required"`
	Values      []float64 `mapstructure:"values" validate:"required,min=1"`
}

// PlannerSettings configures the external LLM planner adapter.
type PlannerSettings struct {
	Provider   string        `mapstructure:"provider"`
	Model      string        `mapstructure:"model"`
	APIKey     string        `mapstructure:"apiKey"`
	BaseURL    string        `mapstructure:"baseURL"`
	MaxRetries int           `mapstructure:"maxRetries" validate:"min=1,max=10"`
	CacheTTL   time.Duration `mapstructure:"cacheTTL" validate:"min=0"`
}

// TelemetrySettings configures opt-in anonymous usage analytics.
type TelemetrySettings struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"apiKey"`
	Host    string `mapstructure:"host"`
}

// Settings holds the full application configuration. The streaming core
// treats it as read-only.
type Settings struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port" validate:"min=1,max=65535"`
	CORSOrigins []string `mapstructure:"corsOrigins"`

	// Streaming delays. All suspension points in the orchestrator go
	// through these values so tests can zero them out.
	StreamDelay          time.Duration `mapstructure:"streamDelay" validate:"min=0"`
	ComponentUpdateDelay time.Duration `mapstructure:"componentUpdateDelay" validate:"min=0"`
	TableRowDelay        time.Duration `mapstructure:"tableRowDelay" validate:"min=0"`
	ChartPointDelay      time.Duration `mapstructure:"chartPointDelay" validate:"min=0"`
	QuickEmitDelay       time.Duration `mapstructure:"quickEmitDelay" validate:"min=0"`
	DelayedCardWait      time.Duration `mapstructure:"delayedCardWait" validate:"min=0"`
	DelayedCardsWait     time.Duration `mapstructure:"delayedCardsWait" validate:"min=0"`
	SimulateProcessing   bool          `mapstructure:"simulateProcessing"`

	// Component wire protocol.
	ComponentDelimiter string   `mapstructure:"componentDelimiter" validate:"required,min=2"`
	ComponentTypes     []string `mapstructure:"componentTypes" validate:"required,min=1"`

	// Data limits, applied once at data-preparation time.
	MaxComponentsPerResponse int `mapstructure:"maxComponentsPerResponse" validate:"min=1"`
	MaxTablesPerResponse     int `mapstructure:"maxTablesPerResponse" validate:"min=1"`
	MaxChartsPerResponse     int `mapstructure:"maxChartsPerResponse" validate:"min=1"`
	MaxTableRows             int `mapstructure:"maxTableRows" validate:"min=1"`
	MaxChartPoints           int `mapstructure:"maxChartPoints" validate:"min=1"`

	// Presets for demo content.
	TableColumnPresets map[string][]string    `mapstructure:"tableColumnPresets" validate:"required,min=1"`
	ChartPresets       map[string]ChartPreset `mapstructure:"chartPresets" validate:"required,min=1,dive"`

	Planner   PlannerSettings   `mapstructure:"planner"`
	Telemetry TelemetrySettings `mapstructure:"telemetry"`
}

// SetDefaults registers every default value with viper. Call once before
// viper reads config file or environment.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", 8001)
	v.SetDefault("corsOrigins", []string{"http://localhost:3000", "http://localhost:5173"})

	v.SetDefault("streamDelay", 100*time.Millisecond)
	v.SetDefault("componentUpdateDelay", 300*time.Millisecond)
	v.SetDefault("tableRowDelay", 200*time.Millisecond)
	v.SetDefault("chartPointDelay", 200*time.Millisecond)
	v.SetDefault("quickEmitDelay", 100*time.Millisecond)
	v.SetDefault("delayedCardWait", 5*time.Second)
	v.SetDefault("delayedCardsWait", 3*time.Second)
	v.SetDefault("simulateProcessing", true)

	v.SetDefault("componentDelimiter", "$$$")
	v.SetDefault("componentTypes", []string{"SimpleComponent", "TableA", "ChartComponent"})

	v.SetDefault("maxComponentsPerResponse", 5)
	v.SetDefault("maxTablesPerResponse", 3)
	v.SetDefault("maxChartsPerResponse", 3)
	v.SetDefault("maxTableRows", 20)
	v.SetDefault("maxChartPoints", 50)

	v.SetDefault("tableColumnPresets", defaultTableColumnPresets())
	v.SetDefault("chartPresets", defaultChartPresetsRaw())

	v.SetDefault("planner.provider", "openai")
	v.SetDefault("planner.model", "")
	v.SetDefault("planner.maxRetries", 3)
	v.SetDefault("planner.cacheTTL", time.Hour)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.host", "")
}

// Load unmarshals and validates settings from the given viper instance.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}

// Default returns the built-in settings without consulting config file or
// environment. Used by tests and as a safe baseline.
func Default() *Settings {
	v := viper.New()
	SetDefaults(v)
	s, err := Load(v)
	if err != nil {
		// Defaults must always validate; a failure here is a programming
		// error in this package.
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return s
}
