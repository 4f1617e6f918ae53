// Package config loads deployment configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration. Every field has a sensible default so the
// orchestrator runs locally without any environment.
type Config struct {
	Providers ProviderConfig
	Review    ReviewConfig
	Analytics AnalyticsConfig
	Log       LogConfig

	// RegionalLocales is the comma-separated high-quality-regional set.
	// Empty keeps the router's built-in default.
	RegionalLocales string `env:"REGIONAL_LOCALES" env-default:""`
}

// ProviderConfig holds translator backend settings.
type ProviderConfig struct {
	AFunction string `env:"PROVIDER_A_FUNCTION" env-default:"pricofy-localizer-provider-a"`
	BFunction string `env:"PROVIDER_B_FUNCTION" env-default:"pricofy-localizer-provider-b"`
	CEndpoint string `env:"PROVIDER_C_ENDPOINT" env-default:"https://translate.pricofy.dev/v1/translate"`
	CAPIKey   string `env:"PROVIDER_C_API_KEY"  env-default:""`
	// Timeout bounds one provider call; expiry surfaces as a per-locale timeout.
	Timeout time.Duration `env:"PROVIDER_TIMEOUT" env-default:"30s"`
}

// ReviewConfig holds review queue settings. An empty queue URL selects the
// in-memory queue.
type ReviewConfig struct {
	QueueURL string `env:"REVIEW_QUEUE_URL" env-default:""`
}

// AnalyticsConfig holds analytics sink settings. An empty function name
// selects the no-op sink.
type AnalyticsConfig struct {
	FunctionName string `env:"ANALYTICS_FUNCTION" env-default:""`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Providers.Timeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be positive, got %s", c.Providers.Timeout)
	}
	if strings.TrimSpace(c.Providers.AFunction) == "" || strings.TrimSpace(c.Providers.BFunction) == "" {
		return fmt.Errorf("provider function names must not be empty")
	}
	if strings.TrimSpace(c.Providers.CEndpoint) == "" {
		return fmt.Errorf("PROVIDER_C_ENDPOINT must not be empty")
	}
	return nil
}

// RegionalLocaleList splits the configured regional set. Empty input yields
// nil, keeping the router default.
func (c *Config) RegionalLocaleList() []string {
	if strings.TrimSpace(c.RegionalLocales) == "" {
		return nil
	}
	parts := strings.Split(c.RegionalLocales, ",")
	locales := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			locales = append(locales, p)
		}
	}
	return locales
}
