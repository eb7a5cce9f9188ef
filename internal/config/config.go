package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "DASH"

// Config is the full environment-driven configuration. Data files are
// static per deployment; the defaults match the standard data/ layout.
type Config struct {
	Env      string `envconfig:"DASH_ENV" default:"local"`
	Port     string `envconfig:"DASH_PORT" default:"8080"`
	LogLevel string `envconfig:"DASH_LOG_LEVEL" default:"info"`

	Data DataConfig
}

type DataConfig struct {
	CallsPath     string `envconfig:"DASH_CALLS_PATH" default:"data/calls.xlsx"`
	EmailsPath    string `envconfig:"DASH_EMAILS_PATH" default:"data/emails.xlsx"`
	KPIPath       string `envconfig:"DASH_KPI_PATH" default:"data/Weekly KPI Sheet - Ventured Solution.xlsx"`
	MarketingPath string `envconfig:"DASH_MARKETING_PATH" default:"data/marketing-2026.json"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
