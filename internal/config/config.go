package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"crowdfund/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Ignored when the ledger
	// runs on memory storage.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Ledger configures the ledger deployment.
	Ledger configs.Ledger `envPrefix:"LEDGER_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their defaults when no variable is provided.
func Load() (Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, err
	}
	if err := cfg.Ledger.Validate(); err != nil {
		return cfg, fmt.Errorf("ledger config: %w", err)
	}
	return cfg, nil
}
