package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type HTTPOptions struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	BodyLimit          string        `env:"HTTP_BODY_LIMIT" envDefault:"10M"`
	ShutdownTimeout    time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

type DatabaseOptions struct {
	URL         string `env:"DATABASE_URL,required,notEmpty"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

type LoggingOptions struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"` // text or json
}

type ImportOptions struct {
	ConflictCheckConcurrency int `env:"IMPORT_CONFLICT_CHECK_CONCURRENCY" envDefault:"4"`
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/metrics"`
}

type Configuration struct {
	HTTP       HTTPOptions
	Database   DatabaseOptions
	Logging    LoggingOptions
	Import     ImportOptions
	Prometheus PrometheusOptions
}

// LoadEnv loads the given dotenv files that exist, in order, without
// overriding variables already present in the process environment.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}

	if len(existing) == 0 {
		return 0, nil
	}

	return len(existing), godotenv.Load(existing...)
}

func Load() (Configuration, error) {
	if _, err := LoadEnv([]string{".env", ".env.local"}); err != nil {
		return Configuration{}, fmt.Errorf("load env files: %w", err)
	}

	cfg, err := env.ParseAs[Configuration]()
	if err != nil {
		return Configuration{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}

	return cfg, nil
}

func (c Configuration) Validate() error {
	if c.Import.ConflictCheckConcurrency <= 0 {
		return fmt.Errorf("IMPORT_CONFLICT_CHECK_CONCURRENCY must be positive, got %d", c.Import.ConflictCheckConcurrency)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("LOG_FORMAT must be 'text' or 'json', got '%s'", c.Logging.Format)
	}
	return nil
}
