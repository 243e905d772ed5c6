// Package config loads application configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"log/slog"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DBConfig holds database connection settings.
type DBConfig struct {
	Url string `envconfig:"URL" required:"true"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	Prefix     string `envconfig:"PREFIX" default:"bank"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

// RateLimitConfig holds request rate-limit settings.
type RateLimitConfig struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// AppConfig is the root application configuration.
type AppConfig struct {
	Env       string          `envconfig:"APP_ENV" default:"development"`
	Host      string          `envconfig:"APP_HOST" default:"localhost"`
	Port      int             `envconfig:"APP_PORT" default:"3000"`
	DB        DBConfig        `envconfig:"DATABASE"`
	Log       LogConfig       `envconfig:"LOG"`
	RateLimit RateLimitConfig `envconfig:"RATE_LIMIT"`
}

var credentialsRe = regexp.MustCompile(`//[^@/]+@`)

func maskDatabaseUrl(url string) string {
	return credentialsRe.ReplaceAllString(url, "//[MASKED]@")
}

// LoadAppConfig loads the configuration, reading a .env file first when one
// is present, then the process environment.
func LoadAppConfig(logger *slog.Logger, envFilePath ...string) (*AppConfig, error) {
	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		logger.Warn("No .env file found or specified, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"env", cfg.Env,
		"db", maskDatabaseUrl(cfg.DB.Url),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}
