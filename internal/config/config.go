// Package config loads process settings from TXPROOF_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txproof/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

const prefix = "TXPROOF"

// ErrVerifierURLRequired is returned by RequireVerifier when TXPROOF_VERIFIER_URL
// is unset.
var ErrVerifierURLRequired = errors.New("TXPROOF_VERIFIER_URL is required")

// Config is the full process configuration.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error dpanic panic fatal"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"txproof" validate:"notblank"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	// Ledger verification service
	VerifierURL      string        `envconfig:"VERIFIER_URL" validate:"omitempty,url"`
	HTTPTimeout      time.Duration `envconfig:"HTTP_TIMEOUT" default:"5s" validate:"gt=0"`
	HTTPRetryMax     int           `envconfig:"HTTP_RETRY_MAX" default:"2" validate:"gte=0"`
	HTTPRetryWaitMin time.Duration `envconfig:"HTTP_RETRY_WAIT_MIN" default:"1s" validate:"gte=0"`
	HTTPRetryWaitMax time.Duration `envconfig:"HTTP_RETRY_WAIT_MAX" default:"5s" validate:"gtefield=HTTPRetryWaitMin"`

	// Monitor
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"5s" validate:"gt=0"`
	MaxConcurrency int           `envconfig:"MAX_CONCURRENCY" default:"16" validate:"gt=0"`

	// Snapshot API, disabled when APIAddr is empty
	APIAddr     string   `envconfig:"API_ADDR" default:":8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*" validate:"dive,notblank"`
	APIToken    string   `envconfig:"API_TOKEN"`

	// Redis fan-out, disabled when RedisAddr is empty
	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	RedisChannel  string `envconfig:"REDIS_CHANNEL" default:"txproof" validate:"notblank"`
}

// RequireVerifier reports whether the ledger verification service is
// configured. Only commands that reach the service need it.
func (c Config) RequireVerifier() error {
	if c.VerifierURL == "" {
		return ErrVerifierURLRequired
	}
	return nil
}

// APIEnabled reports whether the snapshot API should be served.
func (c Config) APIEnabled() bool {
	return c.APIAddr != ""
}

// RedisEnabled reports whether snapshots should be published to Redis.
func (c Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
