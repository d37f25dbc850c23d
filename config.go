package tenderly

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"github.com/simforge/tenderly-go/types"
)

const (
	// DefaultBaseURL is the production REST API base.
	DefaultBaseURL = "https://api.tenderly.co/api/v1"

	// DefaultTimeout bounds a single request round trip when the caller does
	// not supply an http.Client of their own.
	DefaultTimeout = 30 * time.Second
)

// Environment variables consumed by ConfigFromEnv.
const (
	EnvAccessKey   = "TENDERLY_ACCESS_KEY"
	EnvAccountSlug = "TENDERLY_ACCOUNT_SLUG"
	EnvProjectSlug = "TENDERLY_PROJECT_SLUG"
	EnvBaseURL     = "TENDERLY_BASE_URL"
	EnvTimeout     = "TENDERLY_TIMEOUT"
)

// Config holds the credentials and endpoint used by every request. It is
// immutable after construction and safe to share across goroutines.
type Config struct {
	AccessKey   types.SecretString `validate:"required"`
	AccountSlug string             `validate:"required"`
	ProjectSlug string             `validate:"required"`
	BaseURL     string             `validate:"required"`
	Timeout     time.Duration
}

// NewConfig creates a Config from explicit values, applying the default
// base URL and timeout. Construction performs no network calls.
func NewConfig(accessKey, accountSlug, projectSlug string) Config {
	return Config{
		AccessKey:   types.NewSecretString(accessKey),
		AccountSlug: accountSlug,
		ProjectSlug: projectSlug,
		BaseURL:     DefaultBaseURL,
		Timeout:     DefaultTimeout,
	}
}

// ConfigFromEnv builds a Config from the TENDERLY_* environment variables.
// A .env file in the working directory is loaded first when present, so
// local development does not need exported variables.
func ConfigFromEnv() (Config, error) {
	// Ignore a missing .env file; explicit environment still applies.
	_ = godotenv.Load()

	cfg := NewConfig(
		os.Getenv(EnvAccessKey),
		os.Getenv(EnvAccountSlug),
		os.Getenv(EnvProjectSlug),
	)

	if base := os.Getenv(EnvBaseURL); base != "" {
		cfg.BaseURL = base
	}
	if raw := os.Getenv(EnvTimeout); raw != "" {
		timeout, err := cast.ToDurationE(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = timeout
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the configuration is complete and the base URL is
// well formed.
func (c Config) Validate() error {
	var validate = validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.AccessKey.IsZero() {
		return fmt.Errorf("access key must not be empty")
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	return nil
}
