package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// Gemini settings. The API key is optional at startup; requests fail with a
	// configuration error until it is set.
	GeminiAPIKey       string `envconfig:"GEMINI_API_KEY"`
	GeminiAPIKeySecret string `envconfig:"GEMINI_API_KEY_SECRET"`
	GeminiBaseURL      string `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiModel        string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	GeminiTimeoutSec   int    `envconfig:"GEMINI_TIMEOUT_SEC" default:"10"`

	// GCP settings, only needed when the key comes from Secret Manager
	GCPProjectID          string `envconfig:"GCP_PROJECT_ID"`
	GoogleCredentialsFile string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`

	MaxBodyBytes       int64    `envconfig:"MAX_BODY_BYTES" default:"1048576"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.GeminiTimeoutSec < 1 {
		return nil, fmt.Errorf("GEMINI_TIMEOUT_SEC must be at least 1, got %d", cfg.GeminiTimeoutSec)
	}
	return &cfg, nil
}

// GeminiTimeout returns the outbound Gemini request timeout.
func (c *Config) GeminiTimeout() time.Duration {
	return time.Duration(c.GeminiTimeoutSec) * time.Second
}

// UsesSecretManager reports whether the Gemini key has to be fetched from
// Secret Manager at startup.
func (c *Config) UsesSecretManager() bool {
	return c.GeminiAPIKey == "" && c.GeminiAPIKeySecret != ""
}
