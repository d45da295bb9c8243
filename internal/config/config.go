package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the gateway runtime configuration, read from the environment
// (optionally seeded from a local .env file).
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"dev"`
	Port   string `envconfig:"PORT" default:"8080"`

	// Backend is the exhibition platform REST API the gateway fronts.
	BackendBaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	BackendTimeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"15s"`

	JWTSecret string        `envconfig:"JWT_SECRET" default:"change-me-jwt-secret"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	// PreviewDir holds spooled image previews; empty means the OS temp dir.
	PreviewDir string `envconfig:"PREVIEW_DIR"`
}

func Load() (*Config, error) {
	// .env is a local development convenience; absence is fine
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
