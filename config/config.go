package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting the service reads from the environment.
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	DatabaseURL string `env:"DATABASE_URL" envDefault:"user=postgres password=postgres dbname=postgres sslmode=disable"`

	SerpAPIKey        string `env:"SERPAPI_KEY"`
	OpenWeatherMapKey string `env:"OPENWEATHERMAP_KEY"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-only-insecure-secret"`

	// Seed credentials for the first admin account. Created at startup if
	// no user with AdminEmail exists yet.
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@cityspark.local"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"changeme"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return cfg, nil
}
