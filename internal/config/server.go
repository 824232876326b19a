package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerConfig configures cmd/api from environment variables.
type ServerConfig struct {
	Port           string   `env:"API_PORT" envDefault:"8080"`
	Env            string   `env:"API_ENV" envDefault:"development"`
	PresetDir      string   `env:"PRESET_DIR" envDefault:"./examples/presets"`
	StaticDir      string   `env:"STATIC_DIR" envDefault:"./web/dist"`
	MaxRounds      int      `env:"MAX_ROUNDS" envDefault:"100000"`
	Workers        int      `env:"SIM_WORKERS" envDefault:"1"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadServer() (ServerConfig, error) {
	var c ServerConfig
	if err := ParseEnv(&c); err != nil {
		return ServerConfig{}, err
	}
	if c.MaxRounds < 1 {
		return ServerConfig{}, fmt.Errorf("MAX_ROUNDS must be >= 1, got %d", c.MaxRounds)
	}
	return c, nil
}

func (c ServerConfig) IsProduction() bool { return c.Env == "production" }
