package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the externally supplied settings for the server. It is built
// once at startup and passed down explicitly; nothing reads the environment
// after Load returns.
type Config struct {
	Port         int
	DBPath       string // empty selects the in-memory store
	JWTSecret    string
	AuthRequired bool // enforce bearer tokens on mutating auction routes
}

// Load reads configuration from the environment, applying defaults.
func Load() (Config, error) {
	cfg := Config{Port: 5000}

	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid PORT %q: %w", p, err)
		}
		cfg.Port = port
	}

	cfg.DBPath = os.Getenv("DB_PATH")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")

	if v := os.Getenv("AUTH_REQUIRED"); v != "" {
		required, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid AUTH_REQUIRED %q: %w", v, err)
		}
		cfg.AuthRequired = required
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
