package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SessionBackendFile   = "file"
	SessionBackendSQLite = "sqlite"
)

type Config struct {
	APIURL         string        `env:"LOGISTICA_API_URL" envDefault:"http://localhost:3000"`
	Timeout        time.Duration `env:"LOGISTICA_TIMEOUT" envDefault:"10s"`
	DataDir        string        `env:"LOGISTICA_DATA_DIR"`
	SessionBackend string        `env:"LOGISTICA_SESSION_BACKEND" envDefault:"file"`
	ServeAddr      string        `env:"LOGISTICA_SERVE_ADDR" envDefault:":3000"`
	JWTSecret      string        `env:"JWT_SECRET"`
	TrustedProxies []string      `env:"LOGISTICA_TRUSTED_PROXIES" envSeparator:","`
}

// Load reads an optional .env file, without overriding variables that are
// already set, and parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: unable to read .env file: %v", err)
	}

	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve data dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".logistica")
	}

	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("LOGISTICA_API_URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("LOGISTICA_TIMEOUT must be positive, got %s", c.Timeout)
	}
	switch c.SessionBackend {
	case SessionBackendFile, SessionBackendSQLite:
	default:
		return fmt.Errorf("unknown session backend %q", c.SessionBackend)
	}
	return nil
}
