package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "inventario"

type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	MockAPI MockAPIConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Session.ensurePath(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"INVENTARIO_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"INVENTARIO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"INVENTARIO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

// APIConfig points the resource layer at the backend serving all collections.
type APIConfig struct {
	BaseURL string        `envconfig:"INVENTARIO_API_URL" default:"http://localhost:3000"`
	Timeout time.Duration `envconfig:"INVENTARIO_API_TIMEOUT" default:"10s"`
}

// SessionConfig locates the persisted session record.
type SessionConfig struct {
	File string `envconfig:"INVENTARIO_SESSION_FILE"`
}

func (s *SessionConfig) ensurePath() error {
	if s.File != "" {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving session file path: %w", err)
	}
	s.File = filepath.Join(home, ".inventario", "session.json")
	return nil
}

type MockAPIConfig struct {
	Addr string `envconfig:"INVENTARIO_MOCKAPI_ADDR" default:":3000"`
	Seed bool   `envconfig:"INVENTARIO_MOCKAPI_SEED" default:"true"`
}
