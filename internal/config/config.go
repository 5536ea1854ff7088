package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// FileEnv names the environment variable pointing at an optional YAML file.
const FileEnv = "CHARFORM_CONFIG"

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendHTTP   = "http"
)

// Config holds runtime settings. Precedence is defaults, then the YAML file,
// then environment variables.
type Config struct {
	Backend string        `env:"CHARFORM_BACKEND" yaml:"backend"`
	APIURL  string        `env:"CHARFORM_API_URL" yaml:"api_url"`
	DBPath  string        `env:"CHARFORM_DB_PATH" yaml:"db_path"`
	LogDir  string        `env:"CHARFORM_LOG_DIR" yaml:"log_dir"`
	Timeout time.Duration `env:"CHARFORM_TIMEOUT" yaml:"timeout"`
	OneShot bool          `env:"CHARFORM_ONE_SHOT" yaml:"one_shot"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Backend: BackendMemory,
		DBPath:  "charform.db",
		LogDir:  "logs",
		Timeout: 30 * time.Second,
	}
}

// Load builds the configuration from defaults, the file named by
// CHARFORM_CONFIG (if set) and the environment.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(FileEnv); path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto target.
func LoadFile(path string, target *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the settings can be used to build a backend.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.DBPath == "" {
			return errors.New("config: db_path is required for the sqlite backend")
		}
	case BackendHTTP:
		if c.APIURL == "" {
			return errors.New("config: api_url is required for the http backend")
		}
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
