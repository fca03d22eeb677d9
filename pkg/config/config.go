// Package config loads tool configuration from a yaml file plus the
// environment. Secrets (API token/secret) never live in the yaml file;
// they come from the environment or the secret store.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/crix-exchange/go-crix/pkg/logger"
)

// Environment variable names recognized by the tools.
const (
	EnvVarEnvironment = "CRIX_ENV"
	EnvVarToken       = "CRIX_API_TOKEN"
	EnvVarSecret      = "CRIX_API_SECRET"
)

// Config is the tool configuration.
type Config struct {
	// Env is the exchange environment ("mvp" or "prod").
	Env string `yaml:"env"`
	// CacheMarkets disables market metadata caching when false.
	CacheMarkets *bool `yaml:"cache_markets"`
	// Symbols restricts watch tools to these symbols; empty = all.
	Symbols []string `yaml:"symbols"`
	// PollInterval between ticker polls.
	PollInterval time.Duration `yaml:"poll_interval"`
	// SecretStorePath is the badger directory holding API credentials.
	SecretStorePath string `yaml:"secret_store_path"`

	Log logger.Config `yaml:"log"`
}

// Load reads an optional .env file, then the yaml file at path (missing
// file is not an error — defaults apply), then environment overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:          "mvp",
		PollInterval: 10 * time.Second,
		Log:          logger.Config{Level: "info"},
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, errors.Wrapf(err, "read config %s", path)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
		}
	}

	if env := os.Getenv(EnvVarEnvironment); env != "" {
		cfg.Env = env
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 10 * time.Second
	}
	return cfg, nil
}

// Credentials returns the API token/secret from the environment, if set.
func Credentials() (token, secret string, ok bool) {
	token = os.Getenv(EnvVarToken)
	secret = os.Getenv(EnvVarSecret)
	return token, secret, token != "" && secret != ""
}
