package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_BADGER_DIR points the suite at an existing directory; a temporary one is used otherwise
	BadgerDir string `envconfig:"E2E_BADGER_DIR"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours       bool          `envconfig:"E2E_COLOURS" default:"true"`
	SigningKey    string        `envconfig:"E2E_SIGNING_KEY" default:"e2e-signing-key-0123456789"`
	TokenDuration time.Duration `envconfig:"E2E_TOKEN_DURATION" default:"5m"`
	LogLevel      string        `envconfig:"E2E_LOG_LEVEL" default:"ERROR"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
