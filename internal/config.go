package internal

import (
	"fmt"
	"time"
)

type Config struct {
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string        `env:"LOG_LEVEL,required=true"`
	SigningKey     string        `env:"SIGNING_KEY,required=true"`
	TokenDuration  time.Duration `env:"TOKEN_DURATION,required=true"`
	InspectPort    int           `env:"INSPECT_PORT,default=8081"`
}

const minSigningKeyLength = 16

// Validate rejects configurations the environment parser cannot catch.
func (c Config) Validate() error {
	if len(c.SigningKey) < minSigningKeyLength {
		return fmt.Errorf("SIGNING_KEY must be at least %d bytes, got %d", minSigningKeyLength, len(c.SigningKey))
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("TOKEN_DURATION must be positive, got %s", c.TokenDuration)
	}
	return nil
}
