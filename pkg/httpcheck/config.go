package httpcheck

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries the middleware limits. The zero value of MaxErrors means
// the 422 response lists every failure.
type Config struct {
	// MaxBodyBytes caps the request body size. Oversized bodies are
	// rejected with 413 before validation runs.
	MaxBodyBytes int64 `env:"HTTPCHECK_MAX_BODY_BYTES" envDefault:"1048576"`

	// MaxErrors caps how many field errors a 422 response carries.
	// Validation itself always runs to completion.
	MaxErrors int `env:"HTTPCHECK_MAX_ERRORS" envDefault:"0"`
}

var defaultEnvLoaded sync.Once

// LoadConfig reads the configuration from the environment, loading a .env
// file first when one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
