package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings the CLI reads from the environment.
// Flags override them when set explicitly.
type Env struct {
	Config   string `env:"FOLIO_CONFIG" envDefault:"site.yaml"`
	Content  string `env:"FOLIO_CONTENT" envDefault:"content"`
	LogLevel string `env:"FOLIO_LOG_LEVEL" envDefault:"warn"`
	Addr     string `env:"FOLIO_ADDR" envDefault:"localhost:8080"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
