package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment at startup.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	Env          string `env:"NAT_ENV" envDefault:"development"`
	PublicURL    string `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	Revision string `env:"GIT_REVISION"`
	Tag      string `env:"GIT_TAG"`
	Branch   string `env:"GIT_BRANCH"`
}

// IsDev reports whether TLS redirects and HSTS should be skipped.
func (c Config) IsDev() bool {
	return c.Env != "production"
}

func loadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
