// Package config loads the settings of the cs2cs command from the
// environment and named projection definitions from YAML.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings that may come from environment variables. Command
// line flags override them.
type Env struct {
	Source      string `env:"CS2CS_SOURCE"`
	Target      string `env:"CS2CS_TARGET"`
	Definitions string `env:"CS2CS_DEFINITIONS"`
	Precision   int    `env:"CS2CS_PRECISION" envDefault:"6"`
	LogLevel    string `env:"CS2CS_LOG_LEVEL" envDefault:"warn"`
	LogFormat   string `env:"CS2CS_LOG_FORMAT" envDefault:"console"`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ParseEnvMap loads Env from the given variables instead of the process
// environment.
func ParseEnvMap(vars map[string]string) (Env, error) {
	var cfg Env
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
