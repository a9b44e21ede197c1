package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings that may come from the environment.
// CLI flags take precedence; these values become the flag defaults.
type Env struct {
	DBPath      string        `env:"SKIRUN_DB"           envDefault:"~/.skirun/scores.db"`
	FPS         int           `env:"SKIRUN_FPS"          envDefault:"60"`
	Seed        int64         `env:"SKIRUN_SEED"         envDefault:"0"`
	LogFile     string        `env:"SKIRUN_LOG"`
	LogLevel    string        `env:"SKIRUN_LOG_LEVEL"    envDefault:"info"`
	ConfigPath  string        `env:"SKIRUN_CONFIG"`
	SSHAddr     string        `env:"SKIRUN_SSH_ADDR"     envDefault:":23234"`
	IdleTimeout time.Duration `env:"SKIRUN_IDLE_TIMEOUT" envDefault:"30m"`
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return e, err
	}
	return e, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
