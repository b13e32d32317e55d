package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from environment variables.
// WORDS_TOKEN is required and is taken exactly as set, without trimming;
// a variable that is set but empty still counts as provided. The log
// settings fall back to their env-default values and cannot fail.
func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	return &cfg, nil
}
