package env

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load reads an optional .env file from the working directory and then fills cfg
// from the process environment using `env` struct tags.
func Load(cfg any, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse config from env: %w", err)
	}

	return nil
}
