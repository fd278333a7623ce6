package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// PathEnv names the variable that points the server at its YAML file.
	PathEnv = "CONFIG_PATH"
	// DefaultPath is read when PathEnv is unset or empty.
	DefaultPath = "./config.yaml"
)

// Load returns the validated server configuration. Environment variables
// override the YAML file, which overrides the env-default tags. Without a
// file at DefaultPath the server runs on the environment alone; a file
// named by PathEnv must exist.
func Load() (*Config, error) {
	path := os.Getenv(PathEnv)
	required := path != ""
	if !required {
		path = DefaultPath
	}

	cfg, err := read(path, required)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func read(path string, required bool) (*Config, error) {
	var cfg Config
	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: %s: %w", PathEnv, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}
	return &cfg, nil
}
