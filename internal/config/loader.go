package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when no path is given and FAKEWORD_CONFIG is unset.
const DefaultPath = "./fakeword.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (Defaults, then env-default tags).
// The YAML path is path, else FAKEWORD_CONFIG, else DefaultPath. A missing
// file is an error only when the path was given explicitly.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	explicitPath := path != ""
	if !explicitPath {
		path = os.Getenv("FAKEWORD_CONFIG")
		explicitPath = path != ""
	}
	if !explicitPath {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
