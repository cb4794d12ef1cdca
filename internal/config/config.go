// Package config loads the completion tool's own configuration. All fields
// are optional; a missing file yields defaults, so completion keeps working
// on a fresh machine.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ecl-project/ecl-completion/internal/core"
)

// Config controls the resolver's diagnostics and where it finds the profile
// database.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file"`
	ProfileDB string `yaml:"profile_db"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFile:   core.LogFile(),
		ProfileDB: core.ProfileDB(),
	}
}

// Load reads the YAML configuration at path. A missing file returns the
// defaults; a malformed file is an error. Fields left empty in the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFile == "" {
		cfg.LogFile = core.LogFile()
	}
	if cfg.ProfileDB == "" {
		cfg.ProfileDB = core.ProfileDB()
	}

	return cfg, nil
}
