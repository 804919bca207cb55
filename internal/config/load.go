package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration at path, applies defaults and environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	return finish(&cfg)
}

// LoadOrDefault is Load, except that a missing file at path yields the
// default configuration instead of an error. An empty path means DefaultPath.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return finish(&Config{})
	}

	return cfg, err
}

func finish(cfg *Config) (*Config, error) {
	ApplyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides reads COOLFRONT_SECTION_FIELD variables. Values that do
// not parse are ignored.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("COOLFRONT_LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}
	if val := os.Getenv("COOLFRONT_LOG_FORMAT"); val != "" {
		cfg.Log.Format = val
	}

	if val := os.Getenv("COOLFRONT_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
	if val := os.Getenv("COOLFRONT_OUTPUT_POSITIONS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Output.Positions = b
		}
	}
}
