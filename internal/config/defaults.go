package config

import "time"

const (
	DefaultPath = "coolfront.yaml"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultOutputFormat = "tree"
	DefaultOutputIndent = 2

	DefaultWatchDebounce = 200 * time.Millisecond
)

var DefaultWatchExtensions = []string{".cl"}

func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// ApplyDefaults fills every zero value of cfg with its default.
func ApplyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Output.Indent == 0 {
		cfg.Output.Indent = DefaultOutputIndent
	}

	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultWatchDebounce
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultWatchExtensions...)
	}
}
