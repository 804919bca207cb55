// Package config holds the coolfront configuration file format.
//
// Values come from a YAML file, then defaults fill whatever the file left
// empty, then COOLFRONT_* environment variables override, and finally the
// result is validated.
package config

import "time"

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
	Watch  WatchConfig  `yaml:"watch"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: "info"
	Level string `yaml:"level"`

	// Format is "text" or "json".
	// Default: "text"
	Format string `yaml:"format"`
}

type OutputConfig struct {
	// Format selects the AST renderer: tree, yaml or litter.
	// Default: "tree"
	Format string `yaml:"format"`

	// Positions appends line:column information to every printed node.
	Positions bool `yaml:"positions"`

	// Indent is the number of spaces per nesting level.
	// Default: 2
	Indent int `yaml:"indent"`
}

type WatchConfig struct {
	// Debounce is how long to wait after the last change before rebuilding.
	// Default: 200ms
	Debounce time.Duration `yaml:"debounce"`

	// Extensions restricts directory watching to these file extensions.
	// Default: [".cl"]
	Extensions []string `yaml:"extensions"`
}
