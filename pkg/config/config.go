// Package config loads the mapperkit project configuration (mapperkit.yaml).
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Format holds the statement rendering options.
	Format struct {
		// BindMarker replaces each #{...} placeholder in extracted SQL.
		// Defaults to "?".
		BindMarker string `yaml:"bind_marker,omitempty"`

		// KeepSubstitutions emits ${...} placeholders verbatim instead of
		// replacing them with BindMarker.
		KeepSubstitutions bool `yaml:"keep_substitutions,omitempty"`

		// Headers prefixes each extracted statement with a comment naming
		// its kind and id.
		Headers bool `yaml:"headers,omitempty"`
	}

	// Review holds the review rule configuration.
	Review struct {
		// Disabled lists rule names to skip.
		Disabled []string `yaml:"disabled,omitempty"`

		// Severity overrides the default severity per rule name. Values
		// are "info", "warning", or "error".
		Severity map[string]string `yaml:"severity,omitempty"`
	}

	// Config is the project configuration for mapper analysis.
	Config struct {
		// Paths lists the mapper XML files or directories to process when
		// a command is invoked without path arguments.
		Paths []string `yaml:"paths,omitempty"`

		Format Format `yaml:"format,omitempty"`
		Review Review `yaml:"review,omitempty"`
	}
)

// Default returns the configuration used when no mapperkit.yaml exists.
func Default() *Config {
	return &Config{
		Format: Format{BindMarker: "?", Headers: true},
	}
}

// LoadConfig parses a project configuration from the provided reader.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader(`
//	paths:
//	  - mappers/
//	review:
//	  disabled:
//	    - empty-statement
//	`))
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal mapperkit config")
	}

	if cfg.Format.BindMarker == "" {
		cfg.Format.BindMarker = "?"
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file
// path. This is a convenience function that opens the file and calls
// LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}
