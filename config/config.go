// Package config holds the configuration of the knights command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked for when none is given.
const DefaultPath = ".knights.yaml"

// Config is the content of a configuration file.
type Config struct {
	// Workers is the number of goroutines used to enumerate models.
	Workers int `yaml:"workers"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// Color enables colored output.
	Color bool `yaml:"color"`
	// Puzzles are paths to YAML puzzle files solved in addition to the builtin ones.
	Puzzles []string `yaml:"puzzles,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Workers:  1,
		LogLevel: "warn",
		Color:    true,
	}
}

// Load reads the configuration file at path.
// Fields absent from the file keep their default value.
// As with Decode, the result is not validated.
// If path is DefaultPath and the file does not exist, the default configuration is returned.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		if path == DefaultPath && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("could not open config file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a configuration from r.
// The result is not validated, so that callers can override fields first:
// call Validate once the configuration is complete.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("could not decode config: %w", err)
	}
	return cfg, nil
}

// Write encodes cfg as YAML on w.
func (cfg Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}
	return enc.Close()
}

// Validate returns an error if one of the fields of cfg has an invalid value.
func (cfg Config) Validate() error {
	if cfg.Workers < 1 {
		return fmt.Errorf("invalid number of workers %d: must be at least 1", cfg.Workers)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the logging level of cfg.
func (cfg Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return lvl, nil
}
