// Package config holds the hugecalc settings shared by the configuration
// file and the command-line flags.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/govalues/bigdecimal"
	"github.com/govalues/bigdecimal/internal/logging"
)

const (
	flagPrecision = "precision"
	flagLogLevel  = "log-level"
)

// Config is the hugecalc configuration.
type Config struct {
	// Precision is the number of digits kept after the decimal point by division.
	Precision int `yaml:"precision"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when neither a file nor flags set a value.
func Default() Config {
	return Config{
		Precision: bigdecimal.DefaultPrecision,
		LogLevel:  "warn",
	}
}

// RegisterFlags binds the fields of c to flags in fs, using the current
// values of c as defaults.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Precision, flagPrecision, c.Precision, "Number of digits after the decimal point kept by division; extra digits are truncated.")
	fs.StringVar(&c.LogLevel, flagLogLevel, c.LogLevel, "Only log messages with the given severity or above. One of: debug, info, warn, error.")
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if c.Precision < 0 {
		return errors.Errorf("invalid precision %d: must not be negative", c.Precision)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log_level")
	}
	return nil
}

// Merge copies into c every field of file whose flag was not set explicitly
// in fs, so command-line flags take precedence over the file.
func (c *Config) Merge(file Config, fs *pflag.FlagSet) {
	if !fs.Changed(flagPrecision) {
		c.Precision = file.Precision
	}
	if !fs.Changed(flagLogLevel) {
		c.LogLevel = file.LogLevel
	}
}

// Load reads a YAML configuration file.
// Keys missing from the file keep their [Default] values; unknown keys are
// rejected.
func Load(filename string) (Config, error) {
	f, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return Config{}, errors.Wrap(err, "error opening config file")
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return Config{}, errors.Wrap(err, "error reading config file")
	}
	return Parse(buf)
}

// Parse decodes a YAML configuration document on top of [Default].
func Parse(buf []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "error parsing config file")
	}
	return cfg, nil
}
