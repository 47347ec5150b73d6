// Package config loads reader settings from YAML files.
//
// A minimal file looks like:
//
//	preload: true
//	parallelism: 4
//	log_level: info
//
// Omitted fields keep their defaults: streaming mode, parallelism 1 and log level "info".
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/seiscube/reader"
)

// Config holds the settings used to open cubes.
type Config struct {
	Preload     bool   `yaml:"preload"`
	Parallelism int    `yaml:"parallelism"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Preload:     false,
		Parallelism: 1,
		LogLevel:    "info",
	}
}

// Load reads and validates the YAML configuration at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates a YAML configuration. Unknown keys are rejected.
func Parse(raw []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configured values.
func (c Config) Validate() error {
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism must be at least 1, got %d", c.Parallelism)
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Options converts the configuration into reader options, attaching logger.
func (c Config) Options(logger log.Logger) []reader.Option {
	return []reader.Option{
		reader.WithPreload(c.Preload),
		reader.WithParallelism(c.Parallelism),
		reader.WithLogger(logger),
	}
}

// NewLogger returns a logfmt logger writing to w that drops records below lvl.
// Records carry a UTC timestamp and the caller location.
func NewLogger(w io.Writer, lvl string) (log.Logger, error) {
	allow, err := parseLevel(lvl)
	if err != nil {
		return nil, err
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, allow)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	return logger, nil
}

func parseLevel(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none":
		return level.AllowNone(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}
}
