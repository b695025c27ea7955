// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the eulertour drivers and the
// logger they share.
//
// The drivers run on the built-in defaults only: no flags, no environment
// variables, no implicit config file. LoadFromFile and Set exist for library
// callers and tests that need other values.
//
// Keys and defaults:
//
//	io.graph_file             graph.txt
//	io.output_file            output.txt
//	generator.vertex_mean     6
//	generator.max_half_degree 3
//	generator.seed            0 (0 ⇒ time-based seed)
//	tour.start                0
//	tour.verify               true
//	logging.level             info
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/eulertour/generator"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config manages run configuration using viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration holding the defaults.
func New() *Config {
	v := viper.New()

	v.SetDefault("io.graph_file", "graph.txt")
	v.SetDefault("io.output_file", "output.txt")

	v.SetDefault("generator.vertex_mean", generator.DefaultVertexMean)
	v.SetDefault("generator.max_half_degree", generator.DefaultMaxHalfDegree)
	v.SetDefault("generator.seed", 0)

	v.SetDefault("tour.start", 0)
	v.SetDefault("tour.verify", true)

	v.SetDefault("logging.level", "info")

	return &Config{v: v}
}

// LoadFromFile merges the file at path over the defaults. A missing or
// unreadable file is an error.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("LoadFromFile(%s): %w", path, err)
	}

	return nil
}

// Used returns the path of the file merged by LoadFromFile, or "" when only
// the defaults apply.
func (c *Config) Used() string { return c.v.ConfigFileUsed() }

// GraphFile is the exchange-format file eulergen writes.
func (c *Config) GraphFile() string { return c.v.GetString("io.graph_file") }

// OutputFile is the tour file eulertour writes.
func (c *Config) OutputFile() string { return c.v.GetString("io.output_file") }

// VertexMean is the generator's vertex count knob.
func (c *Config) VertexMean() int { return c.v.GetInt("generator.vertex_mean") }

// MaxHalfDegree bounds the generator's per-vertex half degree.
func (c *Config) MaxHalfDegree() int { return c.v.GetInt("generator.max_half_degree") }

// Seed is the generator seed; 0 lets the driver pick one.
func (c *Config) Seed() int64 { return c.v.GetInt64("generator.seed") }

// Start is the vertex the circuit begins and ends at.
func (c *Config) Start() int { return c.v.GetInt("tour.start") }

// Verify reports whether a found tour is replayed before it is written.
func (c *Config) Verify() bool { return c.v.GetBool("tour.verify") }

// LogLevel is the zerolog level name.
func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// Set overrides one key, e.g. from a command-line flag.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// Validate checks every value a driver turns into options, so that option
// constructors never see out-of-domain input.
func (c *Config) Validate() error {
	if c.VertexMean() < 1 {
		return fmt.Errorf("generator.vertex_mean=%d, want ≥ 1: %w", c.VertexMean(), ErrInvalid)
	}
	if c.MaxHalfDegree() < 1 {
		return fmt.Errorf("generator.max_half_degree=%d, want ≥ 1: %w", c.MaxHalfDegree(), ErrInvalid)
	}
	if c.Start() < 0 {
		return fmt.Errorf("tour.start=%d, want ≥ 0: %w", c.Start(), ErrInvalid)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel()); err != nil {
		return fmt.Errorf("logging.level=%q: %w: %w", c.LogLevel(), ErrInvalid, err)
	}

	return nil
}

// GeneratorOptions turns the generator.* keys into generator options; seed is
// used when generator.seed is 0. Call Validate first.
func (c *Config) GeneratorOptions(seed int64) []generator.Option {
	if s := c.Seed(); s != 0 {
		seed = s
	}

	return []generator.Option{
		generator.WithSeed(seed),
		generator.WithVertexMean(c.VertexMean()),
		generator.WithMaxHalfDegree(c.MaxHalfDegree()),
	}
}

// CreateLogger creates a console logger on stderr at the configured level.
func (c *Config) CreateLogger(service string) zerolog.Logger {
	return c.NewLogger(os.Stderr, service)
}

// NewLogger is CreateLogger writing to out. An unparsable level falls back to info.
func (c *Config) NewLogger(out io.Writer, service string) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", service).Logger()
}
