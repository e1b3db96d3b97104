// Package config provides configuration for the fenconv and fen-server commands.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/fenboard/internal/errors"
)

// OutputFormat selects how parsed positions are written.
type OutputFormat int

const (
	FEN     OutputFormat = iota // Canonical FEN, one per line
	JSON                        // One JSON object per line
	Diagram                     // 8x8 text diagram followed by the FEN
)

var outputFormatNames = map[string]OutputFormat{
	"fen":     FEN,
	"json":    JSON,
	"diagram": Diagram,
}

// String returns the flag name of the format.
func (f OutputFormat) String() string {
	for name, v := range outputFormatNames {
		if v == f {
			return name
		}
	}
	return "unknown"
}

// ParseOutputFormat converts a flag value such as "json" to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if f, ok := outputFormatNames[strings.ToLower(s)]; ok {
		return f, nil
	}
	return FEN, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration for a fenconv run.
type Config struct {
	// Verbosity: 0=nothing, 1=summary, 2=report every rejected line
	Verbosity int

	// Output
	Format OutputFormat

	// Parsing
	Lenient bool

	// Parallelism
	Workers int

	// Duplicate handling
	Duplicate *DuplicateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Format:     FEN,
		Workers:    1,
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration for values the commands cannot use.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Duplicate != nil && c.Duplicate.Capacity < 0 {
		return fmt.Errorf("duplicate capacity must not be negative: %w", errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams are required: %w", errors.ErrInvalidConfig)
	}
	return nil
}
