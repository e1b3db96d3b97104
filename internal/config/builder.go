package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Format = format
	return b
}

// WithLenient enables lenient FEN parsing.
func (b *ConfigBuilder) WithLenient(enabled bool) *ConfigBuilder {
	b.cfg.Lenient = enabled
	return b
}

// WithWorkers sets the number of parsing workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled, exact bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	b.cfg.Duplicate.ExactMatch = exact
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output and log writers.
func (b *ConfigBuilder) WithOutput(out, log io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = out
	b.cfg.LogFile = log
	return b
}
