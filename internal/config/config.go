// File: internal/config/config.go
package config

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Render  RenderConfig  `mapstructure:"render" yaml:"render"`
	Report  ReportConfig  `mapstructure:"report" yaml:"report"`
	Compute ComputeConfig `mapstructure:"compute" yaml:"compute"`
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// RenderConfig controls the generated visualization script.
type RenderConfig struct {
	// Scale is the base axis length in render units; the first, second and
	// third axes draw at 3, 2 and 1 times this value.
	Scale     float64 `mapstructure:"scale" yaml:"scale"`
	LineWidth int     `mapstructure:"line_width" yaml:"line_width"`
}

// ReportConfig selects the output document format.
type ReportConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// ComputeConfig bounds the per-file parallelism in batch runs.
type ComputeConfig struct {
	Jobs int `mapstructure:"jobs" yaml:"jobs"`
}

// current stores the active configuration for the running command.
var current atomic.Pointer[Config]

// Get returns the active configuration, falling back to defaults when no
// configuration has been loaded yet.
func Get() *Config {
	if c := current.Load(); c != nil {
		return c
	}
	return NewDefaultConfig()
}

// Set installs cfg as the active configuration.
func Set(cfg *Config) { current.Store(cfg) }

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "principal-axes")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Render --
	v.SetDefault("render.scale", 20.0)
	v.SetDefault("render.line_width", 4)

	// -- Report --
	v.SetDefault("report.format", "pml")

	// -- Compute --
	v.SetDefault("compute.jobs", 1)
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.Render.Scale <= 0 {
		return fmt.Errorf("render.scale must be a positive number")
	}
	if c.Render.LineWidth <= 0 {
		return fmt.Errorf("render.line_width must be a positive integer")
	}
	if c.Compute.Jobs <= 0 {
		return fmt.Errorf("compute.jobs must be a positive integer")
	}
	switch c.Report.Format {
	case "pml", "json":
	default:
		return fmt.Errorf("report.format must be one of \"pml\", \"json\"; got %q", c.Report.Format)
	}
	return nil
}
