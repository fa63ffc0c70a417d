package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Extraction ExtractionConfig `mapstructure:"extraction"`
	Output     OutputConfig     `mapstructure:"output"`
	Package    PackageConfig    `mapstructure:"package"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// ExtractionConfig controls how fragment files are discovered and parsed.
type ExtractionConfig struct {
	Workers     int    `mapstructure:"workers"      validate:"min=1,max=256"` // Files extracted concurrently
	CacheSize   int    `mapstructure:"cache_size"   validate:"min=0"`         // Extraction results cached by content hash, 0 disables
	SyntaxCheck bool   `mapstructure:"syntax_check"`                          // Run the full-grammar syntax check on every fragment
	Extension   string `mapstructure:"extension"    validate:"required,startswith=."`
}

// OutputConfig controls how the dump command prints a configuration.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=yaml json"`
}

// PackageConfig holds defaults for assembling a manifest.
type PackageConfig struct {
	SwiftVersion string `mapstructure:"swift_version" validate:"required"`
	IndexFile    string `mapstructure:"index_file"    validate:"required"`
	SupportFile  string `mapstructure:"support_file"`
}

// MetricsConfig toggles the extraction metrics exporter.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load decodes the configuration held by v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("extraction.workers", 4)
	v.SetDefault("extraction.cache_size", 256)
	v.SetDefault("extraction.syntax_check", false)
	v.SetDefault("extraction.extension", ".swift")

	v.SetDefault("output.format", "yaml")

	v.SetDefault("package.swift_version", "6.0")
	v.SetDefault("package.index_file", "Package.swift")
	v.SetDefault("package.support_file", "")

	v.SetDefault("metrics.enabled", false)
}

// EnvPrefix is the prefix of environment variables that override configuration keys.
const EnvPrefix = "PACKAGEDSL"

// BindEnv lets PACKAGEDSL_EXTRACTION_WORKERS override extraction.workers and so on.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}
