package config

import (
	"os"
	"strconv"
	"strings"

	"spacexdash/internal/errors"
)

// Data source kinds
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config represents the complete application configuration
type Config struct {
	Data      DataConfig
	Database  DatabaseConfig
	Server    ServerConfig
	Profiling ProfilingConfig
	Layout    Layout
	LogLevel  string
}

// DataConfig holds dataset source settings
type DataConfig struct {
	Source     string
	File       string
	LayoutFile string
	Confidence float64
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// ProfilingConfig holds pprof settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data:      *loadDataConfig(),
		Database:  DatabaseConfig{URL: os.Getenv("DATABASE_URL")},
		Server:    *loadServerConfig(),
		Profiling: *loadProfilingConfig(),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	layout := DefaultLayout()
	if config.Data.LayoutFile != "" {
		loaded, err := LoadLayout(config.Data.LayoutFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load dashboard layout")
		}
		layout = *loaded
	}
	config.Layout = layout

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		Source:     strings.ToLower(getEnvOrDefault("DATA_SOURCE", SourceFile)),
		File:       getEnvOrDefault("DATA_FILE", "spacex_launch_dash.csv"),
		LayoutFile: getEnvOrDefault("LAYOUT_FILE", ""),
		Confidence: getEnvFloatOrDefault("CONFIDENCE_LEVEL", 0.95),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8050"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	switch config.Data.Source {
	case SourceFile:
		if config.Data.File == "" {
			return errors.ConfigInvalid("DATA_FILE is required when DATA_SOURCE=file")
		}
	case SourcePostgres:
		if config.Database.URL == "" {
			return errors.ConfigInvalid("DATABASE_URL is required when DATA_SOURCE=postgres")
		}
	default:
		return errors.ConfigInvalid("DATA_SOURCE must be \"file\" or \"postgres\", got " + strconv.Quote(config.Data.Source))
	}
	if config.Data.Confidence <= 0 || config.Data.Confidence >= 1 {
		return errors.ConfigInvalid("CONFIDENCE_LEVEL must be between 0 and 1")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	return config.Layout.Validate()
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
