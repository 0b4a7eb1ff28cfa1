// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"

	"github.com/mwiater/metricspanel/internal/panel"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultOutputPath writes rendered panels to stdout.
	defaultOutputPath = "-"
	// envPrefix namespaces environment overrides, e.g. METRICSPANEL_OUTPUT.
	envPrefix = "METRICSPANEL"
)

// boundKeys are the config keys that command-line flags of the same name override.
var boundKeys = []string{"debug", "logFile", "output"}

// Config represents the top-level application configuration.
type Config struct {
	Debug                   bool      `json:"debug" mapstructure:"debug"`
	LogFile                 string    `json:"logFile,omitempty" mapstructure:"logFile"`
	OutputPath              string    `json:"output,omitempty" mapstructure:"output"`
	DocumentTitle           string    `json:"documentTitle,omitempty" mapstructure:"documentTitle"`
	DefaultConfidenceScores []float64 `json:"defaultConfidenceScores,omitempty" mapstructure:"defaultConfidenceScores"`
	ConfigPath              string    `json:"-" mapstructure:"-"`
}

// LogFilePath returns the log file path. Empty means log to the console only.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// OutputFilePath returns where rendered panels are written; "-" is stdout.
func (c Config) OutputFilePath() string {
	if path := strings.TrimSpace(c.OutputPath); path != "" {
		return path
	}
	return defaultOutputPath
}

// FallbackScores returns the confidence series used when a metrics input has
// none, applying the built-in sample series if the config omits it.
func (c Config) FallbackScores() []float64 {
	if len(c.DefaultConfidenceScores) == 0 {
		return panel.DefaultConfidenceScores
	}
	return c.DefaultConfidenceScores
}

// Validate checks values the renderer cannot accept.
func (c Config) Validate() error {
	for i, score := range c.DefaultConfidenceScores {
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return fmt.Errorf("defaultConfidenceScores[%d] is not a finite number", i)
		}
	}
	return nil
}

// Load reads the configuration at path and merges it with flags (flags >
// environment > file > defaults). A missing file is only an error when path
// was chosen explicitly; the default path may be absent. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("logFile", "")
	v.SetDefault("output", defaultOutputPath)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range boundKeys {
			if flag := flags.Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
	}

	v.SetConfigFile(path)
	loaded := true
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
		}
		if path != DefaultConfigPath {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		loaded = false
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	if loaded {
		config.ConfigPath = path
	}
	return config, nil
}
