// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory        string `mapstructure:"directory" yaml:"directory"`
		TransactionsFile string `mapstructure:"transactions_file" yaml:"transactions_file"`
		MembersFile      string `mapstructure:"members_file" yaml:"members_file"`
		CategoriesFile   string `mapstructure:"categories_file" yaml:"categories_file"`
	} `mapstructure:"data" yaml:"data"`

	Report struct {
		Currency     string `mapstructure:"currency" yaml:"currency"`
		Organization string `mapstructure:"organization" yaml:"organization"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional config file, then environment
// variables prefixed with CHARITY_.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.charity-ledger")
	v.AddConfigPath(".charity-ledger")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CHARITY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars, but tell the user.
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "data")
	v.SetDefault("data.transactions_file", "charity_data.csv")
	v.SetDefault("data.members_file", "members.json")
	v.SetDefault("data.categories_file", "categories.yaml")

	v.SetDefault("report.currency", "EUR")
	v.SetDefault("report.organization", "Sadaka Group Berlin")
}

// validateConfig checks the loaded configuration for unusable values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level '%s'", config.Log.Level)
	}
	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format '%s', expected 'text' or 'json'", config.Log.Format)
	}
	if config.Data.Directory == "" {
		return fmt.Errorf("data directory must not be empty")
	}
	return nil
}

// ConfigureLoggingFromConfig applies the log section of a loaded
// configuration to the global logger.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	level, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if config.Log.Format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return Logger
}
