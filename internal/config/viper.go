// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"fjacquet/budget-sync/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Report formats accepted by report.format
var reportFormats = []string{"text", "json", "csv"}

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Report struct {
		Format   string `mapstructure:"format" yaml:"format"`
		Currency string `mapstructure:"currency" yaml:"currency"`
	} `mapstructure:"report" yaml:"report"`

	Reconcile struct {
		DefaultPeriod string `mapstructure:"default_period" yaml:"default_period"`
		FailOnDrift   bool   `mapstructure:"fail_on_drift" yaml:"fail_on_drift"`
	} `mapstructure:"reconcile" yaml:"reconcile"`

	Data struct {
		BudgetsFile string `mapstructure:"budgets_file" yaml:"budgets_file"`
	} `mapstructure:"data" yaml:"data"`
}

// DelimiterRune returns the configured CSV delimiter as a rune
func (c *Config) DelimiterRune() rune {
	if c.CSV.Delimiter == "" {
		return ','
	}
	return []rune(c.CSV.Delimiter)[0]
}

// DefaultPeriodType returns reconcile.default_period parsed, or monthly
func (c *Config) DefaultPeriodType() models.PeriodType {
	p, err := models.ParsePeriodType(c.Reconcile.DefaultPeriod)
	if err != nil {
		return models.PeriodMonthly
	}
	return p
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.budget-sync")
	v.AddConfigPath(".budget-sync")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("BUDGETSYNC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the configuration built from defaults alone
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("report.format", "text")
	v.SetDefault("report.currency", "")

	v.SetDefault("reconcile.default_period", string(models.PeriodMonthly))
	v.SetDefault("reconcile.fail_on_drift", true)

	v.SetDefault("data.budgets_file", "budgets.yaml")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if !validReportFormat(config.Report.Format) {
		return fmt.Errorf("invalid report format: %s (must be one of %s)",
			config.Report.Format, strings.Join(reportFormats, ", "))
	}

	if _, err := models.ParsePeriodType(config.Reconcile.DefaultPeriod); err != nil {
		return fmt.Errorf("reconcile.default_period: %w", err)
	}

	return nil
}

func validReportFormat(format string) bool {
	for _, f := range reportFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
