// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/insurance-summary/internal/extractor"
	"fjacquet/insurance-summary/internal/grid"
	"fjacquet/insurance-summary/internal/parsererror"
	"fjacquet/insurance-summary/internal/xlsxio"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g.
// INSSUM_OUTPUT_MODE for output.mode.
const EnvPrefix = "INSSUM"

// LogConfig controls log output.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// InputConfig describes the layout of the payroll transaction report.
type InputConfig struct {
	HeaderRows      int                     `mapstructure:"header_rows" yaml:"header_rows"`
	TransactionType string                  `mapstructure:"transaction_type" yaml:"transaction_type"`
	Columns         extractor.ColumnLetters `mapstructure:"columns" yaml:"columns"`
}

// OutputConfig controls the summary workbook.
type OutputConfig struct {
	File         string `mapstructure:"file" yaml:"file"`
	Mode         string `mapstructure:"mode" yaml:"mode"`
	NumberFormat string `mapstructure:"number_format" yaml:"number_format"`
	RecordsFile  string `mapstructure:"records_file" yaml:"records_file"`
}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Input  InputConfig  `mapstructure:"input" yaml:"input"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Input: InputConfig{
			HeaderRows:      extractor.DefaultHeaderRows,
			TransactionType: extractor.DefaultTransactionType,
			Columns:         extractor.DefaultColumnLetters(),
		},
		Output: OutputConfig{
			File:         "Insurance_Summary.xlsx",
			Mode:         string(grid.ModeDetailed),
			NumberFormat: xlsxio.AccountingFormat,
		},
	}
}

// InitializeConfig loads configuration from defaults, a config file and
// INSSUM_ environment variables, in increasing precedence. configFile, when
// not empty, replaces the search of the standard locations and must exist.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.insurance-summary")
		v.AddConfigPath(".insurance-summary")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
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

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("input.header_rows", d.Input.HeaderRows)
	v.SetDefault("input.transaction_type", d.Input.TransactionType)
	v.SetDefault("input.columns.date", d.Input.Columns.Date)
	v.SetDefault("input.columns.type", d.Input.Columns.Type)
	v.SetDefault("input.columns.employee", d.Input.Columns.Employee)
	v.SetDefault("input.columns.memo", d.Input.Columns.Memo)
	v.SetDefault("input.columns.amount", d.Input.Columns.Amount)

	v.SetDefault("output.file", d.Output.File)
	v.SetDefault("output.mode", d.Output.Mode)
	v.SetDefault("output.number_format", d.Output.NumberFormat)
	v.SetDefault("output.records_file", d.Output.RecordsFile)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return &parsererror.ValidationError{Field: "log.level", Reason: fmt.Sprintf("unknown level %q", config.Log.Level)}
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return &parsererror.ValidationError{Field: "log.format", Reason: fmt.Sprintf("%q (must be 'text' or 'json')", config.Log.Format)}
	}

	if config.Input.HeaderRows < 0 {
		return &parsererror.ValidationError{Field: "input.header_rows", Reason: fmt.Sprintf("must not be negative, got %d", config.Input.HeaderRows)}
	}

	if strings.TrimSpace(config.Input.TransactionType) == "" {
		return &parsererror.ValidationError{Field: "input.transaction_type", Reason: "must not be empty"}
	}

	if _, err := config.Input.Columns.Resolve(); err != nil {
		return &parsererror.ValidationError{Field: "input.columns", Reason: err.Error()}
	}

	if _, err := grid.ParseMode(config.Output.Mode); err != nil {
		return &parsererror.ValidationError{Field: "output.mode", Reason: err.Error()}
	}

	return nil
}

// ExtractorOptions converts the input section into extractor options.
func (c *Config) ExtractorOptions() (extractor.Options, error) {
	cols, err := c.Input.Columns.Resolve()
	if err != nil {
		return extractor.Options{}, err
	}
	return extractor.Options{
		HeaderRows:      c.Input.HeaderRows,
		TransactionType: c.Input.TransactionType,
		Columns:         cols,
	}, nil
}

// LayoutMode returns the parsed output mode.
func (c *Config) LayoutMode() (grid.Mode, error) {
	return grid.ParseMode(c.Output.Mode)
}
