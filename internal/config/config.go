// Package config loads the numsum command-line configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/numsum/format"
	"github.com/arloliu/numsum/regression"
	"github.com/arloliu/numsum/stats"
)

// Config is the CLI configuration. Zero-valued fields fall back to Default.
type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Normalize  NormalizeConfig  `yaml:"normalize"`
	Outliers   OutliersConfig   `yaml:"outliers"`
	Regression RegressionConfig `yaml:"regression"`
	Blob       BlobConfig       `yaml:"blob"`
}

// NormalizeConfig configures the normalize command.
type NormalizeConfig struct {
	Method string `yaml:"method"`
}

// OutliersConfig configures the outliers command. A zero threshold selects
// the method's default.
type OutliersConfig struct {
	Method    string  `yaml:"method"`
	Threshold float64 `yaml:"threshold"`
}

// RegressionConfig configures the regress command. An empty model list fits every model.
type RegressionConfig struct {
	Models      []string `yaml:"models,omitempty"`
	MinRSquared float64  `yaml:"min_r_squared"`
}

// BlobConfig configures the pack command.
type BlobConfig struct {
	Encoding    string `yaml:"encoding"`
	Compression string `yaml:"compression"`
	BigEndian   bool   `yaml:"big_endian"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		Normalize: NormalizeConfig{Method: "zscore"},
		Outliers:  OutliersConfig{Method: "iqr"},
		Blob: BlobConfig{
			Encoding:    "gorilla",
			Compression: "none",
		},
	}
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: invalid YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and parses the file at path. An empty path returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var problems []error

	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err)
	}
	if _, err := c.NormalizeMethod(); err != nil {
		problems = append(problems, fmt.Errorf("normalize.method: %w", err))
	}
	if _, err := c.OutlierMethod(); err != nil {
		problems = append(problems, fmt.Errorf("outliers.method: %w", err))
	}
	if c.Outliers.Threshold < 0 {
		problems = append(problems, fmt.Errorf("outliers.threshold must not be negative, got %g", c.Outliers.Threshold))
	}
	if _, err := c.ModelTypes(); err != nil {
		problems = append(problems, err)
	}
	if c.Regression.MinRSquared < 0 || c.Regression.MinRSquared > 1 {
		problems = append(problems, fmt.Errorf("regression.min_r_squared must be in [0, 1], got %g", c.Regression.MinRSquared))
	}
	if _, err := c.ValueEncoding(); err != nil {
		problems = append(problems, err)
	}
	if _, err := c.Compression(); err != nil {
		problems = append(problems, err)
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %w", errors.Join(problems...))
	}

	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: unknown level %q", c.LogLevel)
	}

	return level, nil
}

func (c *Config) NormalizeMethod() (stats.Method, error) {
	return stats.ParseMethod(c.Normalize.Method)
}

func (c *Config) OutlierMethod() (stats.OutlierMethod, error) {
	return stats.ParseOutlierMethod(c.Outliers.Method)
}

// OutlierThreshold returns the configured threshold, or the default of method when unset.
func (c *Config) OutlierThreshold(method stats.OutlierMethod) float64 {
	if c.Outliers.Threshold > 0 {
		return c.Outliers.Threshold
	}

	return method.DefaultThreshold()
}

// ModelTypes returns the configured regression models; nil means all.
func (c *Config) ModelTypes() ([]regression.ModelType, error) {
	return ParseModelTypes(c.Regression.Models)
}

// ParseModelTypes maps model names to regression model types.
func ParseModelTypes(names []string) ([]regression.ModelType, error) {
	if len(names) == 0 {
		return nil, nil
	}

	models := make([]regression.ModelType, 0, len(names))
	for _, name := range names {
		mt := regression.ModelTypeFromString(strings.TrimSpace(name))
		if mt == regression.ModelTypeUnknown {
			return nil, fmt.Errorf("regression.models: unknown model %q", name)
		}
		models = append(models, mt)
	}

	return models, nil
}

func (c *Config) ValueEncoding() (format.EncodingType, error) {
	enc, ok := format.ParseEncodingType(c.Blob.Encoding)
	if !ok {
		return 0, fmt.Errorf("blob.encoding: unknown encoding %q", c.Blob.Encoding)
	}

	return enc, nil
}

func (c *Config) Compression() (format.CompressionType, error) {
	comp, ok := format.ParseCompressionType(c.Blob.Compression)
	if !ok {
		return 0, fmt.Errorf("blob.compression: unknown compression %q", c.Blob.Compression)
	}

	return comp, nil
}
