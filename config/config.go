// SPDX-License-Identifier: MIT

// Package config loads prepkit run parameters from YAML.
//
// Example file:
//
//	sample:
//	  columns: [customer_id, region]   # or a single name: customer_id
//	  training_frac: 0.8
//	  sample_column: sample
//	winsor:
//	  columns: [amount, age]
//	  lower: 0.05
//	  upper: 0.95
//	  ignore_nan: false
//
// Missing keys keep their Default values. PREPKIT_TRAINING_FRAC and
// PREPKIT_SAMPLE_COLUMN override the file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/prepkit/sample"
	"github.com/katalvlaran/prepkit/winsor"
)

// Environment overrides.
const (
	EnvTrainingFrac = "PREPKIT_TRAINING_FRAC"
	EnvSampleColumn = "PREPKIT_SAMPLE_COLUMN"
)

// ErrNoSampleColumn indicates an empty sample column name. It is the
// same sentinel Assign returns.
var ErrNoSampleColumn = sample.ErrNoSampleColumn

// Config is the full set of run parameters.
type Config struct {
	Sample SampleConfig `yaml:"sample"`
	Winsor WinsorConfig `yaml:"winsor"`
}

// SampleConfig parameterizes the row assigner.
type SampleConfig struct {
	Columns      Columns `yaml:"columns"`
	TrainingFrac float64 `yaml:"training_frac"`
	SampleColumn string  `yaml:"sample_column"`
}

// WinsorConfig parameterizes the quantile clipper.
type WinsorConfig struct {
	Columns   Columns `yaml:"columns"`
	Lower     float64 `yaml:"lower"`
	Upper     float64 `yaml:"upper"`
	IgnoreNaN bool    `yaml:"ignore_nan"`
}

// Columns is a column list that also accepts a single scalar name in YAML.
type Columns []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Columns) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	cols, err := sample.ParseColumns(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = cols

	return nil
}

// Default returns the built-in parameters. Column lists are empty and must
// come from a file or flags.
func Default() *Config {
	return &Config{
		Sample: SampleConfig{
			TrainingFrac: sample.DefaultTrainingFrac,
			SampleColumn: sample.DefaultSampleColumn,
		},
		Winsor: WinsorConfig{
			Lower: winsor.DefaultLower,
			Upper: winsor.DefaultUpper,
		},
	}
}

// Load reads path over Default and applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvTrainingFrac); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvTrainingFrac, v, err)
		}
		c.Sample.TrainingFrac = f
	}
	if v := os.Getenv(EnvSampleColumn); v != "" {
		c.Sample.SampleColumn = v
	}

	return nil
}

// Validate checks parameter ranges. Column lists are checked by the
// operations that use them.
func (c *Config) Validate() error {
	if f := c.Sample.TrainingFrac; !(f >= 0 && f <= 1) {
		return fmt.Errorf("sample.training_frac %g: %w", f, sample.ErrInvalidFraction)
	}
	if c.Sample.SampleColumn == "" {
		return fmt.Errorf("sample.sample_column: %w", ErrNoSampleColumn)
	}
	if err := c.Winsorizer().Validate(); err != nil {
		return fmt.Errorf("winsor: %w", err)
	}

	return nil
}

// SampleOptions converts the sample section to sample options.
func (c *Config) SampleOptions() []sample.Option {
	return []sample.Option{
		sample.WithTrainingFrac(c.Sample.TrainingFrac),
		sample.WithSampleColumn(c.Sample.SampleColumn),
	}
}

// Winsorizer converts the winsor section to a Winsorizer.
func (c *Config) Winsorizer() winsor.Winsorizer {
	opts := []winsor.Option{winsor.WithQuantiles(c.Winsor.Lower, c.Winsor.Upper)}
	if c.Winsor.IgnoreNaN {
		opts = append(opts, winsor.WithIgnoreNaN())
	}

	return winsor.New(opts...)
}
