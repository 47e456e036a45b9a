// Package configs holds the application configuration: input/output
// directories, the exclusion list, the sample rate used for display axes,
// and batch/logging settings.
package configs

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/spectralab/autofft/pkg/autocorr"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`

	// Input discovery
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Artifact output
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Batch execution
	Batch BatchConfig `mapstructure:"batch" yaml:"batch"`
}

// InputConfig contains input discovery settings
type InputConfig struct {
	Dir         string `mapstructure:"dir" yaml:"dir"`
	ExcludeFile string `mapstructure:"exclude_file" yaml:"exclude_file"`

	// SegmentLengths overrides the instrument's 4097/4097/4097/4096
	// record framing. Leave empty to use the default.
	SegmentLengths []int `mapstructure:"segment_lengths" yaml:"segment_lengths,omitempty"`
}

// OutputConfig contains artifact output settings
type OutputConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`

	// SampleRateHz is used only when deriving display frequency axes;
	// the transform chain itself operates in bin-index space.
	SampleRateHz int `mapstructure:"sample_rate_hz" yaml:"sample_rate_hz"`

	// ReportName is the file name of the HTML summary report
	ReportName string `mapstructure:"report_name" yaml:"report_name"`

	// Preview renders each power spectrum as an ASCII chart on the console
	Preview bool `mapstructure:"preview" yaml:"preview"`
}

// BatchConfig contains batch execution settings
type BatchConfig struct {
	// Workers is the number of input files processed concurrently
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// Load unmarshals the current viper state into a Config
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}

// SegmentLayout returns the configured record framing, falling back to the
// instrument default when none is set.
func (c *Config) SegmentLayout() autocorr.SegmentLayout {
	if len(c.Input.SegmentLengths) == 0 {
		return autocorr.DefaultLayout()
	}
	return autocorr.SegmentLayout(c.Input.SegmentLengths)
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Input.Dir == "" {
		return fmt.Errorf("input.dir must not be empty")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	if c.Output.SampleRateHz <= 0 {
		return fmt.Errorf("output.sample_rate_hz must be positive, got %d", c.Output.SampleRateHz)
	}
	if c.Output.ReportName == "" {
		return fmt.Errorf("output.report_name must not be empty")
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers)
	}
	if err := c.SegmentLayout().Validate(); err != nil {
		return fmt.Errorf("invalid input.segment_lengths: %w", err)
	}
	return nil
}
