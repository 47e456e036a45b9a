package configs

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Default values mirroring the analyzer's historical behavior: data read
// from ./data, exclusions from ./data/exclude, artifacts under ./output,
// 1000 Hz display sample rate.
const (
	DefaultInputDir     = "data"
	DefaultOutputDir    = "output"
	DefaultSampleRateHz = 1000
	DefaultReportName   = "report.html"
	DefaultWorkers      = 4
	DefaultLogLevel     = "info"
	DefaultLogFile      = "spectrum_analysis.log"
)

// SetDefaults registers default configuration values on the given viper
// instance
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", DefaultLogFile)

	v.SetDefault("input.dir", DefaultInputDir)
	v.SetDefault("input.exclude_file", filepath.Join(DefaultInputDir, "exclude"))

	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("output.sample_rate_hz", DefaultSampleRateHz)
	v.SetDefault("output.report_name", DefaultReportName)
	v.SetDefault("output.preview", false)

	v.SetDefault("batch.workers", DefaultWorkers)
}

// GetDefaultConfig returns a Config populated with default values
func GetDefaultConfig() *Config {
	return &Config{
		Verbose:  false,
		LogLevel: DefaultLogLevel,
		LogFile:  DefaultLogFile,
		Input: InputConfig{
			Dir:         DefaultInputDir,
			ExcludeFile: filepath.Join(DefaultInputDir, "exclude"),
		},
		Output: OutputConfig{
			Dir:          DefaultOutputDir,
			SampleRateHz: DefaultSampleRateHz,
			ReportName:   DefaultReportName,
		},
		Batch: BatchConfig{
			Workers: DefaultWorkers,
		},
	}
}
