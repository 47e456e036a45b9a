package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spectralab/autofft/configs"
	"github.com/spectralab/autofft/internal/batch"
	"github.com/spectralab/autofft/internal/sink"
	"github.com/spectralab/autofft/pkg/logging"
)

var (
	// Analyze command flags
	analyzeInputDir    string
	analyzeExcludeFile string
	analyzeOutputDir   string
	analyzeSampleRate  int
	analyzeWorkers     int
	analyzePreview     bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the batch spectrum analysis",
	Long: `Run the batch analysis over every eligible file in the input directory.

Files listed in the exclusion file (one name per line) are skipped, as is
the exclusion file itself. A malformed file is logged and skipped without
aborting the batch. For every input file the analyzer emits, per
autocorrelation function, the intermediate arrays as .npy files, two PNG
plots, and an interactive HTML power spectrum, then writes an HTML summary
report into the output directory.

Examples:
  # Analyze ./data into ./output with defaults
  autofft analyze

  # Custom directories and display sample rate
  autofft analyze --input-dir /srv/pcal --output-dir /srv/spectra --sample-rate 2000

  # Sequential processing with console previews
  autofft analyze --workers 1 --preview`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeInputDir, "input-dir", configs.DefaultInputDir,
		"directory containing input data files")
	analyzeCmd.Flags().StringVar(&analyzeExcludeFile, "exclude-file", "",
		"exclusion list file (default {input-dir}/exclude)")
	analyzeCmd.Flags().StringVar(&analyzeOutputDir, "output-dir", configs.DefaultOutputDir,
		"directory for generated artifacts")
	analyzeCmd.Flags().IntVar(&analyzeSampleRate, "sample-rate", configs.DefaultSampleRateHz,
		"sample rate in Hz for display frequency axes")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", configs.DefaultWorkers,
		"number of files processed concurrently")
	analyzeCmd.Flags().BoolVar(&analyzePreview, "preview", false,
		"render each power spectrum as an ASCII chart on the console")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := configs.Load(viper.GetViper())
	if err != nil {
		return err
	}
	applyAnalyzeFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}

	logger.Info("Starting spectrum analysis", logging.Fields{
		"input_dir":      cfg.Input.Dir,
		"exclude_file":   cfg.Input.ExcludeFile,
		"output_dir":     cfg.Output.Dir,
		"sample_rate_hz": cfg.Output.SampleRateHz,
	})

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fileSink := sink.NewFileSink(sink.FileSinkConfig{
		Preview: cfg.Output.Preview,
		Logger:  logger,
	})

	orchestrator := batch.NewOrchestrator(cfg, fileSink, logger)
	summary, err := orchestrator.Run(context.Background())
	if err != nil {
		return err
	}

	reportPath := filepath.Join(cfg.Output.Dir, cfg.Output.ReportName)
	if err := sink.WriteReport(reportPath, summary.Results, time.Now()); err != nil {
		logger.Error("Failed to write summary report", logging.Fields{
			"path":  reportPath,
			"error": err.Error(),
		})
	} else {
		logger.Info("Summary report written", logging.Fields{"path": reportPath})
	}

	fmt.Printf("Processed %d file(s), skipped %d, took %.2fs\n",
		summary.Processed, summary.Skipped, summary.Duration.Seconds())
	return nil
}

// applyAnalyzeFlags overrides config file values with explicitly set CLI
// flags. The exclusion file tracks the input directory unless set.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *configs.Config) {
	if cmd.Flags().Changed("input-dir") {
		cfg.Input.Dir = analyzeInputDir
		if !cmd.Flags().Changed("exclude-file") && cfg.Input.ExcludeFile == filepath.Join(configs.DefaultInputDir, "exclude") {
			cfg.Input.ExcludeFile = filepath.Join(analyzeInputDir, "exclude")
		}
	}
	if cmd.Flags().Changed("exclude-file") {
		cfg.Input.ExcludeFile = analyzeExcludeFile
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.Output.Dir = analyzeOutputDir
	}
	if cmd.Flags().Changed("sample-rate") {
		cfg.Output.SampleRateHz = analyzeSampleRate
	}
	if cmd.Flags().Changed("workers") {
		cfg.Batch.Workers = analyzeWorkers
	}
	if cmd.Flags().Changed("preview") {
		cfg.Output.Preview = analyzePreview
	}
}
