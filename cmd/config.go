package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spectralab/autofft/configs"
)

var configOutputFile string

// configCmd groups configuration helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write an example configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateExampleConfig(configOutputFile)
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <config-file>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateConfigFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGenerateCmd)
	configCmd.AddCommand(configValidateCmd)

	configGenerateCmd.Flags().StringVarP(&configOutputFile, "output", "o", "autofft.yaml",
		"output file for the example configuration")
}

// generateExampleConfig writes a fully populated example configuration file
func generateExampleConfig(outputFile string) error {
	data, err := yaml.Marshal(configs.GetDefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	if dir := filepath.Dir(outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Example configuration written to: %s\n", outputFile)
	return nil
}

// validateConfigFile loads and validates a configuration file
func validateConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := configs.GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	fmt.Printf("Configuration is valid: %s\n", path)
	fmt.Printf("   - Input directory:  %s\n", cfg.Input.Dir)
	fmt.Printf("   - Output directory: %s\n", cfg.Output.Dir)
	fmt.Printf("   - Sample rate:      %d Hz\n", cfg.Output.SampleRateHz)
	fmt.Printf("   - Segment layout:   %v\n", cfg.SegmentLayout())
	return nil
}
