package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerridge/upmon/config"
)

// validateCmd validates a config file without starting the monitor.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate an upmon configuration file without starting the monitor.

This command parses the YAML, applies defaults, and validates all
fields. It's useful for CI/CD pipelines or pre-deployment checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  upmon validate -c config.yaml
  upmon validate --config /etc/upmon/config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	target, err := config.BuildTarget(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Target:   %s\n", target.URL())
	fmt.Printf("  Interval: %s\n", cfg.Interval.Duration())
	fmt.Printf("  Timeout:  %s\n", cfg.Timeout.Duration())

	return nil
}
