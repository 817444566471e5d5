// Package main is the entry point for the upmon CLI.
//
// upmon can be used as a library (SDK) or as a standalone binary. The
// binary needs no arguments: run it and it polls the built-in target
// every second, printing one status line per iteration, until
// interrupted.
//
// Usage:
//
//	upmon                       # Poll the built-in target
//	upmon -c config.yaml        # Poll a target from a config file
//	upmon validate -c config.yaml # Validate a config file
//	upmon version               # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command. Running it with no arguments starts the
// monitor against the built-in target.
var rootCmd = &cobra.Command{
	Use:   "upmon",
	Short: "A minimal single-target uptime monitor",
	Long: `upmon polls one HTTPS endpoint forever, printing one status line per
iteration:

  Status: 200 OK
  Request failed: dial tcp: connection refused

It needs no configuration: run it with no arguments and it polls the
built-in target once per second until interrupted (Ctrl+C). An optional
config file overrides the target, interval, and timeout:

  target:
    host: status.example.com
    path: /health
  interval: 5s`,
	RunE:          runMonitor,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this upmon binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("upmon %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
