package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kerridge/upmon"
	"github.com/kerridge/upmon/config"
)

// newLogger creates a JSON logger for CLI use. Operational logs go to
// stderr; stdout is reserved for the per-iteration report lines.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func init() {
	rootCmd.Flags().StringP("config", "c", "", "path to config file (optional)")
}

// runMonitor is the root command: poll the target until interrupted.
func runMonitor(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	configFile, _ := cmd.Flags().GetString("config")

	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	opts, err := config.BuildOptions(cfg)
	if err != nil {
		return fmt.Errorf("failed to build options: %w", err)
	}
	opts = append(opts,
		upmon.WithLogger(logger),
		upmon.WithOutput(os.Stdout),
	)

	mon, err := upmon.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create monitor: %w", err)
	}

	// cancel on SIGINT/SIGTERM; cancellation interrupts the in-flight
	// request or sleep and the monitor returns promptly
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mon.Start(ctx); err != nil {
		return fmt.Errorf("monitor error: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
