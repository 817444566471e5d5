package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kerridge/upmon"
)

func main() {
	// start mock target (see mock_server.go)
	go StartMockTarget(":9999")
	time.Sleep(100 * time.Millisecond)

	target, err := upmon.NewTarget("localhost:9999", "/status", upmon.WithScheme("http"))
	if err != nil {
		slog.Error("failed to create target", "error", err)
		os.Exit(1)
	}

	mon, err := upmon.New(
		upmon.WithTarget(target),
		upmon.WithInterval(time.Second),
		upmon.WithOutcomeCallback(func(o upmon.Outcome) {
			if o.Failed() {
				slog.Warn("target unreachable", "error", o.Err)
			}
		}),
	)
	if err != nil {
		slog.Error("failed to create monitor", "error", err)
		os.Exit(1)
	}

	// stop on Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mon.Start(ctx); err != nil {
		slog.Error("monitor error", "error", err)
		os.Exit(1)
	}
}
