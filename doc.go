// Package upmon provides a minimal single-target uptime monitor.
//
// upmon repeatedly issues an HTTPS GET against one fixed target, reports
// the resulting status line, sleeps a fixed interval, and repeats until
// the caller cancels it. There is no persistence, no alerting, and no
// history: each iteration produces exactly one [Outcome], reports it, and
// forgets it.
//
// # Quick Start
//
// Create a target and start the monitor with graceful shutdown:
//
//	target, _ := upmon.NewTarget("status.example.com", "/health")
//	mon, _ := upmon.New(upmon.WithTarget(target))
//
//	// Set up shutdown on SIGINT/SIGTERM
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	mon.Start(ctx) // blocks until context is cancelled
//
// # Configuration
//
// upmon uses the functional options pattern for configuration:
//
//	mon, err := upmon.New(
//	    upmon.WithTarget(target),
//	    upmon.WithInterval(5 * time.Second),
//	    upmon.WithRequestTimeout(3 * time.Second),
//	    upmon.WithOutcomeCallback(func(o upmon.Outcome) {
//	        if o.Failed() {
//	            log.Printf("ALERT: %v", o.Err)
//	        }
//	    }),
//	)
//
// # Reporting
//
// Each iteration writes one human-readable line to the report writer
// (standard output by default):
//
//	Status: 200 OK
//	Request failed: dial tcp: connection refused
//
// Operational logging is separate from the report stream and uses
// [log/slog]; inject a logger with [WithLogger].
//
// # Architecture
//
// The polling machinery lives in internal/poller: an HTTP client wrapper
// that drains and releases connections on every path, and the sequential
// request/report/sleep loop. The internal packages are not part of the
// public API and may change without notice.
package upmon
