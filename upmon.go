package upmon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/kerridge/upmon/internal/poller"
)

const (
	defaultInterval       = 1 * time.Second
	defaultRequestTimeout = 10 * time.Second
)

// Monitor is the orchestrator for polling a single target.
//
// Monitor drives the request/report/sleep cycle against its [Target],
// writing one report line per iteration and invoking any registered
// outcome callbacks. It is created using [New] with functional options
// and started with [Monitor.Start].
//
// The typical lifecycle is:
//
//	mon, err := upmon.New(upmon.WithTarget(target))
//	if err != nil {
//	    slog.Error("failed to create monitor", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//
//	mon.Start(ctx) // blocks until context cancelled
//
// The caller controls the lifecycle via the context. Cancel the context
// to stop the monitor; nothing inside the loop ever stops it.
type Monitor struct {
	target           Target
	interval         time.Duration
	requestTimeout   time.Duration
	logger           *slog.Logger
	out              io.Writer
	outcomeCallbacks []func(Outcome)
}

// New creates a new [Monitor] with the given options.
//
// A target must be configured via [WithTarget]. Other options have
// sensible defaults:
//   - Interval: 1 second
//   - Request timeout: 10 seconds
//   - Output: standard output
//
// Returns an error if no target is configured or if any option is
// invalid.
//
// Example:
//
//	mon, err := upmon.New(
//	    upmon.WithTarget(target),
//	    upmon.WithInterval(5 * time.Second),
//	)
func New(opts ...Option) (*Monitor, error) {
	cfg := &monConfig{
		interval:       defaultInterval,
		requestTimeout: defaultRequestTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.target.IsZero() {
		return nil, errors.New("a target is required")
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	out := cfg.out
	if out == nil {
		out = os.Stdout
	}

	return &Monitor{
		target:           cfg.target,
		interval:         cfg.interval,
		requestTimeout:   cfg.requestTimeout,
		logger:           logger,
		out:              out,
		outcomeCallbacks: cfg.outcomeCallbacks,
	}, nil
}

// Start begins polling the target.
//
// Start is a blocking call that runs until the provided context is
// cancelled. Each iteration issues one GET against the target, writes
// one report line to the configured output, invokes outcome callbacks,
// and sleeps for the configured interval. Request failures never stop
// the loop; the next scheduled iteration is the retry.
//
// The caller controls the lifecycle via context cancellation. For signal
// handling, use [signal.NotifyContext]:
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//	mon.Start(ctx)
//
// Returns nil on cancellation.
func (m *Monitor) Start(ctx context.Context) error {
	m.logger.Info("monitor starting",
		"target", m.target.URL(),
		"interval", m.interval.String(),
	)

	// check if context already cancelled
	if ctx.Err() != nil {
		return nil
	}

	loop := poller.NewLoop(m.target.URL(), m.interval, m.requestTimeout, m.report, m.logger)
	err := loop.Run(ctx)

	m.logger.Info("monitor stopped")
	return err
}

// Target returns the configured target. The [Target] is immutable.
func (m *Monitor) Target() Target {
	return m.target
}

// Interval returns the configured sleep between iterations.
func (m *Monitor) Interval() time.Duration {
	return m.interval
}

// RequestTimeout returns the configured per-request timeout.
func (m *Monitor) RequestTimeout() time.Duration {
	return m.requestTimeout
}

// report emits one iteration's outcome: the report line first, then the
// registered callbacks. Called synchronously from the loop, so the whole
// report completes before the iteration's sleep begins.
func (m *Monitor) report(r poller.Result) {
	outcome := resultToOutcome(r)

	if _, err := fmt.Fprintln(m.out, outcome.String()); err != nil {
		// the report stream failing must not kill the monitor
		m.logger.Error("failed to write report line", "error", err.Error())
	}

	for _, cb := range m.outcomeCallbacks {
		invokeCallbackSafe(cb, outcome, m.logger)
	}
}

// resultToOutcome converts the internal poller result to the public type.
func resultToOutcome(r poller.Result) Outcome {
	return Outcome{
		StatusCode: r.StatusCode,
		Reason:     r.Reason,
		Latency:    r.Latency,
		CheckedAt:  r.CheckedAt,
		Err:        r.Err,
	}
}

// invokeCallbackSafe calls an outcome callback with panic recovery.
// If the callback panics, the full panic is logged with a correlation ID
// and the loop continues; callbacks cannot crash the monitor.
func invokeCallbackSafe(cb func(Outcome), outcome Outcome, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			logger.Error("outcome callback panicked",
				"correlation_id", correlationID,
				"panic", fmt.Sprintf("%v", r),
			)
		}
	}()
	cb(outcome)
}
