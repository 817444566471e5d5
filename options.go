package upmon

import (
	"errors"
	"io"
	"log/slog"
	"time"
)

// monConfig holds mutable state during Monitor construction.
type monConfig struct {
	target           Target
	interval         time.Duration
	requestTimeout   time.Duration
	logger           *slog.Logger
	out              io.Writer
	outcomeCallbacks []func(Outcome)
}

// Option is a function that configures a [Monitor] instance during
// construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithTarget], [WithInterval], [WithRequestTimeout],
// [WithLogger], [WithOutput], [WithOutcomeCallback].
type Option func(*monConfig) error

// WithTarget sets the endpoint the monitor polls.
//
// A target is required: [New] fails if no target is configured. The
// target must have been constructed via [NewTarget].
func WithTarget(t Target) Option {
	return func(cfg *monConfig) error {
		if t.IsZero() {
			return errors.New("target must be constructed via NewTarget")
		}
		cfg.target = t
		return nil
	}
}

// WithInterval sets the fixed sleep between iterations.
//
// The interval is measured from the end of one iteration's report to the
// start of the next request. Defaults to 1 second if not specified.
//
// Returns an error if the duration is zero or negative.
func WithInterval(d time.Duration) Option {
	return func(cfg *monConfig) error {
		if d <= 0 {
			return errors.New("interval must be positive")
		}
		cfg.interval = d
		return nil
	}
}

// WithRequestTimeout sets the per-request timeout.
//
// A request that exceeds the timeout fails that iteration; the loop
// continues to the next one. Defaults to 10 seconds if not specified.
//
// Returns an error if the duration is zero or negative.
func WithRequestTimeout(d time.Duration) Option {
	return func(cfg *monConfig) error {
		if d <= 0 {
			return errors.New("request timeout must be positive")
		}
		cfg.requestTimeout = d
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the monitor.
//
// This controls operational logging only; the per-iteration report lines
// go to the writer configured with [WithOutput]. If not specified,
// [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *monConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithOutput sets the writer that receives the one-line report for each
// iteration. Defaults to standard output.
//
// Returns an error if the writer is nil.
func WithOutput(w io.Writer) Option {
	return func(cfg *monConfig) error {
		if w == nil {
			return errors.New("output writer cannot be nil")
		}
		cfg.out = w
		return nil
	}
}

// WithOutcomeCallback registers a function to be called on every
// iteration's [Outcome], after the report line has been written.
//
// Multiple callbacks may be registered by calling WithOutcomeCallback
// multiple times; they execute in registration order.
//
// Callbacks are invoked synchronously from the polling loop, so they run
// before the iteration's sleep begins. Blocking callbacks delay the next
// iteration. Panics within callbacks are recovered and logged; they do
// not crash the monitor.
//
// Nil callbacks are silently ignored.
func WithOutcomeCallback(cb func(Outcome)) Option {
	return func(cfg *monConfig) error {
		if cb == nil {
			return nil // no-op for nil callback (safe to call)
		}
		cfg.outcomeCallbacks = append(cfg.outcomeCallbacks, cb)
		return nil
	}
}
