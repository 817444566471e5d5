package poller

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Result holds the outcome of one poll iteration.
//
// This is the poller-internal result type, decoupled from the public
// upmon.Outcome type so this package has no dependency on the root
// package.
type Result struct {
	// StatusCode is the HTTP status code returned by the target.
	StatusCode int

	// Reason is the reason phrase from the status line.
	Reason string

	// Latency is the time taken to complete the request.
	Latency time.Duration

	// CheckedAt is the timestamp when the poll was performed.
	CheckedAt time.Time

	// Err contains the error that failed the iteration, or nil.
	Err error
}

// ReportFunc receives the [Result] of each iteration.
//
// The loop calls it synchronously, exactly once per iteration, before
// the iteration's sleep begins. A slow ReportFunc delays the next
// iteration but never skips or duplicates a report.
type ReportFunc func(Result)

// Loop drives the unbounded request/report/sleep cycle against a single
// URL.
//
// The cycle is strictly sequential: iteration N+1's request never starts
// before iteration N's report has been emitted and its sleep has
// elapsed. The sleep interval is measured from the end of the report.
// There is no termination condition inside the loop; it runs until the
// context passed to [Loop.Run] is cancelled.
type Loop struct {
	url      string
	interval time.Duration
	timeout  time.Duration
	report   ReportFunc
	client   *Client
	logger   *slog.Logger
}

// NewLoop creates a polling [Loop].
//
// Parameters:
//   - url: The target URL, polled with GET
//   - interval: Fixed sleep between iterations
//   - timeout: Per-request timeout
//   - report: Called once per iteration with the result
//   - logger: Logger for per-iteration operational events
//
// The loop owns its HTTP client; connections are released when
// [Loop.Run] returns.
func NewLoop(url string, interval, timeout time.Duration, report ReportFunc, logger *slog.Logger) *Loop {
	return &Loop{
		url:      url,
		interval: interval,
		timeout:  timeout,
		report:   report,
		client:   NewClient(),
		logger:   logger,
	}
}

// Run executes the polling cycle until ctx is cancelled.
//
// Run is a blocking call. Each cycle performs one GET, reports the
// result, and sleeps for the configured interval. Every failure during
// the request (DNS, connect, TLS, timeout, protocol, read) is converted
// to a failure Result and reported; no error escapes an iteration and
// the loop never terminates on its own.
//
// Cancellation is the one exception: when ctx is cancelled the current
// suspension point (in-flight request or sleep) is interrupted and Run
// returns promptly. A request abandoned because of cancellation is not
// reported as a failure. Run returns nil on cancellation; it has no
// other exit path.
func (l *Loop) Run(ctx context.Context) error {
	defer l.client.Close()

	timer := time.NewTimer(l.interval)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}

		resp := l.client.Fetch(ctx, l.url, l.timeout)

		// distinguish external cancellation from ordinary request
		// failure: a per-request deadline surfaces as DeadlineExceeded
		// and is reported like any other failure, but a cancelled parent
		// context ends the loop without producing an outcome
		if resp.Error != nil && ctx.Err() != nil && errors.Is(resp.Error, context.Canceled) {
			return nil
		}

		result := Result{
			StatusCode: resp.StatusCode,
			Reason:     resp.Reason,
			Latency:    resp.Latency,
			CheckedAt:  time.Now(),
			Err:        resp.Error,
		}
		l.report(result)

		if result.Err != nil {
			l.logger.Warn("poll failed",
				"url", l.url,
				"latency_ms", result.Latency.Milliseconds(),
				"error", result.Err.Error(),
			)
		} else {
			l.logger.Debug("poll completed",
				"url", l.url,
				"status_code", result.StatusCode,
				"latency_ms", result.Latency.Milliseconds(),
			)
		}

		// sleep starts after the report; the interval is report-to-request
		timer.Reset(l.interval)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}
