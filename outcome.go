package upmon

import (
	"fmt"
	"time"
)

// Outcome holds the result of a single poll iteration.
//
// Outcome is immutable after creation. Exactly one Outcome is produced
// per iteration and reported before the next sleep begins; outcomes are
// never retained or aggregated across iterations.
//
// An iteration either succeeds (the request completed and a status line
// was read, whatever the status code) or fails (any error during
// connection, request, or read). Err is nil for success and non-nil for
// failure; StatusCode and Reason are meaningful only when Err is nil.
type Outcome struct {
	// StatusCode is the HTTP status code returned by the target.
	// Zero if the request failed before receiving a response.
	StatusCode int

	// Reason is the reason phrase from the status line (e.g. "OK",
	// "Not Found").
	Reason string

	// Latency is the time taken to complete the request.
	Latency time.Duration

	// CheckedAt is the timestamp when the poll was performed.
	CheckedAt time.Time

	// Err contains the error that failed the iteration, or nil.
	Err error
}

// Failed reports whether the iteration failed before a status line could
// be read.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// String renders the one-line report for this outcome.
//
// Success renders as "Status: <code> <reason>", failure as
// "Request failed: <description>". This implements fmt.Stringer and is
// exactly the line the monitor writes to its report stream.
func (o Outcome) String() string {
	if o.Err != nil {
		return "Request failed: " + o.Err.Error()
	}
	return fmt.Sprintf("Status: %d %s", o.StatusCode, o.Reason)
}
