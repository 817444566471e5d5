// Package poller implements the HTTP polling machinery for upmon.
//
// It contains two pieces: [Client], a thin wrapper over net/http that
// performs one GET, captures the status line, and drains and releases
// the connection on every exit path; and [Loop], the strictly sequential
// request/report/sleep cycle that runs until its context is cancelled.
//
// This package is internal and not part of the public API.
package poller
