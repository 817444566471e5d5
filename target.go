package upmon

import (
	"errors"
	"fmt"
	"strings"
)

// Reference configuration: the fixed endpoint the standalone binary polls
// when no config file is supplied.
const (
	// DefaultHost is the host polled by the reference configuration.
	DefaultHost = "get-lookover-auto-sync-api.rf.gd"

	// DefaultPath is the path polled by the reference configuration.
	DefaultPath = "/script.php"
)

// Target identifies the fixed endpoint the monitor polls.
//
// Target is immutable after creation via [NewTarget]. All fields are
// private with getter methods, ensuring the target cannot be modified
// after construction. The scheme defaults to HTTPS.
type Target struct {
	scheme string
	host   string
	path   string
}

// TargetOption configures a [Target] during construction.
type TargetOption func(*targetConfig) error

// targetConfig holds mutable state during Target construction.
type targetConfig struct {
	scheme string
}

// WithScheme overrides the URL scheme for the target.
//
// Only "http" and "https" are accepted. The default is "https"; plain
// HTTP exists so tests can point the monitor at local servers.
func WithScheme(scheme string) TargetOption {
	return func(cfg *targetConfig) error {
		if scheme != "http" && scheme != "https" {
			return fmt.Errorf("scheme must be http or https, got %q", scheme)
		}
		cfg.scheme = scheme
		return nil
	}
}

// NewTarget creates a [Target] for the given host and path.
//
// The host must be non-empty and may include a port. The path must begin
// with "/". The scheme is HTTPS unless overridden with [WithScheme].
//
// Example:
//
//	target, err := upmon.NewTarget("status.example.com", "/health")
func NewTarget(host, path string, opts ...TargetOption) (Target, error) {
	if host == "" {
		return Target{}, errors.New("target host cannot be empty")
	}
	if !strings.HasPrefix(path, "/") {
		return Target{}, fmt.Errorf("target path must begin with %q, got %q", "/", path)
	}

	cfg := &targetConfig{scheme: "https"}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return Target{}, err
		}
	}

	return Target{
		scheme: cfg.scheme,
		host:   host,
		path:   path,
	}, nil
}

// DefaultTarget returns the reference target baked into the standalone
// binary: HTTPS GET against [DefaultHost] at [DefaultPath].
func DefaultTarget() Target {
	t, err := NewTarget(DefaultHost, DefaultPath)
	if err != nil {
		// the reference values are constants; this cannot fail
		panic(err)
	}
	return t
}

// Scheme returns the target's URL scheme ("http" or "https").
func (t Target) Scheme() string {
	return t.scheme
}

// Host returns the target's host, including the port if one was given.
func (t Target) Host() string {
	return t.host
}

// Path returns the target's request path.
func (t Target) Path() string {
	return t.path
}

// URL renders the target as a full URL string.
func (t Target) URL() string {
	return t.scheme + "://" + t.host + t.path
}

// IsZero reports whether the target is the zero value, i.e. was never
// constructed via [NewTarget].
func (t Target) IsZero() bool {
	return t == Target{}
}
