// Package config provides YAML configuration parsing for upmon.
//
// The standalone binary needs no configuration at all: every field has a
// default, and the defaults are the reference target. A config file only
// exists to override them.
//
// Example configuration:
//
//	target:
//	  host: status.example.com
//	  path: /health
//	interval: 5s
//	timeout: 3s
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kerridge/upmon"
)

// minInterval is the minimum allowed polling interval. This prevents
// accidental DoS of the target with overly aggressive polling.
const minInterval = 1 * time.Second

// defaults applied by Parse for any field left unset.
const (
	defaultInterval = Duration(1 * time.Second)
	defaultTimeout  = Duration(10 * time.Second)
)

// Config is the root configuration structure for upmon.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Target is the endpoint to poll. Defaults to the reference target.
	Target TargetConfig `yaml:"target"`

	// Interval is the fixed sleep between iterations.
	// Accepts duration strings like "1s", "500ms", "1m". Defaults to 1s.
	Interval Duration `yaml:"interval"`

	// Timeout is the per-request timeout. Defaults to 10s.
	Timeout Duration `yaml:"timeout"`
}

// TargetConfig defines the polled endpoint.
type TargetConfig struct {
	// Scheme is the URL scheme, "http" or "https". Defaults to https.
	Scheme string `yaml:"scheme"`

	// Host is the host to poll, optionally with a port.
	Host string `yaml:"host"`

	// Path is the request path. Must begin with "/".
	Path string `yaml:"path"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Load reads and parses a YAML configuration file.
//
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Defaults are applied for every unset field, so empty input yields the
// reference configuration: the baked-in target polled every second.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Target.Scheme == "" {
		cfg.Target.Scheme = "https"
	}
	if cfg.Target.Host == "" {
		cfg.Target.Host = upmon.DefaultHost
	}
	if cfg.Target.Path == "" {
		cfg.Target.Path = upmon.DefaultPath
	}
	if cfg.Interval == 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is given:
// the reference target, 1s interval, 10s timeout.
func Default() *Config {
	cfg, err := Parse(nil)
	if err != nil {
		// defaults are constants; this cannot fail
		panic(err)
	}
	return cfg
}

// validate checks the config after defaults have been applied.
func (c *Config) validate() error {
	if c.Target.Scheme != "http" && c.Target.Scheme != "https" {
		return fmt.Errorf("target: scheme must be http or https, got %q", c.Target.Scheme)
	}

	if c.Target.Host == "" {
		return fmt.Errorf("target: host is required")
	}

	if !strings.HasPrefix(c.Target.Path, "/") {
		return fmt.Errorf("target: path must begin with %q, got %q", "/", c.Target.Path)
	}

	if c.Interval.Duration() < minInterval {
		return fmt.Errorf("interval must be at least %s, got %s", minInterval, c.Interval.Duration())
	}

	if c.Timeout.Duration() < time.Second {
		return fmt.Errorf("timeout must be at least 1s, got %s", c.Timeout.Duration())
	}

	return nil
}
