package config

import (
	"github.com/kerridge/upmon"
)

// BuildTarget converts parsed configuration into an SDK Target.
func BuildTarget(cfg *Config) (upmon.Target, error) {
	var opts []upmon.TargetOption

	if cfg.Target.Scheme != "" && cfg.Target.Scheme != "https" {
		opts = append(opts, upmon.WithScheme(cfg.Target.Scheme))
	}

	return upmon.NewTarget(cfg.Target.Host, cfg.Target.Path, opts...)
}

// BuildOptions converts parsed configuration into SDK options for
// [upmon.New]. The returned slice includes the target; callers append
// their own logger, output, and callback options.
func BuildOptions(cfg *Config) ([]upmon.Option, error) {
	target, err := BuildTarget(cfg)
	if err != nil {
		return nil, err
	}

	opts := []upmon.Option{
		upmon.WithTarget(target),
	}

	if cfg.Interval != 0 {
		opts = append(opts, upmon.WithInterval(cfg.Interval.Duration()))
	}

	if cfg.Timeout != 0 {
		opts = append(opts, upmon.WithRequestTimeout(cfg.Timeout.Duration()))
	}

	return opts, nil
}
