package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %v)", c.Auth.TokenTTL)
	}

	if c.Server.ExpensiveRatePerMinute < 0 {
		return fmt.Errorf("server.expensive_rate_per_minute must be >= 0 (got %d)", c.Server.ExpensiveRatePerMinute)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

// Validate checks engine bounds.
func (e EngineConfig) Validate() error {
	if e.MaxRecursionDepth < 1 {
		return fmt.Errorf("max_recursion_depth must be >= 1 (got %d)", e.MaxRecursionDepth)
	}
	if e.RegexTimeout <= 0 {
		return fmt.Errorf("regex_timeout must be > 0 (got %v)", e.RegexTimeout)
	}
	if e.ReportConcurrency < 1 {
		return fmt.Errorf("report_concurrency must be >= 1 (got %d)", e.ReportConcurrency)
	}
	return nil
}
