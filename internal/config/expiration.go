package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvExpirationEnabled     = "EXPIRATION_ENABLED"
	EnvExpirationInterval    = "EXPIRATION_INTERVAL"
	EnvExpirationWarningDays = "EXPIRATION_WARNING_DAYS"
)

// ExpirationConfig configures status computation and the background sweeper.
type ExpirationConfig struct {
	Enabled     *bool  `toml:"enabled"`
	Interval    string `toml:"interval"`
	WarningDays int    `toml:"warning_days"`
}

// SweepEnabled reports whether the background sweeper runs.
func (c *ExpirationConfig) SweepEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func (c *ExpirationConfig) IntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.Interval)
	return d
}

func (c *ExpirationConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *ExpirationConfig) Merge(overlay *ExpirationConfig) {
	if overlay.Enabled != nil {
		c.Enabled = overlay.Enabled
	}
	if overlay.Interval != "" {
		c.Interval = overlay.Interval
	}
	if overlay.WarningDays != 0 {
		c.WarningDays = overlay.WarningDays
	}
}

func (c *ExpirationConfig) loadDefaults() {
	if c.Interval == "" {
		c.Interval = "1h"
	}
	if c.WarningDays == 0 {
		c.WarningDays = 7
	}
}

func (c *ExpirationConfig) loadEnv() {
	if v := os.Getenv(EnvExpirationEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Enabled = &b
		}
	}
	if v := os.Getenv(EnvExpirationInterval); v != "" {
		c.Interval = v
	}
	if v := os.Getenv(EnvExpirationWarningDays); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.WarningDays = n
		}
	}
}

func (c *ExpirationConfig) validate() error {
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return fmt.Errorf("invalid interval: %w", err)
	}
	if d < time.Minute {
		return fmt.Errorf("interval must be at least 1m: %s", c.Interval)
	}
	if c.WarningDays < 0 {
		return fmt.Errorf("warning_days must not be negative: %d", c.WarningDays)
	}
	return nil
}
