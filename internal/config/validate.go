package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Currency.validate(); err != nil {
		return fmt.Errorf("currency: %w", err)
	}

	if c.Probe.Timeout <= 0 {
		return fmt.Errorf("probe.timeout must be > 0 (got %v)", c.Probe.Timeout)
	}

	if err := c.Dashboard.validate(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	if c.Reminder.MaxTokens <= 0 {
		return fmt.Errorf("reminder.max_tokens must be > 0 (got %d)", c.Reminder.MaxTokens)
	}
	if c.Reminder.WithinDays <= 0 {
		return fmt.Errorf("reminder.within_days must be > 0 (got %d)", c.Reminder.WithinDays)
	}

	return nil
}

func (c *CurrencyConfig) validate() error {
	fallback, err := decimal.NewFromString(c.EGPFallback)
	if err != nil {
		return fmt.Errorf("egp_fallback: %w", err)
	}
	if !fallback.IsPositive() {
		return fmt.Errorf("egp_fallback must be > 0 (got %s)", c.EGPFallback)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be > 0 (got %v)", c.RefreshInterval)
	}
	return nil
}

// EGPFallbackRate returns the parsed fallback rate. Validate guarantees it parses.
func (c CurrencyConfig) EGPFallbackRate() decimal.Decimal {
	d, err := decimal.NewFromString(c.EGPFallback)
	if err != nil {
		return decimal.NewFromInt(50)
	}
	return d
}

func (d *DashboardConfig) validate() error {
	switch strings.ToLower(d.ProbeMode) {
	case ProbeModeConcurrent, ProbeModeSequential:
	default:
		return fmt.Errorf("probe_mode must be %q or %q (got %q)", ProbeModeConcurrent, ProbeModeSequential, d.ProbeMode)
	}
	if d.ProbeConcurrency <= 0 {
		return fmt.Errorf("probe_concurrency must be > 0 (got %d)", d.ProbeConcurrency)
	}
	if d.ProbeDelay < 0 {
		return fmt.Errorf("probe_delay must be >= 0 (got %v)", d.ProbeDelay)
	}
	if d.CompletedGrace < 0 {
		return fmt.Errorf("completed_grace must be >= 0 (got %v)", d.CompletedGrace)
	}
	return nil
}
