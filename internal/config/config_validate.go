// Postwright - Social Post Analytics and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwright

package config

import (
	"fmt"

	"github.com/tomtom215/postwright/internal/validation"
)

// Validate checks struct tag rules and then cross-field constraints.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	if err := c.validateBreaker(); err != nil {
		return err
	}
	return c.validateServer()
}

func (c *Config) validateBreaker() error {
	if !c.Breaker.Enabled {
		return nil
	}
	if c.Breaker.Timeout <= 0 {
		return fmt.Errorf("STORAGE_BREAKER_TIMEOUT must be positive when the breaker is enabled")
	}
	if c.Breaker.MaxRequests == 0 {
		return fmt.Errorf("STORAGE_BREAKER_MAX_REQUESTS must be at least 1 when the breaker is enabled")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.RateLimitDisabled {
		return nil
	}
	if c.Server.RateLimitRequests < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1 unless DISABLE_RATE_LIMIT=true")
	}
	if c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive unless DISABLE_RATE_LIMIT=true")
	}
	return nil
}
