// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import "time"

const (
	DefaultMaxSteps       = 100000
	DefaultTimeoutSeconds = 30
	DefaultListenAddr     = ":8087"
)

type MasyuConfig struct {
	// Solver: step and time limits for the search
	Solver SolverConfig `yaml:"solver"`

	// Server: HTTP API settings for masyu serve
	Server ServerConfig `yaml:"server"`

	// Logging: destinations and verbosity
	Logging LoggingConfig `yaml:"logging"`
}

type SolverConfig struct {
	MaxSteps       int `yaml:"max_steps"`       // e.g. 100000
	TimeoutSeconds int `yaml:"timeout_seconds"` // e.g. 30
}

type ServerConfig struct {
	Listen    string  `yaml:"listen"`     // e.g. :8087
	RateLimit float64 `yaml:"rate_limit"` // solve requests per second, 0 disables
	RateBurst int     `yaml:"rate_burst"` // burst allowance above the rate
}

type LoggingConfig struct {
	// Level can be "debug", "info", "warn", or "error"
	Level string `yaml:"level"`
	Dir   string `yaml:"dir,omitempty"`
	JSON  bool   `yaml:"json"`
}

// GetMaxSteps returns the configured step limit, falling back to the
// default when unset.
func (c SolverConfig) GetMaxSteps() int {
	if c.MaxSteps <= 0 {
		return DefaultMaxSteps
	}
	return c.MaxSteps
}

// GetTimeout returns the configured solve timeout as a duration.
func (c SolverConfig) GetTimeout() time.Duration {
	seconds := c.TimeoutSeconds
	if seconds <= 0 {
		seconds = DefaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// GetListen returns the configured listen address, falling back to the
// default when unset.
func (c ServerConfig) GetListen() string {
	if c.Listen == "" {
		return DefaultListenAddr
	}
	return c.Listen
}

func DefaultConfig() MasyuConfig {
	return MasyuConfig{
		Solver: SolverConfig{
			MaxSteps:       DefaultMaxSteps,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Server: ServerConfig{
			Listen:    DefaultListenAddr,
			RateLimit: 10,
			RateBurst: 20,
		},
		Logging: LoggingConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
