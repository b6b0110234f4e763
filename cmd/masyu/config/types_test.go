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

import (
	"testing"
	"time"
)

// -----------------------------------------------------------------------------
// SolverConfig Tests
// -----------------------------------------------------------------------------

// TestSolverConfig_GetMaxSteps verifies default fallback.
func TestSolverConfig_GetMaxSteps(t *testing.T) {
	tests := []struct {
		name     string
		config   SolverConfig
		expected int
	}{
		{
			name:     "returns configured value",
			config:   SolverConfig{MaxSteps: 500},
			expected: 500,
		},
		{
			name:     "returns default when zero",
			config:   SolverConfig{},
			expected: DefaultMaxSteps,
		},
		{
			name:     "returns default when negative",
			config:   SolverConfig{MaxSteps: -1},
			expected: DefaultMaxSteps,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.GetMaxSteps(); got != tt.expected {
				t.Errorf("GetMaxSteps() = %d, want %d", got, tt.expected)
			}
		})
	}
}

// TestSolverConfig_GetTimeout verifies seconds-to-duration conversion.
func TestSolverConfig_GetTimeout(t *testing.T) {
	tests := []struct {
		name     string
		config   SolverConfig
		expected time.Duration
	}{
		{
			name:     "returns configured value",
			config:   SolverConfig{TimeoutSeconds: 5},
			expected: 5 * time.Second,
		},
		{
			name:     "returns default when zero",
			config:   SolverConfig{},
			expected: DefaultTimeoutSeconds * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.GetTimeout(); got != tt.expected {
				t.Errorf("GetTimeout() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// ServerConfig Tests
// -----------------------------------------------------------------------------

// TestServerConfig_GetListen verifies default fallback.
func TestServerConfig_GetListen(t *testing.T) {
	tests := []struct {
		name     string
		config   ServerConfig
		expected string
	}{
		{
			name:     "returns configured value",
			config:   ServerConfig{Listen: "127.0.0.1:9000"},
			expected: "127.0.0.1:9000",
		},
		{
			name:     "returns default when empty",
			config:   ServerConfig{},
			expected: DefaultListenAddr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.GetListen(); got != tt.expected {
				t.Errorf("GetListen() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// DefaultConfig Tests
// -----------------------------------------------------------------------------

// TestDefaultConfig verifies every section carries sane defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Solver.MaxSteps != DefaultMaxSteps {
		t.Errorf("Solver.MaxSteps = %d, want %d", cfg.Solver.MaxSteps, DefaultMaxSteps)
	}
	if cfg.Solver.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("Solver.TimeoutSeconds = %d, want %d",
			cfg.Solver.TimeoutSeconds, DefaultTimeoutSeconds)
	}
	if cfg.Server.Listen != DefaultListenAddr {
		t.Errorf("Server.Listen = %q, want %q", cfg.Server.Listen, DefaultListenAddr)
	}
	if cfg.Server.RateLimit <= 0 {
		t.Error("Server.RateLimit should default to a positive rate")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}
