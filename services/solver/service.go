// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package solver provides the Masyu HTTP service.
//
// The service is stateless: every request carries or names its puzzle,
// boards are in-memory values, and nothing persists between requests.
// Endpoints cover solving (builtin or inline puzzles), browsing the
// builtin level set, and health.
package solver

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/AleutianAI/masyu/services/solver/board"
	"github.com/AleutianAI/masyu/services/solver/search"
)

// ServiceVersion is the Masyu service version.
const ServiceVersion = "0.1.0"

// Verdict labels for solve outcomes.
const (
	VerdictSolved     = "solved"
	VerdictNoSolution = "no_solution"
	VerdictStuck      = "stuck"
)

// ServiceConfig configures the Masyu service.
type ServiceConfig struct {
	// MaxSteps is the hard cap on search expansions per solve. Requests
	// may ask for less but never more. Default: 100000.
	MaxSteps int

	// SolveTimeout bounds a single solve. Default: 30s.
	SolveTimeout time.Duration
}

// DefaultServiceConfig returns sensible defaults.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxSteps:     100000,
		SolveTimeout: 30 * time.Second,
	}
}

// Service runs solves on behalf of the HTTP handlers.
//
// Thread Safety:
//
//	Service is safe for concurrent use; it holds no mutable state and
//	every solve works on its own board snapshots.
type Service struct {
	config ServiceConfig
}

// NewService creates a new Masyu service.
func NewService(config ServiceConfig) *Service {
	if config.MaxSteps <= 0 {
		config.MaxSteps = DefaultServiceConfig().MaxSteps
	}
	return &Service{config: config}
}

// Solve runs the full pipeline on b and reports the outcome as a verdict
// label plus the search result. The result is nil only for the
// no-solution verdict; err is non-nil for failures that are neither a
// verdict nor a stuck outcome (context expiry, internal errors).
func (s *Service) Solve(ctx context.Context, b *board.Board, maxSteps int) (string, *search.Result, error) {
	if maxSteps <= 0 || maxSteps > s.config.MaxSteps {
		maxSteps = s.config.MaxSteps
	}
	if s.config.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.SolveTimeout)
		defer cancel()
	}

	start := time.Now()
	res, err := search.Solve(ctx, b, search.Config{MaxSteps: maxSteps})
	elapsed := time.Since(start)
	solveDuration.Observe(elapsed.Seconds())

	switch {
	case err == nil:
		solveRequests.WithLabelValues(VerdictSolved).Inc()
		solveSteps.Observe(float64(res.Steps))
		slog.Info("solve finished",
			"verdict", VerdictSolved,
			"steps", res.Steps,
			"duration_ms", elapsed.Milliseconds())
		return VerdictSolved, res, nil
	case errors.Is(err, search.ErrNoSolution):
		solveRequests.WithLabelValues(VerdictNoSolution).Inc()
		slog.Info("solve finished",
			"verdict", VerdictNoSolution,
			"duration_ms", elapsed.Milliseconds())
		return VerdictNoSolution, nil, nil
	case errors.Is(err, search.ErrStuck):
		solveRequests.WithLabelValues(VerdictStuck).Inc()
		solveSteps.Observe(float64(res.Steps))
		slog.Info("solve finished",
			"verdict", VerdictStuck,
			"steps", res.Steps,
			"duration_ms", elapsed.Milliseconds())
		return VerdictStuck, res, nil
	default:
		solveRequests.WithLabelValues("error").Inc()
		slog.Warn("solve failed", "error", err, "duration_ms", elapsed.Milliseconds())
		return "", nil, err
	}
}
