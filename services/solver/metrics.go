// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// solveRequests counts solves by outcome.
	// Labels: "solved", "no_solution", "stuck", "error"
	solveRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "masyu_solve_requests_total",
		Help: "Total solve runs by verdict",
	}, []string{"verdict"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "masyu_solve_duration_seconds",
		Help:    "Solve pipeline duration",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
	})

	solveSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "masyu_solve_steps",
		Help:    "Search expansions per finished solve",
		Buckets: []float64{0, 1, 5, 20, 100, 1000, 10000},
	})

	rateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "masyu_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})
)
