// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package grid provides the cell-level building blocks of the Masyu solver:
// directions, coordinates, and the per-cell CellLine lattice that every
// deduction ultimately bottoms out in.
//
// # Value Semantics
//
// Every type in this package is a small value type. Operations never mutate
// their receiver; they return a new value, or the receiver unchanged when
// the operation adds no information. Two CellLine values are interchangeable
// exactly when they are == equal, which is what lets boards be compared
// structurally and hypothetical deductions be discarded without cleanup.
//
// # Contradictions
//
// Lattice transitions that collide with established facts fail with an
// error wrapping ErrContradiction. A contradiction is ordinary control flow
// for this solver: callers probing a hypothesis test for it with errors.Is,
// drop the failed value, and continue from the value they already hold.
package grid

import "errors"

// ErrContradiction is returned when a deduction attempts something already
// proven impossible, such as confirming an excluded direction. It is always
// recoverable: the caller keeps its prior value and discards the attempt.
var ErrContradiction = errors.New("contradiction")

// IsContradiction reports whether err is (or wraps) a contradiction.
func IsContradiction(err error) bool {
	return errors.Is(err, ErrContradiction)
}
