// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package board holds the immutable Masyu board snapshot and the global
// reasoning that keeps it consistent: worklist propagation of cell changes
// and incremental tracking of the loop fragments those changes create.
//
// # Mutation Model
//
// A Board is never modified after construction. Every mutator returns a new
// Board on success and the receiver unchanged on failure, so callers can
// probe hypothetical deductions and simply keep their old reference when a
// probe contradicts. Unchanged state (the pearl map, untouched cells) is
// shared between snapshots; sharing is safe because nothing writes through
// it.
//
// # Terminal Signals
//
// Propagation has three outcomes. Most changes produce a new Board. A
// change that collides with established facts fails with an error wrapping
// grid.ErrContradiction. A change that closes the loop ends the game: if
// the closed loop covers every pearl the mutator returns a *Solved error
// carrying the finished board, which must unwind uncaught to the top-level
// solve driver; if any pearl is left outside, the closure is an
// *IncompleteLoopError, an ordinary contradiction.
package board

import (
	"fmt"

	"github.com/AleutianAI/masyu/services/solver/grid"
)

// Solved signals that propagation closed the loop over every pearl. It
// travels as an error so it can unwind through rule application, fixpoint
// iteration, and the search tree without special plumbing; only the solve
// driver should catch it (errors.As) and unpack the finished board.
type Solved struct {
	Board *Board
}

// Error implements the error interface.
func (s *Solved) Error() string {
	return "puzzle solved"
}

// IncompleteLoopError reports a closed loop that leaves at least one pearl
// outside. The loop can never be extended (it is closed), so this is a
// contradiction: errors.Is(err, grid.ErrContradiction) holds.
type IncompleteLoopError struct {
	// Missing lists the pearl coordinates outside the closed loop.
	Missing []grid.Coord
}

// Error implements the error interface.
func (e *IncompleteLoopError) Error() string {
	return fmt.Sprintf("closed loop leaves %d pearl(s) outside", len(e.Missing))
}

// Unwrap marks the error as a contradiction subtype.
func (e *IncompleteLoopError) Unwrap() error {
	return grid.ErrContradiction
}
