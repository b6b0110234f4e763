// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AleutianAI/masyu/services/solver/board"
	"github.com/AleutianAI/masyu/services/solver/grid"
	"github.com/AleutianAI/masyu/services/solver/rules"
)

// Progress is called with each new root board and the expansion count so
// far: once with step 0 when the opening deductions changed the board,
// then after every expansion that changed the root.
type Progress func(b *board.Board, step int)

// Config tunes a solve run. The zero value searches without limits and
// reports no progress.
type Config struct {
	// MaxSteps caps the number of tree expansions; 0 means no cap.
	MaxSteps int
	// Progress, when set, observes root board changes during the search.
	Progress Progress
}

// Result is the outcome of a solve run. Board is the solution when Solved
// is true; alongside ErrStuck it is the best-known partial state instead.
type Result struct {
	Board  *board.Board
	Steps  int
	Solved bool
}

// Solve runs the full pipeline on a fresh puzzle board: the one-shot
// opening patterns, the rule fixpoint, then tree search until the loop
// closes over every pearl, every branch contradicts (ErrNoSolution), the
// expansion budget runs out (ErrStuck), or ctx is done.
func Solve(ctx context.Context, b *board.Board, cfg Config) (*Result, error) {
	slog.Debug("solve starting",
		"width", b.Width(),
		"height", b.Height(),
		"pearls", len(b.Pearls()))

	current, err := rules.ApplyInitialPatterns(b)
	if err != nil {
		return verdict(err, 0)
	}
	current, err = rules.Fixpoint(current)
	if err != nil {
		return verdict(err, 0)
	}

	root := &lookahead{board: current}
	lastSeen := root.board
	if cfg.Progress != nil && current != b {
		cfg.Progress(current, 0)
	}

	for step := 1; ; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if cfg.MaxSteps > 0 && step > cfg.MaxSteps {
			slog.Debug("solve hit expansion cap", "max_steps", cfg.MaxSteps)
			return &Result{Board: root.board, Steps: step - 1},
				fmt.Errorf("no verdict within %d expansions: %w", cfg.MaxSteps, ErrStuck)
		}

		progressed, err := explore(root)
		if err != nil {
			return verdict(err, step)
		}
		if !progressed {
			return &Result{Board: root.board, Steps: step - 1},
				fmt.Errorf("hypothesis tree fully explored: %w", ErrStuck)
		}

		if root.board != lastSeen {
			lastSeen = root.board
			if cfg.Progress != nil {
				cfg.Progress(root.board, step)
			}
		}
	}
}

// verdict translates a terminal engine error into a solve outcome: the
// solved board rides out as a success, a contradiction means the puzzle
// has no solution, and anything else is reported as-is.
func verdict(err error, steps int) (*Result, error) {
	var solved *board.Solved
	if errors.As(err, &solved) {
		slog.Debug("solve finished", "steps", steps)
		return &Result{Board: solved.Board, Steps: steps, Solved: true}, nil
	}
	if grid.IsContradiction(err) && !errors.Is(err, ErrNoSolution) {
		err = fmt.Errorf("%w: %v", ErrNoSolution, err)
	}
	if errors.Is(err, ErrNoSolution) {
		slog.Debug("solve found no solution", "steps", steps)
	}
	return nil, err
}
