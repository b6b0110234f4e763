// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/masyu/cmd/masyu/config"
	"github.com/AleutianAI/masyu/pkg/ux"
	"github.com/AleutianAI/masyu/services/solver"
	"github.com/AleutianAI/masyu/services/solver/board"
	"github.com/AleutianAI/masyu/services/solver/level"
	"github.com/AleutianAI/masyu/services/solver/render"
	"github.com/AleutianAI/masyu/services/solver/search"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	solveProgress bool   // Print the board after every committed search step
	solveMaxSteps int    // Expansion cap, 0 falls back to the config value
	solveTimeout  string // Wall-clock limit (e.g. "30s"), empty uses config
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// solveCmd solves a puzzle from a file or builtin level.
//
// # Description
//
// Loads a puzzle, runs the deduction rules to a fixpoint, then searches
// the hypothesis tree until the loop closes, every branch contradicts,
// or a limit is hit. The solved loop is drawn in the terminal.
//
// # Examples
//
//	masyu solve ring                  # Builtin level
//	masyu solve puzzles/hard.masyu    # Puzzle file
//	masyu solve ring --progress       # Board after each committed step
//	masyu solve ring --max-steps 500  # Bounded search
//
// # Exit Codes
//
//   - 0: Solved
//   - 1: No solution, limits hit, or the puzzle failed to load
var solveCmd = &cobra.Command{
	Use:   "solve [level name or file]",
	Short: "Solve a Masyu puzzle and draw the loop",
	Long: `Solves a Masyu puzzle from a file or a builtin level.

The solver applies pearl deduction rules until nothing more follows,
then branches on undecided edges, pruning branches that contradict the
rules. The finished loop is drawn with box characters; white pearls are
'o', black pearls are '●'.

Examples:
  masyu solve ring                  # Solve the builtin "ring" level
  masyu solve puzzles/hard.masyu    # Solve a puzzle file
  masyu solve ring --progress       # Show each committed search step
  masyu solve ring --timeout 5s     # Give up after five seconds`,
	Args: cobra.ExactArgs(1),
	Run:  runSolveCommand,
}

// =============================================================================
// COMMAND INITIALIZATION
// =============================================================================

func init() {
	solveCmd.Flags().BoolVarP(&solveProgress, "progress", "p", false,
		"Print the board after every committed search step")
	solveCmd.Flags().IntVar(&solveMaxSteps, "max-steps", 0,
		"Cap on search expansions (0 uses the config value)")
	solveCmd.Flags().StringVar(&solveTimeout, "timeout", "",
		"Wall-clock limit for the solve, e.g. 30s (empty uses the config value)")
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// solveLimits resolves the step and time limits from flags with config
// fallbacks.
func solveLimits() (maxSteps int, timeout time.Duration, err error) {
	maxSteps = config.Global.Solver.GetMaxSteps()
	if solveMaxSteps > 0 {
		maxSteps = solveMaxSteps
	}

	timeout = config.Global.Solver.GetTimeout()
	if solveTimeout != "" {
		timeout, err = time.ParseDuration(solveTimeout)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid timeout %q: %w", solveTimeout, err)
		}
	}
	return maxSteps, timeout, nil
}

// runSolveCommand loads the puzzle, runs the solver, and reports the
// outcome.
//
// # Description
//
// Resolves the argument as a file path first and a builtin level name
// second. While searching, either prints each committed board state
// (--progress) or animates a spinner. On success the loop is drawn and
// a summary line printed.
func runSolveCommand(cmd *cobra.Command, args []string) {
	b, err := level.Resolve(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load puzzle %q: %v\n", args[0], err)
		os.Exit(1)
	}

	maxSteps, timeout, err := solveLimits()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	renderer := render.New(!ux.Plain())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := search.Config{MaxSteps: maxSteps}
	var spin *ux.Spinner
	if solveProgress {
		// Step 0, when reported, is the board after the opening
		// deductions; later steps follow committed hypotheses.
		fmt.Println(renderer.Board(b))
		cfg.Progress = func(pb *board.Board, step int) {
			fmt.Printf("step %d\n", step)
			fmt.Println(renderer.Board(pb))
		}
	} else if !ux.Plain() {
		spin = ux.NewSpinner("searching")
		cfg.Progress = func(_ *board.Board, step int) {
			spin.UpdateMessage(fmt.Sprintf("searching [step %d]", step))
		}
		spin.Start()
	}

	start := time.Now()
	res, err := search.Solve(ctx, b, cfg)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		if spin != nil {
			spin.Stop()
		}
		fmt.Println(renderer.Board(res.Board))
		ux.Summary(solver.VerdictSolved, res.Steps, elapsed)

	case errors.Is(err, search.ErrNoSolution):
		if spin != nil {
			spin.Stop()
		}
		ux.Error("no solution exists")
		os.Exit(1)

	case errors.Is(err, search.ErrStuck):
		if spin != nil {
			spin.Stop()
		}
		if res != nil && res.Board != nil {
			fmt.Println(renderer.Board(res.Board))
			ux.Summary(solver.VerdictStuck, res.Steps, elapsed)
		}
		ux.Warning(fmt.Sprintf("gave up after %d expansions; raise --max-steps", maxSteps))
		os.Exit(1)

	case errors.Is(err, context.DeadlineExceeded):
		if spin != nil {
			spin.Stop()
		}
		ux.Error(fmt.Sprintf("solve timed out after %s", timeout))
		os.Exit(1)

	default:
		if spin != nil {
			spin.Stop()
		}
		fmt.Fprintf(os.Stderr, "Solve failed: %v\n", err)
		os.Exit(1)
	}
}
