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
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/masyu/cmd/masyu/config"
	"github.com/AleutianAI/masyu/pkg/ux"
	"github.com/AleutianAI/masyu/services/solver/level"
	"github.com/AleutianAI/masyu/services/solver/search"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var levelsCheck bool // Solve every builtin level and report verdicts

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// levelsCmd lists the builtin levels.
//
// # Description
//
// Prints each builtin level with its dimensions and pearl count. With
// --check, every level is solved in parallel and the verdicts reported,
// which catches a broken embedded level after edits.
//
// # Examples
//
//	masyu levels
//	masyu levels --check
var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the builtin levels",
	Long: `Lists the levels embedded in the binary.

With --check, every builtin level is solved in parallel and its verdict
reported. The command exits non-zero if any level fails to solve.

Examples:
  masyu levels
  masyu levels --check`,
	Args: cobra.NoArgs,
	Run:  runLevelsCommand,
}

// =============================================================================
// COMMAND INITIALIZATION
// =============================================================================

func init() {
	levelsCmd.Flags().BoolVar(&levelsCheck, "check", false,
		"Solve every builtin level and report the verdicts")
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// levelCheck is one level's verdict from a --check run.
type levelCheck struct {
	steps   int
	elapsed time.Duration
	err     error
}

// checkLevels solves the named builtin levels in parallel and returns one
// verdict per name, in input order.
func checkLevels(ctx context.Context, names []string, maxSteps int) []levelCheck {
	checks := make([]levelCheck, len(names))

	g, gCtx := errgroup.WithContext(ctx)

	for i, name := range names {
		i, name := i, name // Capture loop variables

		g.Go(func() error {
			b, err := level.Builtin(name)
			if err != nil {
				checks[i] = levelCheck{err: err}
				return nil
			}

			start := time.Now()
			res, err := search.Solve(gCtx, b, search.Config{MaxSteps: maxSteps})
			checks[i] = levelCheck{elapsed: time.Since(start), err: err}
			if res != nil {
				checks[i].steps = res.Steps
			}

			return nil // Verdicts are recorded per level, never fail the group
		})
	}

	// Wait for all levels (workers never return errors)
	_ = g.Wait()

	return checks
}

func runLevelsCommand(cmd *cobra.Command, args []string) {
	names := level.Names()

	if !levelsCheck {
		for _, name := range names {
			b, err := level.Builtin(name)
			if err != nil {
				continue
			}
			dims := fmt.Sprintf("%dx%d, %d pearls", b.Width(), b.Height(), len(b.Pearls()))
			if ux.Plain() {
				fmt.Printf("%s\t%s\n", name, dims)
			} else {
				fmt.Printf("%s %s %s\n", ux.IconBullet.Render(),
					ux.Styles.Bold.Render(name), ux.Styles.Muted.Render(dims))
			}
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Global.Solver.GetTimeout())
	defer cancel()

	checks := checkLevels(ctx, names, config.Global.Solver.GetMaxSteps())

	failed := 0
	for i, name := range names {
		c := checks[i]
		switch {
		case c.err == nil:
			ux.Success(fmt.Sprintf("%s solved in %d steps (%s)",
				name, c.steps, c.elapsed.Round(time.Millisecond)))
		case errors.Is(c.err, search.ErrStuck):
			ux.Warning(fmt.Sprintf("%s stuck after %d steps", name, c.steps))
			failed++
		default:
			ux.Error(fmt.Sprintf("%s: %v", name, c.err))
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
