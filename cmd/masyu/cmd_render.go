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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/masyu/pkg/ux"
	"github.com/AleutianAI/masyu/services/solver/level"
	"github.com/AleutianAI/masyu/services/solver/render"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var renderCompact bool // One line per row, pearls only

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// renderCmd draws a puzzle without solving it.
//
// # Description
//
// Loads a puzzle and draws its pearls on an empty grid, so a level file
// can be checked visually before solving. No deduction runs.
//
// # Examples
//
//	masyu render ring
//	masyu render puzzles/hard.masyu --compact
var renderCmd = &cobra.Command{
	Use:   "render [level name or file]",
	Short: "Draw a puzzle without solving it",
	Long: `Draws a Masyu puzzle exactly as given, without running the solver.

Useful for checking a hand-written level file: white pearls show as 'o',
black pearls as '●', empty cells as dots.

Examples:
  masyu render ring
  masyu render puzzles/hard.masyu --compact`,
	Args: cobra.ExactArgs(1),
	Run:  runRenderCommand,
}

// =============================================================================
// COMMAND INITIALIZATION
// =============================================================================

func init() {
	renderCmd.Flags().BoolVar(&renderCompact, "compact", false,
		"One character per cell, no grid lines")
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runRenderCommand(cmd *cobra.Command, args []string) {
	b, err := level.Resolve(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load puzzle %q: %v\n", args[0], err)
		os.Exit(1)
	}

	renderer := render.New(!ux.Plain())
	if renderCompact {
		fmt.Println(renderer.Compact(b))
	} else {
		fmt.Println(renderer.Board(b))
	}
	ux.Info(fmt.Sprintf("%s: %dx%d, %d pearls", args[0], b.Width(), b.Height(), len(b.Pearls())))
}
