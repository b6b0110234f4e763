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
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/masyu/cmd/masyu/config"
	"github.com/AleutianAI/masyu/pkg/ux"
	"github.com/AleutianAI/masyu/services/solver"
	"github.com/AleutianAI/masyu/services/solver/level"
	"github.com/AleutianAI/masyu/services/solver/render"
	"github.com/AleutianAI/masyu/services/solver/search"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var watchDebounce string // How long to wait for edits to settle

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// watchCmd re-solves a puzzle file whenever it changes on disk.
//
// # Description
//
// Watches a level file and re-solves it after every save, so a puzzle
// can be authored with the solution visible in a second terminal.
// Editor saves are debounced; most editors write a file several times
// per save, or replace it by rename.
//
// # Examples
//
//	masyu watch puzzles/draft.masyu
//	masyu watch puzzles/draft.masyu --debounce 500ms
var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-solve a puzzle file whenever it changes",
	Long: `Watches a puzzle file and re-solves it after every save.

Handy while authoring a level: keep the watch running in one terminal
and edit the file in another. Changes are debounced so a burst of
editor writes triggers a single solve. Stop with Ctrl+C.

Examples:
  masyu watch puzzles/draft.masyu
  masyu watch puzzles/draft.masyu --debounce 500ms`,
	Args: cobra.ExactArgs(1),
	Run:  runWatchCommand,
}

// =============================================================================
// COMMAND INITIALIZATION
// =============================================================================

func init() {
	watchCmd.Flags().StringVar(&watchDebounce, "debounce", "200ms",
		"How long to wait for edits to settle before re-solving")
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// solveWatched loads and solves one snapshot of the watched file,
// drawing the outcome. Errors are reported but never fatal; the next
// save gets a fresh attempt.
func solveWatched(path string) {
	b, err := level.Load(path)
	if err != nil {
		ux.Error(fmt.Sprintf("%s: %v", path, err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Global.Solver.GetTimeout())
	defer cancel()

	renderer := render.New(!ux.Plain())
	start := time.Now()
	res, err := search.Solve(ctx, b, search.Config{MaxSteps: config.Global.Solver.GetMaxSteps()})
	elapsed := time.Since(start)

	switch {
	case err == nil:
		fmt.Println(renderer.Board(res.Board))
		ux.Summary(solver.VerdictSolved, res.Steps, elapsed)
	case errors.Is(err, search.ErrNoSolution):
		ux.Error("no solution exists")
	case errors.Is(err, search.ErrStuck):
		if res != nil && res.Board != nil {
			fmt.Println(renderer.Board(res.Board))
		}
		ux.Warning("search gave up; raise max_steps in the config")
	case errors.Is(err, context.DeadlineExceeded):
		ux.Error("solve timed out")
	default:
		ux.Error(err.Error())
	}
}

func runWatchCommand(cmd *cobra.Command, args []string) {
	debounce, err := time.ParseDuration(watchDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid debounce %q: %v\n", watchDebounce, err)
		os.Exit(1)
	}

	target, err := filepath.Abs(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve %q: %v\n", args[0], err)
		os.Exit(1)
	}

	solveWatched(target)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start the file watcher: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	// Watch the parent directory rather than the file: editors that save
	// by rename would otherwise drop the watch on the first save.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to watch %s: %v\n", filepath.Dir(target), err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ux.Info(fmt.Sprintf("watching %s (Ctrl+C to stop)", args[0]))

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) {
				continue
			}

			// Reset or start debounce timer
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			ux.Warning(fmt.Sprintf("watch error: %v", err))

		case <-timerC:
			timer = nil
			timerC = nil
			ux.Info(fmt.Sprintf("%s changed at %s", args[0], time.Now().Format("15:04:05")))
			solveWatched(target)
		}
	}
}
