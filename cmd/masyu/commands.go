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

	"github.com/spf13/cobra"

	"github.com/AleutianAI/masyu/cmd/masyu/config"
	"github.com/AleutianAI/masyu/pkg/logging"
	"github.com/AleutianAI/masyu/pkg/ux"
	"github.com/AleutianAI/masyu/services/solver"
)

// --- Global Command Variables ---
var (
	plainOutput bool   // Plain text output (no colors, no animations)
	logLevel    string // CLI override for logging.level
	logDir      string // CLI override for logging.dir
	logJSON     bool   // Emit stderr logs as JSON

	logger *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "masyu",
		Short: "A CLI to solve, render, and serve Masyu pearl puzzles",
		Long: `Masyu solves the Masyu family of loop puzzles: deduction first,
search when deduction stalls, and a terminal render of the loop.`,
		Version: solver.ServiceVersion,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize output mode from flag or environment
			if plainOutput {
				ux.SetMode(ux.ModePlain)
			} else {
				ux.InitMode()
			}

			if err := config.Load(); err != nil {
				ux.Warning(fmt.Sprintf("config unavailable, using defaults: %v", err))
			}

			setupLogging()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false,
		"Plain text output without colors or animations")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "",
		"Directory for JSON log files; overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false,
		"Emit stderr logs as JSON")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging builds the logger from the config file plus flag
// overrides and installs it behind the package-level slog calls the
// solver packages use.
func setupLogging() {
	level := config.Global.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	dir := config.Global.Logging.Dir
	if logDir != "" {
		dir = logDir
	}

	logger = logging.New(logging.Config{
		Level:   logging.ParseLevel(level),
		LogDir:  dir,
		Service: "cli",
		JSON:    logJSON || config.Global.Logging.JSON,
	})
	logger.SetDefault()
}

func closeLogging() {
	if logger != nil {
		_ = logger.Close()
	}
}
