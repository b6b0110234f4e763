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
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/masyu/cmd/masyu/config"
	"github.com/AleutianAI/masyu/pkg/ux"
	"github.com/AleutianAI/masyu/services/solver"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	serveListen    string  // Listen address, empty uses the config value
	serveRateLimit float64 // Solve requests per second, 0 uses config
	serveRateBurst int     // Token bucket burst, 0 uses config
	serveDebug     bool    // Gin debug mode and request logging
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// serveCmd runs the solver as an HTTP API.
//
// # Description
//
// Starts a Gin server exposing the solve, levels, and health endpoints
// under /v1/masyu, plus Prometheus metrics at /metrics. The solve
// endpoint is rate limited with a token bucket. SIGINT or SIGTERM shuts
// the server down gracefully.
//
// # Examples
//
//	masyu serve
//	masyu serve --listen :9090 --debug
//	curl -X POST localhost:8087/v1/masyu/solve -d '{"level":"ring"}'
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Masyu solver HTTP API",
	Long: `Runs the solver as an HTTP API.

Endpoints:
  POST /v1/masyu/solve         Solve a builtin or inline puzzle
  GET  /v1/masyu/levels        List builtin puzzles
  GET  /v1/masyu/levels/:name  Builtin puzzle details
  GET  /v1/masyu/health        Health check
  GET  /metrics                Prometheus metrics

Examples:
  masyu serve
  masyu serve --listen :9090 --rate-limit 5 --rate-burst 10
  curl -X POST localhost:8087/v1/masyu/solve -d '{"level":"ring"}'`,
	Args: cobra.NoArgs,
	Run:  runServeCommand,
}

// =============================================================================
// COMMAND INITIALIZATION
// =============================================================================

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "",
		"Listen address, e.g. :8087 (empty uses the config value)")
	serveCmd.Flags().Float64Var(&serveRateLimit, "rate-limit", 0,
		"Solve requests per second, 0 uses the config value, negative disables")
	serveCmd.Flags().IntVar(&serveRateBurst, "rate-burst", 0,
		"Token bucket burst for the solve endpoint (0 uses the config value)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false,
		"Enable Gin debug mode and request logging")
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runServeCommand(cmd *cobra.Command, args []string) {
	listen := config.Global.Server.GetListen()
	if serveListen != "" {
		listen = serveListen
	}
	rate := config.Global.Server.RateLimit
	if serveRateLimit != 0 {
		rate = serveRateLimit
	}
	burst := config.Global.Server.RateBurst
	if serveRateBurst > 0 {
		burst = serveRateBurst
	}

	// Set Gin mode
	if serveDebug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	svcCfg := solver.DefaultServiceConfig()
	svcCfg.MaxSteps = config.Global.Solver.GetMaxSteps()
	svcCfg.SolveTimeout = config.Global.Solver.GetTimeout()
	svc := solver.NewService(svcCfg)

	handlers := solver.NewHandlers(svc)
	if rate > 0 {
		handlers = handlers.WithRateLimit(rate, burst)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if serveDebug {
		router.Use(gin.Logger())
	}

	v1 := router.Group("/v1")
	solver.RegisterRoutes(v1, handlers)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	printServeBanner(listen)

	srv := &http.Server{
		Addr:              listen,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("solver API listening", "addr", listen, "version", solver.ServiceVersion)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down solver API")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		os.Exit(1)
	}
}

func printServeBanner(listen string) {
	if ux.Plain() {
		fmt.Printf("listening on %s\n", listen)
		return
	}

	banner := `
╔═══════════════════════════════════════════════════════════╗
║                   MASYU SOLVER API                        ║
╠═══════════════════════════════════════════════════════════╣
║                                                           ║
║  Quick Start:                                             ║
║  ┌─────────────────────────────────────────────────────┐  ║
║  │ # Solve a builtin level                             │  ║
║  │ curl -X POST localhost%s/v1/masyu/solve \       │  ║
║  │   -d '{"level": "ring"}'                            │  ║
║  │                                                     │  ║
║  │ # List builtin levels                               │  ║
║  │ curl localhost%s/v1/masyu/levels | jq           │  ║
║  └─────────────────────────────────────────────────────┘  ║
║                                                           ║
║  Endpoints:                                               ║
║  ├── POST /v1/masyu/solve                                 ║
║  ├── GET  /v1/masyu/levels, /v1/masyu/levels/:name        ║
║  ├── GET  /v1/masyu/health                                ║
║  └── GET  /metrics                                        ║
║                                                           ║
║  Press Ctrl+C to stop                                     ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Printf(banner, listen, listen)
}
