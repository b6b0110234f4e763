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
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all Masyu routes with the router.
//
// Endpoints:
//
//	POST /v1/masyu/solve - Solve a builtin or inline puzzle
//	GET  /v1/masyu/levels - List builtin puzzles
//	GET  /v1/masyu/levels/:name - Builtin puzzle details
//	GET  /v1/masyu/health - Health check
//
// Example:
//
//	service := solver.NewService(solver.DefaultServiceConfig())
//	handlers := solver.NewHandlers(service).WithRateLimit(5, 10)
//
//	v1 := router.Group("/v1")
//	solver.RegisterRoutes(v1, handlers)
func RegisterRoutes(rg *gin.RouterGroup, handlers *Handlers) {
	masyu := rg.Group("/masyu")
	{
		if handlers.limit != nil {
			masyu.POST("/solve", handlers.limit, handlers.HandleSolve)
		} else {
			masyu.POST("/solve", handlers.HandleSolve)
		}

		masyu.GET("/levels", handlers.HandleLevels)
		masyu.GET("/levels/:name", handlers.HandleLevel)

		masyu.GET("/health", handlers.HandleHealth)
	}
}
