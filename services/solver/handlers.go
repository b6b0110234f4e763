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
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AleutianAI/masyu/pkg/validation"
	"github.com/AleutianAI/masyu/services/solver/board"
	"github.com/AleutianAI/masyu/services/solver/level"
	"github.com/AleutianAI/masyu/services/solver/render"
)

// Handlers contains the HTTP handlers for the Masyu service.
type Handlers struct {
	svc      *Service
	renderer *render.Renderer
	limit    gin.HandlerFunc
}

// NewHandlers creates handlers for the given service. API responses render
// boards plain; color is a terminal concern.
func NewHandlers(svc *Service) *Handlers {
	return &Handlers{
		svc:      svc,
		renderer: render.New(false),
	}
}

// WithRateLimit installs a token-bucket limiter on the solve endpoint.
func (h *Handlers) WithRateLimit(perSecond float64, burst int) *Handlers {
	h.limit = RateLimit(perSecond, burst)
	return h
}

// HandleSolve handles POST /v1/masyu/solve.
//
// Description:
//
//	Solves a puzzle named by level or given inline. The verdict reports
//	whether a solution was found, proven absent, or the search gave up
//	at its step cap.
//
// Request Body:
//
//	SolveRequest
//
// Response:
//
//	200 OK: SolveResponse
//	400 Bad Request: malformed request or puzzle
//	404 Not Found: unknown builtin level
//	504 Gateway Timeout: solve exceeded the service time budget
func (h *Handlers) HandleSolve(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleSolve")

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if err := req.Validate(); err != nil {
		logger.Warn("Request failed validation", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	b, ok := h.boardFromRequest(c, logger, req)
	if !ok {
		return
	}

	logger.Info("Solving puzzle",
		"level", req.Level,
		"width", b.Width(),
		"height", b.Height(),
		"max_steps", req.MaxSteps)

	verdict, res, err := h.svc.Solve(c.Request.Context(), b, req.MaxSteps)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errCode := "SOLVE_FAILED"
		if errors.Is(err, context.DeadlineExceeded) {
			statusCode = http.StatusGatewayTimeout
			errCode = "SOLVE_TIMEOUT"
		}
		logger.Warn("Solve failed", "error", err)
		c.JSON(statusCode, ErrorResponse{
			Error: "Solve failed",
			Code:  errCode,
		})
		return
	}

	resp := SolveResponse{
		Verdict: verdict,
		Width:   b.Width(),
		Height:  b.Height(),
	}
	if res != nil {
		resp.Steps = res.Steps
		resp.Board = h.renderer.Board(res.Board)
	}
	c.JSON(http.StatusOK, resp)
}

// boardFromRequest builds the board named by the request, writing the
// error response itself when the request cannot produce one.
func (h *Handlers) boardFromRequest(c *gin.Context, logger *slog.Logger, req SolveRequest) (*board.Board, bool) {
	switch {
	case req.Level != "" && req.Puzzle != "":
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Give either a level name or inline puzzle text, not both",
			Code:  "AMBIGUOUS_PUZZLE",
		})
		return nil, false
	case req.Level != "":
		name, err := validation.SanitizeLevelName(req.Level)
		if err != nil {
			logger.Warn("Invalid level name", "error", err)
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Invalid level name",
				Code:  "INVALID_LEVEL_NAME",
			})
			return nil, false
		}
		b, err := level.Builtin(name)
		if err != nil {
			logger.Warn("Unknown level", "level", name)
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Unknown builtin level",
				Code:  "UNKNOWN_LEVEL",
			})
			return nil, false
		}
		return b, true
	case req.Puzzle != "":
		b, err := level.Parse(req.Puzzle)
		if err != nil {
			errCode := "INVALID_PUZZLE"
			if errors.Is(err, level.ErrNoPearls) {
				errCode = "NO_PEARLS"
			}
			logger.Warn("Invalid puzzle text", "error", err)
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid puzzle",
				Code:    errCode,
				Details: err.Error(),
			})
			return nil, false
		}
		return b, true
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Give a level name or inline puzzle text",
			Code:  "MISSING_PUZZLE",
		})
		return nil, false
	}
}

// HandleLevels handles GET /v1/masyu/levels.
func (h *Handlers) HandleLevels(c *gin.Context) {
	names := level.Names()
	levels := make([]LevelInfo, 0, len(names))
	for _, name := range names {
		b, err := level.Builtin(name)
		if err != nil {
			slog.Error("Builtin level failed to load", "level", name, "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "Builtin level failed to load",
				Code:  "LEVEL_LOAD_FAILED",
			})
			return
		}
		levels = append(levels, levelInfo(name, b))
	}
	c.JSON(http.StatusOK, LevelsResponse{Levels: levels})
}

// HandleLevel handles GET /v1/masyu/levels/:name.
func (h *Handlers) HandleLevel(c *gin.Context) {
	name, err := validation.SanitizeLevelName(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid level name",
			Code:  "INVALID_LEVEL_NAME",
		})
		return
	}
	b, err := level.Builtin(name)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "Unknown builtin level",
			Code:  "UNKNOWN_LEVEL",
		})
		return
	}
	c.JSON(http.StatusOK, LevelResponse{
		LevelInfo: levelInfo(name, b),
		Puzzle:    h.renderer.Compact(b),
	})
}

// HandleHealth handles GET /v1/masyu/health. Always returns 200 if the
// process is serving.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: ServiceVersion,
	})
}

func levelInfo(name string, b *board.Board) LevelInfo {
	return LevelInfo{
		Name:   name,
		Width:  b.Width(),
		Height: b.Height(),
		Pearls: len(b.Pearls()),
	}
}

// getOrCreateRequestID returns the inbound request ID or mints one, and
// echoes it on the response.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}
