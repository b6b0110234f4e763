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
	"github.com/go-playground/validator/v10"
)

// MaxPuzzleBytes is the maximum size of inline puzzle text. Puzzle text
// grows with the board area; anything near this limit is not a puzzle.
const MaxPuzzleBytes = 64 * 1024 // 64KB

// solveValidate is the validator instance for solve requests.
// Initialized in init() with custom validators.
var solveValidate *validator.Validate

func init() {
	solveValidate = validator.New()
	_ = solveValidate.RegisterValidation("maxbytes", validatePuzzleBytes)
}

// validatePuzzleBytes checks byte length (not rune count) so oversized
// payloads are rejected before any parsing work.
func validatePuzzleBytes(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxPuzzleBytes
}

// SolveRequest is the request body for POST /v1/masyu/solve. Exactly one
// of Level or Puzzle selects the board.
type SolveRequest struct {
	// Level names a builtin puzzle.
	Level string `json:"level"`

	// Puzzle is inline puzzle text in the .masyu format.
	Puzzle string `json:"puzzle" validate:"omitempty,maxbytes"`

	// MaxSteps caps the search expansions for this request. 0 uses the
	// service default; values above the service cap are clamped.
	MaxSteps int `json:"max_steps" validate:"gte=0"`
}

// Validate validates the SolveRequest fields. Call after binding the
// JSON request.
func (r *SolveRequest) Validate() error {
	return solveValidate.Struct(r)
}

// SolveResponse is the response for POST /v1/masyu/solve.
type SolveResponse struct {
	// Verdict is "solved", "no_solution", or "stuck".
	Verdict string `json:"verdict"`

	// Steps is the number of search expansions spent.
	Steps int `json:"steps"`

	// Board is the rendered final board: the solution when solved, the
	// best-known partial board when stuck, empty when no solution exists.
	Board string `json:"board,omitempty"`

	// Width and Height echo the puzzle dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LevelInfo describes one builtin puzzle.
type LevelInfo struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Pearls int    `json:"pearls"`
}

// LevelsResponse is the response for GET /v1/masyu/levels.
type LevelsResponse struct {
	Levels []LevelInfo `json:"levels"`
}

// LevelResponse is the response for GET /v1/masyu/levels/:name.
type LevelResponse struct {
	LevelInfo

	// Puzzle is the pearl layout in the .masyu format.
	Puzzle string `json:"puzzle"`
}

// HealthResponse is the response for GET /v1/masyu/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is the error code (optional).
	Code string `json:"code,omitempty"`

	// Details provides additional error context (optional).
	Details string `json:"details,omitempty"`
}
