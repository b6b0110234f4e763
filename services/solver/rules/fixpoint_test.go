// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/masyu/services/solver/board"
	"github.com/AleutianAI/masyu/services/solver/grid"
)

func TestFixpointCombinesWhiteAndBlackDeductions(t *testing.T) {
	// The white on the top edge forces a horizontal run; the black at (3,0)
	// then has no room for a left leg continuation past the corner, so its
	// legs resolve to down and left, joining the white's line.
	b := buildBoard(t, 5, 5, map[grid.Coord]board.Pearl{
		{X: 1, Y: 0}: board.White,
		{X: 3, Y: 0}: board.Black,
	})

	got, err := Fixpoint(b)
	require.NoError(t, err)

	assert.Equal(t, grid.NewDirSet(grid.Left, grid.Right),
		got.CellAt(grid.Coord{X: 1, Y: 0}).Confirmed())
	assert.Equal(t, grid.NewDirSet(grid.Down, grid.Left),
		got.CellAt(grid.Coord{X: 3, Y: 0}).Confirmed())
	assert.Equal(t, grid.NewDirSet(grid.Right, grid.Down),
		got.CellAt(grid.Coord{X: 0, Y: 0}).Confirmed())
	assert.Equal(t, grid.NewDirSet(grid.Up, grid.Down),
		got.CellAt(grid.Coord{X: 3, Y: 1}).Confirmed())
}

func TestFixpointIsIdempotent(t *testing.T) {
	b := buildBoard(t, 5, 5, map[grid.Coord]board.Pearl{
		{X: 1, Y: 0}: board.White,
		{X: 3, Y: 0}: board.Black,
	})

	once, err := Fixpoint(b)
	require.NoError(t, err)
	twice, err := Fixpoint(once)
	require.NoError(t, err)
	assert.Same(t, once, twice, "a settled board passes through untouched")
}

func TestFixpointUnwindsSolved(t *testing.T) {
	// Two whites on opposite edges of a 3x3 force the outer ring; closing
	// it covers both pearls, and the terminal signal must pass through the
	// fixpoint driver uncaught.
	b := buildBoard(t, 3, 3, map[grid.Coord]board.Pearl{
		{X: 1, Y: 0}: board.White,
		{X: 1, Y: 2}: board.White,
	})

	_, err := Fixpoint(b)
	require.Error(t, err)

	var solved *board.Solved
	require.ErrorAs(t, err, &solved)
	require.NotNil(t, solved.Board)
	assert.Equal(t, grid.NewDirSet(grid.Left, grid.Right),
		solved.Board.CellAt(grid.Coord{X: 1, Y: 2}).Confirmed())
	assert.Equal(t, grid.FullDirSet,
		solved.Board.CellAt(grid.Coord{X: 1, Y: 1}).Excluded())
}

func TestFixpointSurfacesContradiction(t *testing.T) {
	// A black in the center of 3x3 can never extend a leg, but the white
	// above it pins the line horizontally through the top row; combining
	// the two runs the black's one remaining option into the wall.
	b := buildBoard(t, 3, 3, map[grid.Coord]board.Pearl{
		{X: 1, Y: 0}: board.White,
		{X: 1, Y: 1}: board.Black,
	})

	got, err := Fixpoint(b)
	require.Error(t, err)
	assert.True(t, grid.IsContradiction(err))
	assert.NotNil(t, got)
}
