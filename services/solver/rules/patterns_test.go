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

func TestThreeWhiteRunHorizontalForcesVerticalCrossings(t *testing.T) {
	b := buildBoard(t, 5, 5, map[grid.Coord]board.Pearl{
		{X: 1, Y: 2}: board.White,
		{X: 2, Y: 2}: board.White,
		{X: 3, Y: 2}: board.White,
	})

	got, err := ApplyInitialPatterns(b)
	require.NoError(t, err)

	for x := 1; x <= 3; x++ {
		assert.Equal(t, grid.NewDirSet(grid.Up, grid.Down),
			got.CellAt(grid.Coord{X: x, Y: 2}).Confirmed(),
			"pearl at x=%d crosses the run vertically", x)
	}
}

func TestThreeWhiteRunVerticalForcesHorizontalCrossings(t *testing.T) {
	b := buildBoard(t, 5, 5, map[grid.Coord]board.Pearl{
		{X: 2, Y: 1}: board.White,
		{X: 2, Y: 2}: board.White,
		{X: 2, Y: 3}: board.White,
	})

	got, err := ApplyInitialPatterns(b)
	require.NoError(t, err)

	for y := 1; y <= 3; y++ {
		assert.Equal(t, grid.NewDirSet(grid.Left, grid.Right),
			got.CellAt(grid.Coord{X: 2, Y: y}).Confirmed())
	}
}

func TestThreeWhiteRunOnSingleRowContradicts(t *testing.T) {
	// A 1-row board cannot be crossed vertically, and a 1-row puzzle has no
	// loop at all; the shortcut surfaces that immediately.
	b := buildBoard(t, 3, 1, map[grid.Coord]board.Pearl{
		{X: 0, Y: 0}: board.White,
		{X: 1, Y: 0}: board.White,
		{X: 2, Y: 0}: board.White,
	})

	_, err := ApplyInitialPatterns(b)
	require.Error(t, err)
	assert.True(t, grid.IsContradiction(err))
}

func TestAdjacentBlacksForceLegsApart(t *testing.T) {
	b := buildBoard(t, 6, 6, map[grid.Coord]board.Pearl{
		{X: 2, Y: 2}: board.Black,
		{X: 3, Y: 2}: board.Black,
	})

	got, err := ApplyInitialPatterns(b)
	require.NoError(t, err)

	assert.True(t, got.CellAt(grid.Coord{X: 2, Y: 2}).Confirmed().Has(grid.Left))
	assert.True(t, got.CellAt(grid.Coord{X: 3, Y: 2}).Confirmed().Has(grid.Right))
	assert.Equal(t, grid.NewDirSet(grid.Left, grid.Right),
		got.CellAt(grid.Coord{X: 1, Y: 2}).Confirmed(),
		"away leg continues straight")
	assert.Equal(t, grid.NewDirSet(grid.Left, grid.Right),
		got.CellAt(grid.Coord{X: 4, Y: 2}).Confirmed())
}

func TestAdjacentBlacksVerticalPair(t *testing.T) {
	b := buildBoard(t, 6, 6, map[grid.Coord]board.Pearl{
		{X: 2, Y: 2}: board.Black,
		{X: 2, Y: 3}: board.Black,
	})

	got, err := ApplyInitialPatterns(b)
	require.NoError(t, err)

	assert.True(t, got.CellAt(grid.Coord{X: 2, Y: 2}).Confirmed().Has(grid.Up))
	assert.True(t, got.CellAt(grid.Coord{X: 2, Y: 3}).Confirmed().Has(grid.Down))
	assert.Equal(t, grid.NewDirSet(grid.Up, grid.Down),
		got.CellAt(grid.Coord{X: 2, Y: 1}).Confirmed())
	assert.Equal(t, grid.NewDirSet(grid.Up, grid.Down),
		got.CellAt(grid.Coord{X: 2, Y: 4}).Confirmed())
}

func TestAdjacentBlacksWithoutRoomContradict(t *testing.T) {
	// The away leg of the right pearl would need two cells beyond it.
	b := buildBoard(t, 5, 5, map[grid.Coord]board.Pearl{
		{X: 2, Y: 2}: board.Black,
		{X: 3, Y: 2}: board.Black,
	})

	_, err := ApplyInitialPatterns(b)
	require.Error(t, err)
	assert.True(t, grid.IsContradiction(err))
}

func TestLegIntoWhitePairForcesOppositeLeg(t *testing.T) {
	// Whites at (4,2) and (5,2): a right leg from the black at (2,2) would
	// run the line straight through both, so the left leg is forced.
	b := buildBoard(t, 6, 6, map[grid.Coord]board.Pearl{
		{X: 2, Y: 2}: board.Black,
		{X: 4, Y: 2}: board.White,
		{X: 5, Y: 2}: board.White,
	})

	got, err := ApplyInitialPatterns(b)
	require.NoError(t, err)

	assert.True(t, got.CellAt(grid.Coord{X: 2, Y: 2}).Confirmed().Has(grid.Left))
	assert.Equal(t, grid.NewDirSet(grid.Left, grid.Right),
		got.CellAt(grid.Coord{X: 1, Y: 2}).Confirmed())
}

func TestLegIntoFlankedCellForcesOppositeLeg(t *testing.T) {
	// Whites above and below (3,2) block a straight continuation there, so
	// the black's right leg is impossible.
	b := buildBoard(t, 6, 6, map[grid.Coord]board.Pearl{
		{X: 2, Y: 2}: board.Black,
		{X: 3, Y: 1}: board.White,
		{X: 3, Y: 3}: board.White,
	})

	got, err := ApplyInitialPatterns(b)
	require.NoError(t, err)

	assert.True(t, got.CellAt(grid.Coord{X: 2, Y: 2}).Confirmed().Has(grid.Left))
	assert.Equal(t, grid.NewDirSet(grid.Left, grid.Right),
		got.CellAt(grid.Coord{X: 1, Y: 2}).Confirmed())
}

func TestInitialPatternsWithNoMatchesChangeNothing(t *testing.T) {
	b := buildBoard(t, 6, 6, map[grid.Coord]board.Pearl{
		{X: 1, Y: 1}: board.White,
		{X: 4, Y: 4}: board.Black,
	})

	got, err := ApplyInitialPatterns(b)
	require.NoError(t, err)
	assert.Same(t, b, got)
}
