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

// buildBoard constructs a puzzle board, failing the test on invalid input.
func buildBoard(t *testing.T, width, height int, pearls map[grid.Coord]board.Pearl) *board.Board {
	t.Helper()
	b, err := board.New(width, height, pearls)
	require.NoError(t, err)
	return b
}

// confirm applies a single edge confirmation that must succeed.
func confirm(t *testing.T, b *board.Board, c grid.Coord, d grid.Direction) *board.Board {
	t.Helper()
	b2, err := b.Confirm(c, d)
	require.NoError(t, err)
	return b2
}

func TestApplyWhiteNothingKnownLeavesBoardAlone(t *testing.T) {
	c := grid.Coord{X: 2, Y: 2}
	b := buildBoard(t, 5, 5, map[grid.Coord]board.Pearl{c: board.White})

	got, err := ApplyWhite(b, c)
	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestApplyWhiteOnEdgeForcesThroughAlongIt(t *testing.T) {
	// On the top edge the vertical axis is excluded, so the white pearl is
	// crossed horizontally; the confirmed edge completes the corner next to
	// it.
	c := grid.Coord{X: 1, Y: 0}
	b := buildBoard(t, 4, 4, map[grid.Coord]board.Pearl{c: board.White})

	got, err := ApplyWhite(b, c)
	require.NoError(t, err)

	assert.Equal(t, grid.NewDirSet(grid.Left, grid.Right), got.CellAt(c).Confirmed())
	assert.Equal(t, grid.NewDirSet(grid.Right, grid.Down),
		got.CellAt(grid.Coord{X: 0, Y: 0}).Confirmed())
	assert.Equal(t, grid.NewDirSet(grid.Up),
		got.CellAt(grid.Coord{X: 0, Y: 1}).Confirmed())
}

func TestApplyWhiteCommitsTheOnlyNeighborThatBends(t *testing.T) {
	// The line through the white pearl at (2,1) continues into a straight
	// cell on the right, so the bend must happen on the left.
	c := grid.Coord{X: 2, Y: 1}
	b := buildBoard(t, 5, 5, map[grid.Coord]board.Pearl{c: board.White})
	b = confirm(t, b, grid.Coord{X: 3, Y: 1}, grid.Right)
	b = confirm(t, b, c, grid.Right)

	got, err := ApplyWhite(b, c)
	require.NoError(t, err)

	left := got.CellAt(grid.Coord{X: 1, Y: 1})
	assert.True(t, left.Confirmed().Has(grid.Right))
	assert.True(t, left.Excluded().Has(grid.Left), "committed bend rules out the straight continuation")
}

func TestApplyWhiteBothNeighborsStraightContradicts(t *testing.T) {
	c := grid.Coord{X: 2, Y: 1}
	b := buildBoard(t, 5, 5, map[grid.Coord]board.Pearl{c: board.White})
	b = confirm(t, b, grid.Coord{X: 1, Y: 1}, grid.Left)
	b = confirm(t, b, grid.Coord{X: 1, Y: 1}, grid.Right)
	b = confirm(t, b, grid.Coord{X: 3, Y: 1}, grid.Right)

	got, err := ApplyWhite(b, c)
	require.Error(t, err)
	assert.True(t, grid.IsContradiction(err))
	assert.Same(t, b, got)
}

func TestApplyBlackCornerForcesBothLegs(t *testing.T) {
	c := grid.Coord{X: 0, Y: 0}
	b := buildBoard(t, 4, 4, map[grid.Coord]board.Pearl{c: board.Black})

	got, err := ApplyBlack(b, c)
	require.NoError(t, err)

	assert.Equal(t, grid.NewDirSet(grid.Right, grid.Down), got.CellAt(c).Confirmed())
	assert.Equal(t, grid.NewDirSet(grid.Left, grid.Right),
		got.CellAt(grid.Coord{X: 1, Y: 0}).Confirmed(),
		"legs continue straight through the neighbor")
	assert.Equal(t, grid.NewDirSet(grid.Up, grid.Down),
		got.CellAt(grid.Coord{X: 0, Y: 1}).Confirmed())
	assert.True(t, got.CellAt(grid.Coord{X: 2, Y: 0}).Confirmed().Has(grid.Left))
	assert.True(t, got.CellAt(grid.Coord{X: 0, Y: 2}).Confirmed().Has(grid.Up))
}

func TestApplyBlackResolvesLegByHypothesis(t *testing.T) {
	// A black pearl one cell from the corner on the top edge: the leg
	// toward the corner has no room to continue straight, so the leg away
	// from it is forced.
	c := grid.Coord{X: 1, Y: 0}
	b := buildBoard(t, 4, 4, map[grid.Coord]board.Pearl{c: board.Black})

	got, err := ApplyBlack(b, c)
	require.NoError(t, err)

	assert.Equal(t, grid.NewDirSet(grid.Right, grid.Down), got.CellAt(c).Confirmed())
	assert.Equal(t, grid.NewDirSet(grid.Left, grid.Right),
		got.CellAt(grid.Coord{X: 2, Y: 0}).Confirmed())
	assert.Equal(t, grid.NewDirSet(grid.Up, grid.Down),
		got.CellAt(grid.Coord{X: 1, Y: 1}).Confirmed())
}

func TestApplyBlackNoViableLegLearnsNothing(t *testing.T) {
	// Every leg of a center black on 3x3 would need a straight continuation
	// running off the board, so no hypothesis survives. The rule commits
	// nothing; the dead end surfaces later through loop coverage.
	c := grid.Coord{X: 1, Y: 1}
	b := buildBoard(t, 3, 3, map[grid.Coord]board.Pearl{c: board.Black})

	got, err := ApplyBlack(b, c)
	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestApplyBlackDoneCellShortCircuits(t *testing.T) {
	c := grid.Coord{X: 0, Y: 0}
	b := buildBoard(t, 4, 4, map[grid.Coord]board.Pearl{c: board.Black})

	once, err := ApplyBlack(b, c)
	require.NoError(t, err)
	again, err := ApplyBlack(once, c)
	require.NoError(t, err)
	assert.True(t, once.Equal(again))
}
