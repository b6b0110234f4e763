// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/masyu/services/solver/board"
	"github.com/AleutianAI/masyu/services/solver/grid"
)

func freshBoard(t *testing.T, width, height int, pearls map[grid.Coord]board.Pearl) *board.Board {
	t.Helper()
	b, err := board.New(width, height, pearls)
	require.NoError(t, err)
	return b
}

func TestBoardRendersEmptyGrid(t *testing.T) {
	b := freshBoard(t, 3, 3, map[grid.Coord]board.Pearl{
		{X: 1, Y: 0}: board.White,
		{X: 1, Y: 2}: board.White,
	})

	want := strings.Join([]string{
		"┌─┬─┬─┐",
		"│ │o│ │",
		"├─┼─┼─┤",
		"│ │ │ │",
		"├─┼─┼─┤",
		"│ │o│ │",
		"└─┴─┴─┘",
		"",
	}, "\n")
	assert.Equal(t, want, New(false).Board(b))
}

func TestBoardRendersSolvedRing(t *testing.T) {
	b := freshBoard(t, 3, 3, map[grid.Coord]board.Pearl{
		{X: 1, Y: 0}: board.White,
		{X: 1, Y: 2}: board.White,
	})

	// Three corner confirmations cascade most of the ring; the fourth
	// closes the loop and surfaces the finished board.
	var err error
	for _, s := range []struct {
		c grid.Coord
		d grid.Direction
	}{
		{grid.Coord{X: 0, Y: 0}, grid.Right},
		{grid.Coord{X: 2, Y: 0}, grid.Down},
		{grid.Coord{X: 2, Y: 2}, grid.Left},
	} {
		b, err = b.Confirm(s.c, s.d)
		require.NoError(t, err)
	}
	_, err = b.Confirm(grid.Coord{X: 0, Y: 2}, grid.Up)
	var solved *board.Solved
	require.ErrorAs(t, err, &solved)

	want := strings.Join([]string{
		"┌─┬─┬─┐",
		"│┌─o─┐│",
		"├│┼─┼│┤",
		"│││ │││",
		"├│┼─┼│┤",
		"│└─o─┘│",
		"└─┴─┴─┘",
		"",
	}, "\n")
	assert.Equal(t, want, New(false).Board(solved.Board))
}

func TestBoardRendersPartialProgress(t *testing.T) {
	b := freshBoard(t, 2, 3, nil)
	b, err := b.Confirm(grid.Coord{X: 0, Y: 0}, grid.Right)
	require.NoError(t, err)

	// The corner pair is fully decided; the two dangling strand ends
	// below it have a single confirmed direction and stay blank.
	want := strings.Join([]string{
		"┌─┬─┐",
		"│┌─┐│",
		"├│┼│┤",
		"│ │ │",
		"├─┼─┤",
		"│ │ │",
		"└─┴─┘",
		"",
	}, "\n")
	assert.Equal(t, want, New(false).Board(b))
}

func TestColorModeKeepsGlyphs(t *testing.T) {
	b := freshBoard(t, 2, 2, map[grid.Coord]board.Pearl{
		{X: 0, Y: 0}: board.Black,
	})

	out := New(true).Board(b)
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "\n")
}

func TestCompactMatchesLevelFormat(t *testing.T) {
	b := freshBoard(t, 3, 2, map[grid.Coord]board.Pearl{
		{X: 1, Y: 0}: board.White,
		{X: 2, Y: 1}: board.Black,
	})

	assert.Equal(t, ".o.\n..●\n", New(false).Compact(b))
}
