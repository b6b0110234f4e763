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
	"github.com/AleutianAI/masyu/services/solver/board"
	"github.com/AleutianAI/masyu/services/solver/grid"
)

// ApplyInitialPatterns runs the one-shot pearl patterns over every pearl.
// Each pattern draws a conclusion that is fixed by the puzzle layout alone,
// so a single pass before the main fixpoint is enough; rediscovering the
// same conclusions through hypothesis during search is far more expensive.
func ApplyInitialPatterns(b *board.Board) (*board.Board, error) {
	var err error
	for _, c := range b.Pearls() {
		p, _ := b.PearlAt(c)
		if p == board.White {
			if b, err = threeWhiteRun(b, c); err != nil {
				return b, err
			}
			continue
		}
		if b, err = legIntoWhitePair(b, c); err != nil {
			return b, err
		}
		if b, err = adjacentBlacks(b, c); err != nil {
			return b, err
		}
		if b, err = legIntoFlankedCell(b, c); err != nil {
			return b, err
		}
	}
	return b, nil
}

// pearlIs reports whether the cell at c holds a pearl of the given color.
// Out-of-bounds coordinates hold no pearl.
func pearlIs(b *board.Board, c grid.Coord, p board.Pearl) bool {
	got, ok := b.PearlAt(c)
	return ok && got == p
}

// threeWhiteRun handles three consecutive white pearls starting at c. The
// loop must cross the run perpendicular to it: crossing along the run
// would leave the middle pearl with straight continuations on both sides.
// The leading pearl gets one perpendicular edge confirmed; forcing all
// three straight then rides the resulting exclusions down the run.
func threeWhiteRun(b *board.Board, c grid.Coord) (*board.Board, error) {
	var (
		run      []grid.Coord
		crossDir grid.Direction
	)
	switch {
	case pearlIs(b, grid.Coord{X: c.X + 1, Y: c.Y}, board.White) &&
		pearlIs(b, grid.Coord{X: c.X + 2, Y: c.Y}, board.White):
		run = []grid.Coord{c, {X: c.X + 1, Y: c.Y}, {X: c.X + 2, Y: c.Y}}
		crossDir = grid.Up
	case pearlIs(b, grid.Coord{X: c.X, Y: c.Y + 1}, board.White) &&
		pearlIs(b, grid.Coord{X: c.X, Y: c.Y + 2}, board.White):
		run = []grid.Coord{c, {X: c.X, Y: c.Y + 1}, {X: c.X, Y: c.Y + 2}}
		crossDir = grid.Right
	default:
		return b, nil
	}

	b2, err := b.Confirm(c, crossDir)
	if err != nil {
		return b, err
	}
	for _, rc := range run {
		if b2, err = b2.ForceThrough(rc); err != nil {
			return b, err
		}
	}
	return b2, nil
}

// adjacentBlacks handles a black pearl with a black neighbor to the right
// or below. The shared edge cannot carry the loop, because each black leg
// must continue straight through the next cell; both pearls therefore take
// the leg pointing away from the other.
func adjacentBlacks(b *board.Board, c grid.Coord) (*board.Board, error) {
	var err error
	if pearlIs(b, grid.Coord{X: c.X + 1, Y: c.Y}, board.Black) {
		if b, err = setLeg(b, c, grid.Left); err != nil {
			return b, err
		}
		if b, err = setLeg(b, grid.Coord{X: c.X + 1, Y: c.Y}, grid.Right); err != nil {
			return b, err
		}
	}
	if pearlIs(b, grid.Coord{X: c.X, Y: c.Y + 1}, board.Black) {
		if b, err = setLeg(b, c, grid.Up); err != nil {
			return b, err
		}
		if b, err = setLeg(b, grid.Coord{X: c.X, Y: c.Y + 1}, grid.Down); err != nil {
			return b, err
		}
	}
	return b, nil
}

// legIntoWhitePair handles a black pearl whose leg toward d would land on
// the first of two consecutive white pearls. The leg's straight
// continuation would run the line through both whites in a row, leaving
// the far one with no neighbor that bends; the leg points the other way.
func legIntoWhitePair(b *board.Board, c grid.Coord) (*board.Board, error) {
	var err error
	for _, d := range grid.AllDirections {
		firstWhite := d.Move(d.Move(c))
		secondWhite := d.Move(firstWhite)
		if pearlIs(b, firstWhite, board.White) && pearlIs(b, secondWhite, board.White) {
			if b, err = setLeg(b, c, d.Opposite()); err != nil {
				return b, err
			}
		}
	}
	return b, nil
}

// legIntoFlankedCell handles a black pearl whose leg toward d would pass
// straight through a cell flanked on both sides by white pearls. Those
// whites would both have to carry the line parallel to the leg, and
// neither could ever see a bend next door; the leg points the other way.
func legIntoFlankedCell(b *board.Board, c grid.Coord) (*board.Board, error) {
	var err error
	for _, d := range grid.AllDirections {
		ahead := d.Move(c)
		flankA := d.TurnLeft().Move(ahead)
		flankB := d.TurnRight().Move(ahead)
		if pearlIs(b, flankA, board.White) && pearlIs(b, flankB, board.White) {
			if b, err = setLeg(b, c, d.Opposite()); err != nil {
				return b, err
			}
		}
	}
	return b, nil
}
