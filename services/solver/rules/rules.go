// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package rules implements the pearl deduction rules: the per-pearl white
// and black constraints, the one-shot opening patterns, and the fixpoint
// driver that runs the rules to saturation.
//
// Every function takes and returns board snapshots. A rule that fails
// returns the last consistent snapshot alongside the error, so callers can
// treat each application as transactional. Contradictions satisfy
// grid.IsContradiction; any other error (notably the terminal
// *board.Solved) must be passed upward untouched.
package rules

import (
	"fmt"

	"github.com/AleutianAI/masyu/services/solver/board"
	"github.com/AleutianAI/masyu/services/solver/grid"
)

// ApplyWhite applies the white pearl rule at c: the loop runs straight
// through the cell, and at least one of the two cells it continues into
// bends. With both legs known, each neighbor is bent hypothetically; when
// only one of the two bends survives, that bend is committed.
func ApplyWhite(b *board.Board, c grid.Coord) (*board.Board, error) {
	b2, err := b.ForceThrough(c)
	if err != nil {
		return b, err
	}

	legs := b2.CellAt(c).Confirmed()
	if legs.Count() != 2 {
		// TODO: with no legs known yet, bending each orientation's
		// neighbors hypothetically could still rule one orientation out.
		return b2, nil
	}

	dirs := legs.Directions()
	first, firstErr := b2.ForceBend(dirs[0].Move(c))
	if firstErr != nil && !grid.IsContradiction(firstErr) {
		return b, firstErr
	}
	second, secondErr := b2.ForceBend(dirs[1].Move(c))
	if secondErr != nil && !grid.IsContradiction(secondErr) {
		return b, secondErr
	}

	switch {
	case firstErr != nil && secondErr != nil:
		return b, fmt.Errorf("white pearl at %v: neither continuation can bend: %w",
			c, grid.ErrContradiction)
	case firstErr != nil:
		return second, nil
	case secondErr != nil:
		return first, nil
	default:
		// Either side could bend; nothing learned.
		return b2, nil
	}
}

// ApplyBlack applies the black pearl rule at c: the loop bends in the cell
// and both legs run straight through the cells they enter. Known legs are
// extended first; undecided legs are then resolved by hypothesis, since a
// leg whose straight continuation contradicts forces the opposite leg.
func ApplyBlack(b *board.Board, c grid.Coord) (*board.Board, error) {
	b2, err := b.ForceBend(c)
	if err != nil {
		return b, err
	}

	for _, d := range b2.CellAt(c).Confirmed().Directions() {
		b2, err = b2.ForceThrough(d.Move(c))
		if err != nil {
			return b, err
		}
	}

	cell := b2.CellAt(c)
	if cell.Done() {
		return b2, nil
	}

	var viable grid.DirSet
	for _, d := range cell.Eligible().Directions() {
		if _, legErr := setLeg(b2, c, d); legErr != nil {
			if !grid.IsContradiction(legErr) {
				return b, legErr
			}
			continue
		}
		viable = viable.Add(d)
	}

	for _, d := range viable.Directions() {
		if viable.Has(d.Opposite()) {
			continue
		}
		b2, err = setLeg(b2, c, d)
		if err != nil {
			return b, err
		}
	}
	return b2, nil
}

// setLeg confirms the pearl leg at c toward d and forces the straight
// continuation through the cell the leg enters. Shared by the black rule
// and the opening patterns.
func setLeg(b *board.Board, c grid.Coord, d grid.Direction) (*board.Board, error) {
	b2, err := b.Confirm(c, d)
	if err != nil {
		return b, err
	}
	b2, err = b2.ForceThrough(d.Move(c))
	if err != nil {
		return b, err
	}
	return b2, nil
}
