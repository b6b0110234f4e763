// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package board

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/AleutianAI/masyu/services/solver/grid"
)

// Pearl is a white or black marker constraining the loop at its cell.
type Pearl uint8

const (
	// White pearls are passed straight through, with a turn in at least one
	// neighboring cell.
	White Pearl = iota + 1
	// Black pearls are turned on, with straight continuations through both
	// neighboring cells.
	Black
)

// String returns the pearl color name.
func (p Pearl) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("Pearl(%d)", uint8(p))
	}
}

// Board is an immutable snapshot of a puzzle in progress: fixed pearl
// placements plus the current CellLine lattice for every cell and a cached
// index of the loop fragments discovered so far.
//
// The pearl map and coordinate list are shared by every snapshot of the
// same puzzle and must not be modified. The cells slice is copied on write.
type Board struct {
	width  int
	height int

	pearls   map[grid.Coord]Pearl
	pearlSeq []grid.Coord

	cells    []grid.CellLine
	segments []*segment
}

// New builds the initial board for a puzzle. Every cell starts with its
// off-grid directions excluded; nothing else is known. The pearls map is
// retained (not copied) and must not be modified afterwards.
func New(width, height int, pearls map[grid.Coord]Pearl) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board dimensions %dx%d out of range", width, height)
	}

	b := &Board{
		width:  width,
		height: height,
		pearls: pearls,
		cells:  make([]grid.CellLine, width*height),
	}

	for c, p := range pearls {
		if !b.InBounds(c) {
			return nil, fmt.Errorf("%v pearl at %v outside %dx%d board", p, c, width, height)
		}
		b.pearlSeq = append(b.pearlSeq, c)
	}
	sort.Slice(b.pearlSeq, func(i, j int) bool {
		return b.pearlSeq[i].Less(b.pearlSeq[j])
	})

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var edges grid.DirSet
			if x == 0 {
				edges = edges.Add(grid.Left)
			}
			if x == width-1 {
				edges = edges.Add(grid.Right)
			}
			if y == 0 {
				edges = edges.Add(grid.Up)
			}
			if y == height-1 {
				edges = edges.Add(grid.Down)
			}
			b.cells[y*width+x] = grid.NewCellLine(edges)
		}
	}
	return b, nil
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// InBounds reports whether c addresses a cell on the board.
func (b *Board) InBounds(c grid.Coord) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

func (b *Board) index(c grid.Coord) int {
	return c.Y*b.width + c.X
}

// CellAt returns the lattice state of the cell at c, which must be in
// bounds.
func (b *Board) CellAt(c grid.Coord) grid.CellLine {
	return b.cells[b.index(c)]
}

// PearlAt returns the pearl at c, if any. Out-of-bounds coordinates simply
// hold no pearl.
func (b *Board) PearlAt(c grid.Coord) (Pearl, bool) {
	p, ok := b.pearls[c]
	return p, ok
}

// Pearls returns the pearl coordinates in row-major order. The slice is
// shared across snapshots; callers must not modify it.
func (b *Board) Pearls() []grid.Coord {
	return b.pearlSeq
}

// Equal reports whether two snapshots of the same puzzle carry identical
// cell knowledge. The segment index is derived data and takes no part;
// pearls are fixed per puzzle and are not compared.
func (b *Board) Equal(other *Board) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	return b.width == other.width && b.height == other.height &&
		slices.Equal(b.cells, other.cells)
}

// Confirm records a loop edge at c in direction d and propagates.
// On failure the receiver is returned unchanged.
func (b *Board) Confirm(c grid.Coord, d grid.Direction) (*Board, error) {
	next, err := b.CellAt(c).Confirm(d)
	if err != nil {
		return b, fmt.Errorf("cell %v: %w", c, err)
	}
	return b.apply(c, next)
}

// Exclude records the absence of a loop edge at c in direction d and
// propagates. On failure the receiver is returned unchanged.
func (b *Board) Exclude(c grid.Coord, d grid.Direction) (*Board, error) {
	next, err := b.CellAt(c).Exclude(d)
	if err != nil {
		return b, fmt.Errorf("cell %v: %w", c, err)
	}
	return b.apply(c, next)
}

// ForceThrough applies the straight-through assumption at c and propagates.
// On failure the receiver is returned unchanged.
func (b *Board) ForceThrough(c grid.Coord) (*Board, error) {
	next, err := b.CellAt(c).ForceThrough()
	if err != nil {
		return b, fmt.Errorf("cell %v: %w", c, err)
	}
	return b.apply(c, next)
}

// ForceBend applies the turn assumption at c and propagates. On failure the
// receiver is returned unchanged.
func (b *Board) ForceBend(c grid.Coord) (*Board, error) {
	next, err := b.CellAt(c).ForceBend()
	if err != nil {
		return b, fmt.Errorf("cell %v: %w", c, err)
	}
	return b.apply(c, next)
}

// apply runs worklist propagation from a single changed cell, then commits.
// The overlay map layers pending changes over the committed cells; nothing
// is written back until every consequence has been drawn without
// contradiction, so a failed change leaves no trace.
func (b *Board) apply(c grid.Coord, next grid.CellLine) (*Board, error) {
	if next == b.CellAt(c) {
		return b, nil
	}

	overlay := map[grid.Coord]grid.CellLine{c: next}
	queue := []grid.Coord{c}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cell := overlay[cur]

		for _, d := range cell.Confirmed().Directions() {
			n := d.Move(cur)
			if !b.InBounds(n) {
				// Unreachable while edge cells keep their off-grid
				// directions excluded.
				return b, fmt.Errorf("confirmed edge at %v runs off the board going %v", cur, d)
			}
			old := b.peek(overlay, n)
			upd, err := old.Confirm(d.Opposite())
			if err != nil {
				return b, fmt.Errorf("propagate to %v: %w", n, err)
			}
			if upd != old {
				overlay[n] = upd
				queue = append(queue, n)
			}
		}

		for _, d := range cell.Excluded().Directions() {
			n := d.Move(cur)
			if !b.InBounds(n) {
				continue
			}
			old := b.peek(overlay, n)
			upd, err := old.Exclude(d.Opposite())
			if err != nil {
				return b, fmt.Errorf("propagate to %v: %w", n, err)
			}
			if upd != old {
				overlay[n] = upd
				queue = append(queue, n)
			}
		}
	}

	return b.commit(overlay)
}

// peek reads a cell through the overlay.
func (b *Board) peek(overlay map[grid.Coord]grid.CellLine, c grid.Coord) grid.CellLine {
	if cl, ok := overlay[c]; ok {
		return cl
	}
	return b.CellAt(c)
}

// commit materializes a propagated overlay as a new Board and brings the
// segment index up to date. Loop closure during the update turns into the
// terminal Solved or IncompleteLoopError outcome.
func (b *Board) commit(overlay map[grid.Coord]grid.CellLine) (*Board, error) {
	cells := slices.Clone(b.cells)
	for c, cl := range overlay {
		cells[b.index(c)] = cl
	}

	nb := &Board{
		width:    b.width,
		height:   b.height,
		pearls:   b.pearls,
		pearlSeq: b.pearlSeq,
		cells:    cells,
	}

	segs, err := extendSegments(b.segments, nb)
	if err == nil {
		var fresh []*segment
		fresh, err = discoverSegments(nb, coverage(segs))
		segs = append(segs, fresh...)
	}
	if err != nil {
		var closed *loopClosedError
		if errors.As(err, &closed) {
			return b, nb.resolveClosedLoop(closed.loop)
		}
		return b, err
	}

	nb.segments = segs
	return nb, nil
}

// resolveClosedLoop decides what a closed loop means: the solution if every
// pearl lies on it, a contradiction otherwise. nb already carries the final
// cell state; its segment index stays empty since the loop needs no further
// tracking.
func (nb *Board) resolveClosedLoop(loop map[grid.Coord]struct{}) error {
	var missing []grid.Coord
	for _, c := range nb.pearlSeq {
		if _, ok := loop[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		slog.Debug("closed loop misses pearls",
			"loop_size", len(loop),
			"missing", len(missing))
		return &IncompleteLoopError{Missing: missing}
	}

	slog.Debug("closed loop covers all pearls", "loop_size", len(loop))
	return &Solved{Board: nb}
}
