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
	"fmt"
	"maps"

	"github.com/AleutianAI/masyu/services/solver/grid"
)

// segment is a maximal known fragment of the loop: a simple path of cells
// connected by confirmed edges. Each endpoint stores the confirmed leg at
// that cell, which points back into the fragment; an endpoint cell always
// has exactly one confirmed direction until the fragment grows past it.
//
// Segments are derived bookkeeping over the cell lattice, maintained
// incrementally so loop closure is caught the moment it happens instead of
// by rescanning the whole board.
type segment struct {
	start    grid.Coord
	startDir grid.Direction
	end      grid.Coord
	endDir   grid.Direction
	cells    map[grid.Coord]struct{}
}

// otherEnd returns the endpoint opposite to c, with its stored leg.
func (s *segment) otherEnd(c grid.Coord) (grid.Coord, grid.Direction) {
	if c == s.start {
		return s.end, s.endDir
	}
	return s.start, s.startDir
}

// loopClosedError is the internal signal that a walk returned to its own
// fragment: the loop is closed. The board layer decides whether that means
// solved or contradiction.
type loopClosedError struct {
	loop map[grid.Coord]struct{}
}

// Error implements the error interface.
func (e *loopClosedError) Error() string {
	return fmt.Sprintf("loop closed over %d cells", len(e.loop))
}

// coverage returns the union of the segments' coordinate sets.
func coverage(segs []*segment) map[grid.Coord]struct{} {
	covered := make(map[grid.Coord]struct{})
	for _, s := range segs {
		maps.Copy(covered, s.cells)
	}
	return covered
}

// extendSegments grows each prior segment along any endpoint that gained a
// second confirmed edge, following the path cell-to-cell under the new
// lattice in b. Reaching another segment's endpoint merges the two
// fragments (the walk jumps to the far end and keeps going); reaching this
// segment's own endpoint means the loop closed, reported as
// *loopClosedError carrying every coordinate gathered so far.
//
// A cell strictly inside a fragment can never be walked into: it already
// has two confirmed edges, so a third edge toward it would have failed in
// the lattice long before segment maintenance runs.
func extendSegments(prev []*segment, b *Board) ([]*segment, error) {
	if len(prev) == 0 {
		return nil, nil
	}

	endpoints := make(map[grid.Coord]*segment, 2*len(prev))
	for _, s := range prev {
		endpoints[s.start] = s
		endpoints[s.end] = s
	}

	consumed := make(map[*segment]bool, len(prev))
	out := make([]*segment, 0, len(prev))

	for _, seg := range prev {
		if consumed[seg] {
			continue
		}
		consumed[seg] = true

		loop := maps.Clone(seg.cells)
		next := segment{
			start:    seg.start,
			startDir: seg.startDir,
			end:      seg.end,
			endDir:   seg.endDir,
		}
		grown := false

		for side := 0; side < 2; side++ {
			pos, inward := seg.start, seg.startDir
			if side == 1 {
				pos, inward = seg.end, seg.endDir
			}

			cell := b.CellAt(pos)
			if cell.Confirmed().Count() == 1 {
				// This end did not grow.
				continue
			}
			dir, ok := cell.OtherLeg(inward)
			if !ok {
				continue
			}

			lastPos, lastInward := pos, inward
			for {
				pos = dir.Move(pos)
				entry := dir.Opposite()

				if hit, found := endpoints[pos]; found {
					if hit == seg {
						return nil, &loopClosedError{loop: loop}
					}
					consumed[hit] = true
					maps.Copy(loop, hit.cells)
					pos, entry = hit.otherEnd(pos)
				} else {
					loop[pos] = struct{}{}
				}

				lastPos, lastInward = pos, entry
				step, more := b.CellAt(pos).OtherLeg(entry)
				if !more {
					break
				}
				dir = step
			}

			if side == 0 {
				next.start, next.startDir = lastPos, lastInward
			} else {
				next.end, next.endDir = lastPos, lastInward
			}
			grown = true
		}

		if grown {
			next.cells = loop
			out = append(out, &next)
		} else {
			out = append(out, seg)
		}
	}
	return out, nil
}

// discoverSegments scans for confirmed cells not covered by any known
// segment and builds fresh segments from them: walk backward along one leg
// to find the start (revisiting a cell on the way means a brand-new closed
// loop), then forward along the other to find the end. Cells are visited
// row-major so discovery is deterministic.
func discoverSegments(b *Board, seen map[grid.Coord]struct{}) ([]*segment, error) {
	var found []*segment

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := grid.Coord{X: x, Y: y}
			if _, ok := seen[c]; ok {
				continue
			}
			confirmed := b.CellAt(c).Confirmed()
			if confirmed.IsEmpty() {
				continue
			}

			loop := map[grid.Coord]struct{}{c: {}}
			dirs := confirmed.Directions()
			forward := dirs[0]
			back := forward
			if len(dirs) == 2 {
				back = dirs[1]
			}

			start, startDir := c, back
			if len(dirs) == 2 {
				pos, dir := c, back
				for {
					pos = dir.Move(pos)
					entry := dir.Opposite()
					if _, dup := loop[pos]; dup {
						return nil, &loopClosedError{loop: loop}
					}
					loop[pos] = struct{}{}
					start, startDir = pos, entry
					step, more := b.CellAt(pos).OtherLeg(entry)
					if !more {
						break
					}
					dir = step
				}
			}

			end, endDir := c, forward
			pos, dir := c, forward
			for {
				pos = dir.Move(pos)
				entry := dir.Opposite()
				loop[pos] = struct{}{}
				end, endDir = pos, entry
				step, more := b.CellAt(pos).OtherLeg(entry)
				if !more {
					break
				}
				dir = step
			}

			maps.Copy(seen, loop)
			found = append(found, &segment{
				start:    start,
				startDir: startDir,
				end:      end,
				endDir:   endDir,
				cells:    loop,
			})
		}
	}
	return found, nil
}
