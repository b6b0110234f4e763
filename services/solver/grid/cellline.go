// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package grid

import "fmt"

// CellLine tracks what is known about the loop at a single cell: the
// directions the loop is confirmed to pass through, and the directions it
// is confirmed not to.
//
// Invariants maintained by every transition:
//   - confirmed and excluded are disjoint
//   - confirmed never exceeds two directions
//   - two confirmed directions force the other two excluded
//   - three excluded directions force the fourth excluded
//
// The zero value is a cell with no information.
type CellLine struct {
	confirmed DirSet
	excluded  DirSet
}

// NewCellLine builds a cell with the given excluded directions pre-seeded,
// used for cells on the board edge whose off-grid sides can never carry the
// loop. Three seeded exclusions complete the cell (corner of a 1-wide
// board), matching the promotion Exclude applies.
func NewCellLine(excluded DirSet) CellLine {
	if excluded.Count() >= 3 {
		excluded = FullDirSet
	}
	return CellLine{excluded: excluded}
}

// Confirmed returns the directions the loop is known to use at this cell.
func (c CellLine) Confirmed() DirSet { return c.confirmed }

// Excluded returns the directions the loop is known to avoid at this cell.
func (c CellLine) Excluded() DirSet { return c.excluded }

// Eligible returns the directions that are neither confirmed nor excluded,
// the candidates for branching.
func (c CellLine) Eligible() DirSet {
	return c.confirmed.Union(c.excluded).Complement()
}

// Done reports whether every direction has been decided.
func (c CellLine) Done() bool {
	return c.confirmed.Union(c.excluded) == FullDirSet
}

// OtherLeg returns the confirmed direction other than d, used to walk a
// path through the cell. The second return is false when the cell has no
// second confirmed leg.
func (c CellLine) OtherLeg(d Direction) (Direction, bool) {
	return c.confirmed.Remove(d).Single()
}

// Confirm records that the loop passes through this cell in direction d.
//
// A second confirmed direction excludes the remaining pair (a loop visits
// a cell at most once, so a cell carries zero or two edges). Conversely, a
// cell that already holds two exclusions adopts the complementary pair as
// confirmed the moment any of it is confirmed.
func (c CellLine) Confirm(d Direction) (CellLine, error) {
	if c.confirmed.Has(d) {
		return c, nil
	}
	if c.excluded.Has(d) {
		return c, fmt.Errorf("confirm %v against exclusion: %w", d, ErrContradiction)
	}
	c.confirmed = c.confirmed.Add(d)
	if c.confirmed.Count() == 2 {
		c.excluded = c.confirmed.Complement()
	} else if c.excluded.Count() == 2 {
		c.confirmed = c.excluded.Complement()
	}
	return c, nil
}

// Exclude records that the loop does not use direction d at this cell.
//
// Two exclusions alongside one confirmed direction leave only one legal
// edge pair, which is promoted to confirmed. A third exclusion rules the
// cell out of the loop entirely.
func (c CellLine) Exclude(d Direction) (CellLine, error) {
	if c.excluded.Has(d) {
		return c, nil
	}
	if c.confirmed.Has(d) {
		return c, fmt.Errorf("exclude confirmed %v: %w", d, ErrContradiction)
	}
	c.excluded = c.excluded.Add(d)
	if c.excluded.Count() == 2 && c.confirmed.Count() == 1 {
		c.confirmed = c.excluded.Complement()
	} else if c.excluded.Count() == 3 {
		c.excluded = FullDirSet
	}
	return c, nil
}

// ForceThrough applies the assumption that the loop passes straight through
// this cell, so its confirmed pair must be an opposite pair.
//
// With one confirmed direction the opposite is confirmed. With none, a
// single exclusion decides the whole cell at once: the excluded axis is
// ruled out and the perpendicular axis confirmed. Two exclusions leave one
// candidate pair, which must itself be straight. A cell with no information
// is returned unchanged.
func (c CellLine) ForceThrough() (CellLine, error) {
	switch c.confirmed.Count() {
	case 2:
		if !c.confirmed.IsOppositePair() {
			return c, fmt.Errorf("straight line through bent cell %v: %w", c.confirmed, ErrContradiction)
		}
		return c, nil
	case 1:
		d, _ := c.confirmed.Single()
		return c.Confirm(d.Opposite())
	}

	switch c.excluded.Count() {
	case 1:
		d, _ := c.excluded.Single()
		return CellLine{confirmed: Axis(d).Complement(), excluded: Axis(d)}, nil
	case 2:
		through := c.excluded.Complement()
		if !through.IsOppositePair() {
			return c, fmt.Errorf("no straight axis remains in %v: %w", through, ErrContradiction)
		}
		return CellLine{confirmed: through, excluded: c.excluded}, nil
	case 4:
		return c, fmt.Errorf("line through fully excluded cell: %w", ErrContradiction)
	}
	return c, nil
}

// ForceBend applies the assumption that the loop turns in this cell, so its
// confirmed pair must not be an opposite pair.
//
// With one confirmed direction the opposite is excluded. With none, a
// single exclusion confirms its opposite, since every remaining bend uses
// it. Two exclusions leave one candidate pair, which must not be straight.
func (c CellLine) ForceBend() (CellLine, error) {
	switch c.confirmed.Count() {
	case 2:
		if c.confirmed.IsOppositePair() {
			return c, fmt.Errorf("bend in straight cell %v: %w", c.confirmed, ErrContradiction)
		}
		return c, nil
	case 1:
		d, _ := c.confirmed.Single()
		return c.Exclude(d.Opposite())
	}

	switch c.excluded.Count() {
	case 1:
		d, _ := c.excluded.Single()
		return c.Confirm(d.Opposite())
	case 2:
		corner := c.excluded.Complement()
		if corner.IsOppositePair() {
			return c, fmt.Errorf("only straight axis %v remains for bend: %w", corner, ErrContradiction)
		}
		return CellLine{confirmed: corner, excluded: c.excluded}, nil
	case 4:
		return c, fmt.Errorf("bend in fully excluded cell: %w", ErrContradiction)
	}
	return c, nil
}

// String renders the cell state for logs and test failures.
func (c CellLine) String() string {
	return fmt.Sprintf("CellLine(confirmed=%v excluded=%v)", c.confirmed, c.excluded)
}
