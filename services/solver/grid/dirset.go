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

import (
	"math/bits"
	"strings"
)

// DirSet is a set of directions packed into the low four bits of a byte.
// The zero value is the empty set. All operations are value operations; a
// DirSet is never mutated in place.
type DirSet uint8

// FullDirSet contains all four directions.
const FullDirSet DirSet = 1<<numDirections - 1

// NewDirSet builds a set from the given directions.
func NewDirSet(dirs ...Direction) DirSet {
	var s DirSet
	for _, d := range dirs {
		s |= 1 << d
	}
	return s
}

// Axis returns the two-element set {d, d.Opposite()}.
func Axis(d Direction) DirSet {
	return 1<<d | 1<<d.Opposite()
}

// Has reports whether d is in the set.
func (s DirSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// Add returns the set with d included.
func (s DirSet) Add(d Direction) DirSet {
	return s | 1<<d
}

// Remove returns the set with d excluded.
func (s DirSet) Remove(d Direction) DirSet {
	return s &^ (1 << d)
}

// Union returns the set of directions in either operand.
func (s DirSet) Union(other DirSet) DirSet {
	return s | other
}

// Complement returns the directions not in the set.
func (s DirSet) Complement() DirSet {
	return ^s & FullDirSet
}

// Count returns the number of directions in the set.
func (s DirSet) Count() int {
	return bits.OnesCount8(uint8(s))
}

// IsEmpty reports whether the set has no directions.
func (s DirSet) IsEmpty() bool {
	return s == 0
}

// Single returns the set's only direction. The second return is false
// unless the set has exactly one element.
func (s DirSet) Single() (Direction, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return Direction(bits.TrailingZeros8(uint8(s))), true
}

// IsOppositePair reports whether the set is exactly one straight axis,
// either {Up, Down} or {Left, Right}.
func (s DirSet) IsOppositePair() bool {
	return s == Axis(Up) || s == Axis(Right)
}

// Directions returns the members in Up, Right, Down, Left order.
func (s DirSet) Directions() []Direction {
	out := make([]Direction, 0, s.Count())
	for _, d := range AllDirections {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String returns the set as "{Up Right}".
func (s DirSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, d := range s.Directions() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.String())
	}
	b.WriteByte('}')
	return b.String()
}
