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

// Direction is one of the four grid axes. The zero value is Up.
//
// Coordinates are row-major with the origin at the top-left corner, so Up
// decreases Y and Left decreases X.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left

	numDirections = 4
)

// AllDirections lists the four directions in iteration order.
var AllDirections = [numDirections]Direction{Up, Right, Down, Left}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % numDirections
}

// TurnRight returns the direction after a clockwise quarter turn.
func (d Direction) TurnRight() Direction {
	return (d + 1) % numDirections
}

// TurnLeft returns the direction after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction {
	return (d + 3) % numDirections
}

var directionOffsets = [numDirections]Coord{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Move returns the coordinate one step from c in direction d.
func (d Direction) Move(c Coord) Coord {
	off := directionOffsets[d]
	return Coord{X: c.X + off.X, Y: c.Y + off.Y}
}

// Coord addresses a cell on the board. X grows rightward, Y grows downward.
type Coord struct {
	X int
	Y int
}

// String returns the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less orders coordinates row-major (top-to-bottom, then left-to-right).
func (c Coord) Less(other Coord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}
