// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package level reads Masyu puzzles from the .masyu text format.
//
// A puzzle is a rectangle of cells, one rune per cell: '.' empty, 'o' a
// white pearl, '●' a black pearl. Lines starting with '#' are comments.
// Common leading indentation is stripped, so puzzles embed cleanly in
// indented string literals.
package level

import (
	"fmt"
	"os"
	"strings"

	"github.com/AleutianAI/masyu/services/solver/board"
	"github.com/AleutianAI/masyu/services/solver/grid"
)

const (
	runeEmpty = '.'
	runeWhite = 'o'
	runeBlack = '●'
)

// Parse builds a fresh board from puzzle source text.
func Parse(src string) (*board.Board, error) {
	lines := make([]string, 0, 16)
	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}
		lines = append(lines, strings.TrimRight(line, " \t\r"))
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadFormat)
	}

	indent := commonIndent(lines)
	pearls := make(map[grid.Coord]board.Pearl)
	width := -1
	for y, line := range lines {
		row := []rune(strings.TrimPrefix(line, indent))
		if width < 0 {
			width = len(row)
		}
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d is %d cells wide, want %d",
				ErrBadFormat, y, len(row), width)
		}
		for x, r := range row {
			switch r {
			case runeEmpty:
			case runeWhite:
				pearls[grid.Coord{X: x, Y: y}] = board.White
			case runeBlack:
				pearls[grid.Coord{X: x, Y: y}] = board.Black
			default:
				return nil, fmt.Errorf("%w: row %d has unknown cell %q",
					ErrBadFormat, y, r)
			}
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrBadFormat)
	}
	if len(pearls) == 0 {
		return nil, ErrNoPearls
	}
	return board.New(width, len(lines), pearls)
}

// commonIndent returns the longest whitespace prefix shared by every row.
func commonIndent(lines []string) string {
	indent := ""
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		prefix := line[:len(line)-len(trimmed)]
		if i == 0 {
			indent = prefix
			continue
		}
		for !strings.HasPrefix(prefix, indent) {
			indent = indent[:len(indent)-1]
		}
	}
	return indent
}

// Load reads a puzzle from the file at path.
func Load(path string) (*board.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level file: %w", err)
	}
	b, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return b, nil
}

// Resolve loads name as a file when one exists at that path, falling back
// to the builtin set.
func Resolve(name string) (*board.Board, error) {
	if _, err := os.Stat(name); err == nil {
		return Load(name)
	}
	return Builtin(name)
}
