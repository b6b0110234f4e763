// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package render draws boards with box-drawing characters.
//
// The undecided scaffold (cell walls and row separators) is dimmed;
// confirmed loop edges, pearls, and the glyph inside each cell are drawn
// in the terminal's default weight, so the loop stands out as it grows.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AleutianAI/masyu/services/solver/board"
	"github.com/AleutianAI/masyu/services/solver/grid"
)

const (
	glyphWhite = "o"
	glyphBlack = "●"
)

// innerGlyphs maps a cell's confirmed direction pair to the line drawn
// inside it. Cells with fewer than two confirmed directions stay blank.
var innerGlyphs = map[grid.DirSet]string{
	grid.NewDirSet(grid.Up, grid.Down):    "│",
	grid.NewDirSet(grid.Left, grid.Right): "─",
	grid.NewDirSet(grid.Left, grid.Down):  "┐",
	grid.NewDirSet(grid.Left, grid.Up):    "┘",
	grid.NewDirSet(grid.Right, grid.Up):   "└",
	grid.NewDirSet(grid.Right, grid.Down): "┌",
}

// Renderer draws boards, optionally colorized. The zero value renders
// plain text; plain output is byte-stable and used by tests and non-TTY
// runs.
type Renderer struct {
	color bool
	dim   lipgloss.Style
}

// New returns a renderer. With color enabled the scaffold is dimmed using
// the ANSI bright-black palette entry.
func New(color bool) *Renderer {
	return &Renderer{
		color: color,
		dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (r *Renderer) scaffold(s string) string {
	if !r.color {
		return s
	}
	return r.dim.Render(s)
}

// Board renders the full picture: every cell wall, confirmed edges bright,
// pearls and inner-cell line glyphs.
func (r *Renderer) Board(b *board.Board) string {
	w := b.Width()
	var out strings.Builder

	out.WriteString(r.scaffold("┌" + strings.Repeat("─┬", w-1) + "─┐"))
	out.WriteByte('\n')

	for y := 0; y < b.Height(); y++ {
		out.WriteString(r.scaffold("│"))
		for x := 0; x < w; x++ {
			c := grid.Coord{X: x, Y: y}
			out.WriteString(r.cellGlyph(b, c))
			if b.CellAt(c).Confirmed().Has(grid.Right) {
				out.WriteString("─")
			} else {
				out.WriteString(r.scaffold("│"))
			}
		}
		out.WriteByte('\n')

		if y == b.Height()-1 {
			out.WriteString(r.scaffold("└" + strings.Repeat("─┴", w-1) + "─┘"))
		} else {
			out.WriteString(r.scaffold("├"))
			for x := 0; x < w; x++ {
				c := grid.Coord{X: x, Y: y}
				if b.CellAt(c).Confirmed().Has(grid.Down) {
					out.WriteString("│")
				} else {
					out.WriteString(r.scaffold("─"))
				}
				if x == w-1 {
					out.WriteString(r.scaffold("┤"))
				} else {
					out.WriteString(r.scaffold("┼"))
				}
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// cellGlyph picks what sits inside a cell: the pearl when there is one,
// otherwise the line through the cell once both its directions are known.
func (r *Renderer) cellGlyph(b *board.Board, c grid.Coord) string {
	if pearl, ok := b.PearlAt(c); ok {
		if pearl == board.Black {
			return glyphBlack
		}
		return glyphWhite
	}
	if g, ok := innerGlyphs[b.CellAt(c).Confirmed()]; ok {
		return g
	}
	return " "
}

// Compact renders only the pearl layout, one rune per cell. The output
// round-trips through the level parser.
func (r *Renderer) Compact(b *board.Board) string {
	var out strings.Builder
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			pearl, ok := b.PearlAt(grid.Coord{X: x, Y: y})
			switch {
			case !ok:
				out.WriteString(".")
			case pearl == board.Black:
				out.WriteString(glyphBlack)
			default:
				out.WriteString(glyphWhite)
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}
