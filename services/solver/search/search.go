// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package search drives the hypothesis tree that finishes puzzles the
// deduction rules alone cannot.
//
// Each lookahead node carries a board snapshot. Expanding a node picks the
// first undecided cell edge, assumes it present and absent in turn, and
// settles both assumptions with the rule fixpoint. A contradicted branch
// proves its sibling, which is spliced into the ancestor chain so the
// proof is never re-derived; a branch that closes the loop over every
// pearl unwinds as *board.Solved through the whole tree.
package search

import (
	"fmt"

	"github.com/AleutianAI/masyu/services/solver/board"
	"github.com/AleutianAI/masyu/services/solver/grid"
	"github.com/AleutianAI/masyu/services/solver/rules"
)

// lookahead is one node of the hypothesis tree. A nil pair means the node
// is unexplored; expansion either attaches a pair, strengthens the board
// in place, or removes the node from the tree entirely.
type lookahead struct {
	board  *board.Board
	pair   *possibilityPair
	parent *possibilityPair
}

// possibilityPair holds the two branches of one binary hypothesis: the
// edge is on the loop (yes) or it is not (no). The parent pointer is
// non-owning; spliced-out subtrees become unreachable and are collected.
type possibilityPair struct {
	yes    *lookahead
	no     *lookahead
	parent *lookahead
}

func newPair(parent *lookahead, yes, no *board.Board) *possibilityPair {
	p := &possibilityPair{parent: parent}
	p.yes = &lookahead{board: yes, parent: p}
	p.no = &lookahead{board: no, parent: p}
	return p
}

// sibling returns the branch opposite to n.
func (p *possibilityPair) sibling(n *lookahead) *lookahead {
	if p.yes == n {
		return p.no
	}
	return p.yes
}

// branchMask limits hypothesis spots to two of the four directions; an
// edge is shared by both its cells, so branching on the other two would
// revisit every hypothesis from the far side.
var branchMask = [2]grid.Direction{grid.Right, grid.Down}

// firstEligible scans row-major for the first undecided cell direction
// under the branch mask.
func firstEligible(b *board.Board) (grid.Coord, grid.Direction, bool) {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			eligible := b.CellAt(c).Eligible()
			for _, d := range branchMask {
				if eligible.Has(d) {
					return c, d, true
				}
			}
		}
	}
	return grid.Coord{}, 0, false
}

// explore advances the search by one expansion: breadth-first over the
// live tree, the first unexplored node found is expanded. It reports
// whether an expansion happened; false means the tree holds no unexplored
// node at all.
func explore(root *lookahead) (bool, error) {
	queue := []*lookahead{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.pair == nil {
			return true, expand(node)
		}
		queue = append(queue, node.pair.yes, node.pair.no)
	}
	return false, nil
}

// settle runs the rule fixpoint over the outcome of a hypothetical
// mutation, passing a failed mutation straight through.
func settle(b *board.Board, err error) (*board.Board, error) {
	if err != nil {
		return nil, err
	}
	return rules.Fixpoint(b)
}

// expand resolves one node: branch on the first eligible edge, collapse to
// the lone surviving assumption, or prune the node when both assumptions
// fail. A board with nothing left to branch on is itself a dead end, since
// a solved board would have unwound before ever reaching expansion.
func expand(node *lookahead) error {
	c, d, ok := firstEligible(node.board)
	if !ok {
		return prune(node)
	}

	yes, yesErr := settle(node.board.Confirm(c, d))
	if yesErr != nil && !grid.IsContradiction(yesErr) {
		return yesErr
	}
	no, noErr := settle(node.board.Exclude(c, d))
	if noErr != nil && !grid.IsContradiction(noErr) {
		return noErr
	}

	switch {
	case yesErr != nil && noErr != nil:
		return prune(node)
	case yesErr != nil:
		node.board = no
	case noErr != nil:
		node.board = yes
	default:
		node.pair = newPair(node, yes, no)
	}
	return nil
}

// prune removes a contradicted node. Its sibling branch is thereby proven,
// so the sibling's board and subtree replace the grandparent lookahead
// wholesale; the pair that held both branches is discarded. A contradicted
// root has no sibling to fall back on: the puzzle is unsolvable.
func prune(node *lookahead) error {
	pair := node.parent
	if pair == nil {
		return fmt.Errorf("root board contradicts: %w", ErrNoSolution)
	}

	sib := pair.sibling(node)
	grand := pair.parent
	grand.board = sib.board
	grand.pair = sib.pair
	if grand.pair != nil {
		grand.pair.parent = grand
	}
	return nil
}
