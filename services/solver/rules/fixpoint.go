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
)

// Fixpoint applies the pearl rules to every pearl, in row-major order,
// until a full pass adds no new information. Termination is guaranteed:
// each pass either confirms or excludes at least one cell direction or
// ends the loop, and a board holds finitely many of either.
func Fixpoint(b *board.Board) (*board.Board, error) {
	for {
		prev := b
		var err error
		for _, c := range b.Pearls() {
			p, _ := b.PearlAt(c)
			if p == board.White {
				b, err = ApplyWhite(b, c)
			} else {
				b, err = ApplyBlack(b, c)
			}
			if err != nil {
				return b, err
			}
		}
		if b.Equal(prev) {
			return b, nil
		}
	}
}
