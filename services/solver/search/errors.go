// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import "errors"

var (
	// ErrNoSolution reports that every hypothesis branch contradicts: no
	// loop satisfies the puzzle's pearls.
	ErrNoSolution = errors.New("puzzle has no solution")

	// ErrStuck reports that the search stopped without a verdict, either
	// because the expansion limit was reached or because no unexplored
	// branch remains. The solve result still carries the best-known board.
	ErrStuck = errors.New("search stuck without a verdict")
)
