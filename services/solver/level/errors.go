// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package level

import "errors"

var (
	// ErrBadFormat reports source text that is not a well-formed puzzle:
	// empty, ragged rows, or an unknown cell rune.
	ErrBadFormat = errors.New("malformed level")

	// ErrNoPearls reports a puzzle with no pearls at all. Such a board is
	// satisfied by any closed loop, so it is refused at the boundary.
	ErrNoPearls = errors.New("level has no pearls")

	// ErrUnknownLevel reports a builtin lookup by a name that does not
	// exist.
	ErrUnknownLevel = errors.New("unknown builtin level")
)
