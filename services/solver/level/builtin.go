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

import (
	"embed"
	"fmt"
	"strings"

	"github.com/AleutianAI/masyu/services/solver/board"
)

// Builtin puzzles ship inside the binary so the solver works with no
// files on disk.
//
//go:embed levels/*.masyu
var builtinFS embed.FS

// Builtin returns a fresh board for the embedded puzzle with the given
// name.
func Builtin(name string) (*board.Board, error) {
	data, err := builtinFS.ReadFile("levels/" + name + ".masyu")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	b, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("builtin level %s: %w", name, err)
	}
	return b, nil
}

// Names lists the embedded puzzles in lexical order.
func Names() []string {
	entries, err := builtinFS.ReadDir("levels")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".masyu"))
	}
	return names
}
