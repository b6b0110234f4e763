// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation utilities for user-supplied
// identifiers.
//
// Level names arrive through the HTTP API and end up in lookups, responses,
// and log lines. Validating them keeps arbitrary bytes out of all three.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// levelNamePattern matches valid level names.
// Allows: lowercase letters, digits, hyphens, underscores
// Max length: 32 characters
var levelNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_\-]{0,31}$`)

// ValidateLevelName validates a puzzle level name.
//
// Valid names:
//   - 1-32 characters
//   - Lowercase letters a-z
//   - Digits 0-9
//   - Hyphens (-) and underscores (_) after the first character
//
// Returns an error if the name is invalid.
//
// Example:
//
//	if err := validation.ValidateLevelName(name); err != nil {
//	    return nil, fmt.Errorf("invalid level name: %w", err)
//	}
//	// Safe to look up and echo back
func ValidateLevelName(name string) error {
	if name == "" {
		return fmt.Errorf("level name cannot be empty")
	}

	if !levelNamePattern.MatchString(name) {
		return fmt.Errorf("invalid level name: %q (must be 1-32 lowercase alphanumeric chars, hyphens, or underscores)", name)
	}

	return nil
}

// SanitizeLevelName normalizes and validates a level name.
// Returns the lowercase name if valid, or an error if invalid.
//
// Use this at API boundaries so "Ring" and "ring " both resolve:
//
//	name, err := validation.SanitizeLevelName(userInput)
//	if err != nil {
//	    return err
//	}
//	// name is lowercase and validated
func SanitizeLevelName(name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if err := ValidateLevelName(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}
