// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Mode defines the richness of CLI output
type Mode string

const (
	// ModeStyled enables colors, icons, and boxes
	ModeStyled Mode = "styled"

	// ModePlain outputs plain text suitable for scripting and parsing
	ModePlain Mode = "plain"
)

var (
	currentMode = ModeStyled
	modeMu      sync.RWMutex
)

// GetMode returns the current output mode
func GetMode() Mode {
	modeMu.RLock()
	defer modeMu.RUnlock()
	return currentMode
}

// SetMode updates the current output mode
func SetMode(m Mode) {
	modeMu.Lock()
	defer modeMu.Unlock()
	currentMode = m
}

// Plain reports whether output should be unstyled
func Plain() bool {
	return GetMode() == ModePlain
}

// InitMode initializes the output mode from environment and terminal
// state. NO_COLOR (https://no-color.org) and non-terminal stdout both
// select plain output.
func InitMode() {
	if os.Getenv("NO_COLOR") != "" {
		SetMode(ModePlain)
		return
	}

	if !isTerminal() {
		SetMode(ModePlain)
		return
	}

	SetMode(ModeStyled)
}

// isTerminal checks if stdout is a terminal
func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
