// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// =============================================================================
// NewSpinner Tests
// =============================================================================

func TestNewSpinner_ReturnsNonNil(t *testing.T) {
	spin := NewSpinner("Solving...")
	if spin == nil {
		t.Fatal("NewSpinner returned nil")
	}
}

func TestNewSpinner_SetsMessage(t *testing.T) {
	spin := NewSpinner("Searching for loop")
	if spin.message != "Searching for loop" {
		t.Errorf("expected message 'Searching for loop', got %q", spin.message)
	}
}

func TestNewSpinner_DefaultsToDotsType(t *testing.T) {
	spin := NewSpinner("Solving...")
	if spin.spinType != SpinnerDots {
		t.Errorf("expected SpinnerDots, got %v", spin.spinType)
	}
}

func TestNewSpinner_InitializesChannels(t *testing.T) {
	spin := NewSpinner("Solving...")
	if spin.stop == nil {
		t.Error("stop channel should be initialized")
	}
	if spin.done == nil {
		t.Error("done channel should be initialized")
	}
}

// =============================================================================
// WithType Tests
// =============================================================================

func TestSpinner_WithType_Compass(t *testing.T) {
	spin := NewSpinner("Solving...").WithType(SpinnerCompass)
	if spin.spinType != SpinnerCompass {
		t.Errorf("expected SpinnerCompass, got %v", spin.spinType)
	}
}

func TestSpinner_WithType_Chaining(t *testing.T) {
	spin := NewSpinner("Solving...").WithType(SpinnerCompass)
	if spin == nil {
		t.Error("WithType should return the spinner for chaining")
	}
}

// =============================================================================
// Start/Stop Tests (Plain Mode)
// =============================================================================

func TestSpinner_Start_PlainMode(t *testing.T) {
	orig := GetMode()
	defer SetMode(orig)

	SetMode(ModePlain)

	spin := NewSpinner("Solving...")
	output := captureStdout(func() {
		spin.Start()
	})

	if output != "PROGRESS: Solving...\n" {
		t.Errorf("expected 'PROGRESS: Solving...', got %q", output)
	}
}

func TestSpinner_Stop_PlainMode(t *testing.T) {
	orig := GetMode()
	defer SetMode(orig)

	SetMode(ModePlain)

	spin := NewSpinner("Solving...")
	spin.Start()
	spin.Stop() // Should not panic or hang
}

func TestSpinner_Start_AlreadyRunning(t *testing.T) {
	orig := GetMode()
	defer SetMode(orig)

	SetMode(ModePlain)

	spin := NewSpinner("Solving...")
	spin.Start()
	spin.Start() // Second start should be no-op
	spin.Stop()
}

func TestSpinner_Stop_NotRunning(t *testing.T) {
	orig := GetMode()
	defer SetMode(orig)

	SetMode(ModePlain)

	spin := NewSpinner("Solving...")
	spin.Stop() // Should not panic when not running
}

// =============================================================================
// Start/Stop Tests (Styled Mode - Brief)
// =============================================================================

func TestSpinner_StartStop_StyledMode(t *testing.T) {
	orig := GetMode()
	defer SetMode(orig)

	SetMode(ModeStyled)

	spin := NewSpinner("Solving...")
	spin.Start()

	// Give it a moment to start animation
	time.Sleep(100 * time.Millisecond)

	spin.Stop()
}

// =============================================================================
// UpdateMessage Tests
// =============================================================================

func TestSpinner_UpdateMessage(t *testing.T) {
	spin := NewSpinner("Initial message")
	spin.UpdateMessage("searching [step 12]")
	if spin.message != "searching [step 12]" {
		t.Errorf("expected updated message, got %q", spin.message)
	}
}

func TestSpinner_UpdateMessage_WhileRunning(t *testing.T) {
	orig := GetMode()
	defer SetMode(orig)

	SetMode(ModeStyled)

	spin := NewSpinner("searching")
	spin.Start()
	for step := 1; step <= 5; step++ {
		spin.UpdateMessage("searching [step " + string(rune('0'+step)) + "]")
		time.Sleep(20 * time.Millisecond)
	}
	spin.Stop()
}

// =============================================================================
// StopWith Tests
// =============================================================================

func TestSpinner_StopWithSuccess(t *testing.T) {
	orig := GetMode()
	defer SetMode(orig)

	SetMode(ModePlain)

	spin := NewSpinner("Solving...")
	spin.Start()

	output := captureStdout(func() {
		spin.StopWithSuccess("solved in 42 steps")
	})

	if !strings.Contains(output, "OK: solved in 42 steps") {
		t.Errorf("expected success message, got %q", output)
	}
}

func TestSpinner_StopWithError(t *testing.T) {
	orig := GetMode()
	defer SetMode(orig)

	SetMode(ModePlain)

	spin := NewSpinner("Solving...")
	spin.Start()

	output := captureStderr(func() {
		spin.StopWithError("no solution")
	})

	if !strings.Contains(output, "ERROR: no solution") {
		t.Errorf("expected error message, got %q", output)
	}
}

func TestSpinner_StopWithWarning(t *testing.T) {
	orig := GetMode()
	defer SetMode(orig)

	SetMode(ModePlain)

	spin := NewSpinner("Solving...")
	spin.Start()

	output := captureStderr(func() {
		spin.StopWithWarning("step limit reached")
	})

	if !strings.Contains(output, "WARN: step limit reached") {
		t.Errorf("expected warning message, got %q", output)
	}
}

// =============================================================================
// WithSpinner Tests
// =============================================================================

func TestWithSpinner_Success(t *testing.T) {
	orig := GetMode()
	defer SetMode(orig)

	SetMode(ModePlain)

	called := false
	err := WithSpinner("loading level", func() error {
		called = true
		return nil
	})

	if err != nil {
		t.Errorf("WithSpinner returned error: %v", err)
	}
	if !called {
		t.Error("function should have been called")
	}
}

func TestWithSpinner_Error(t *testing.T) {
	orig := GetMode()
	defer SetMode(orig)

	SetMode(ModePlain)

	wantErr := errors.New("bad level")
	err := WithSpinner("loading level", func() error {
		return wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("WithSpinner should return the function's error, got %v", err)
	}
}
