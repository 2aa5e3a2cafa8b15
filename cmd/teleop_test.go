// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package cmd

import (
	"testing"

	"github.com/Oxidized-Robots/go-rpi-4wd-car/pkg/rr4c"
)

func TestPositionalFrameShape(t *testing.T) {
	frame := positionalFrame(map[int]byte{1: '1', 6: '2'})

	if len(frame) != 19 {
		t.Fatalf("frame length = %d, want 19", len(frame))
	}
	if frame[0] != '$' || frame[len(frame)-1] != '#' {
		t.Errorf("frame = %q, want $...#", frame)
	}
	if frame != "$01000020000000000#" {
		t.Errorf("frame = %q", frame)
	}
}

func TestFrameForKeyDecodes(t *testing.T) {
	// Every bound key must synthesize a frame the decoder accepts.
	keys := []string{
		"up", "down", "left", "right", "w", "a", "d",
		"x", " ", "+", "-", "l", "o", "f",
		"u", "n", "g", "i", "m", "j", "k",
		"0", "1", "2", "3", "4", "5", "6",
	}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			m, err := initialTeleopModel()
			if err != nil {
				t.Fatalf("initialTeleopModel failed: %v", err)
			}

			frame := m.frameForKey(key)
			if frame == "" {
				t.Fatalf("key %q is not bound", key)
			}
			if err := m.decoder.DecodeLegacy(frame); err != nil {
				t.Errorf("frame %q from key %q rejected: %v", frame, key, err)
			}
		})
	}
}

func TestFrameForKeySpinToggle(t *testing.T) {
	m, err := initialTeleopModel()
	if err != nil {
		t.Fatalf("initialTeleopModel failed: %v", err)
	}

	normal := m.frameForKey("left")
	m.spin = true
	spin := m.frameForKey("left")

	if normal == spin {
		t.Errorf("spin steering did not change the frame: %q", normal)
	}
	if err := m.decoder.DecodeLegacy(spin); err != nil {
		t.Errorf("spin frame %q rejected: %v", spin, err)
	}
	if left, right := m.motors.Speeds(); left != -25 || right != 25 {
		t.Errorf("speeds = (%d,%d), want (-25,25)", left, right)
	}
}

func TestFrameForKeyModeCommands(t *testing.T) {
	m, err := initialTeleopModel()
	if err != nil {
		t.Fatalf("initialTeleopModel failed: %v", err)
	}

	if frame := m.frameForKey("2"); frame != "$4WD,MODE21#" {
		t.Errorf(`frameForKey("2") = %q, want "$4WD,MODE21#"`, frame)
	}
	if frame := m.frameForKey("0"); frame != "$4WD,MODE00#" {
		t.Errorf(`frameForKey("0") = %q, want "$4WD,MODE00#"`, frame)
	}

	m.sendFrame(m.frameForKey("2"))
	if m.decoder.Mode() != rr4c.ModeTracking {
		t.Errorf("mode = %s, want %s", m.decoder.Mode(), rr4c.ModeTracking)
	}
	if len(m.logLines) != 1 {
		t.Errorf("log lines = %d, want 1", len(m.logLines))
	}
}
