// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package hardware

import (
	"testing"
	"time"
)

func TestMotorsMovementClamps(t *testing.T) {
	tests := []struct {
		name                string
		left, right         int8
		wantLeft, wantRight int8
	}{
		{"in range", 50, -50, 50, -50},
		{"over max", 120, 100, 100, 100},
		{"under min", -120, -101, -100, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMotors()
			if err := m.Movement(tt.left, tt.right); err != nil {
				t.Fatalf("Movement failed: %v", err)
			}
			left, right := m.Speeds()
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("speeds = (%d,%d), want (%d,%d)", left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestMotorsBrakeAndEnable(t *testing.T) {
	m := NewMotors()
	if !m.Enabled() {
		t.Error("new drive should start enabled")
	}

	if err := m.Movement(40, 40); err != nil {
		t.Fatalf("Movement failed: %v", err)
	}
	if err := m.Brake(); err != nil {
		t.Fatalf("Brake failed: %v", err)
	}
	if left, right := m.Speeds(); left != 0 || right != 0 {
		t.Errorf("speeds after brake = (%d,%d), want (0,0)", left, right)
	}

	m.Enable(false)
	if m.Enabled() {
		t.Error("Enable(false) did not disable the drive")
	}
}

func TestServosInit(t *testing.T) {
	s := NewServos()
	if s.Running() {
		t.Error("servos should not run before Init")
	}

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if !s.Running() {
		t.Error("servos should run after Init")
	}
	if s.Front() != CenterAngle || s.CameraPan() != CenterAngle || s.CameraTilt() != CenterAngle {
		t.Errorf("angles = (%d,%d,%d), want all %d",
			s.Front(), s.CameraPan(), s.CameraTilt(), CenterAngle)
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if s.Running() {
		t.Error("servos should stop after Stop")
	}
	if s.Front() != CenterAngle {
		t.Error("Stop should retain positions")
	}
}

func TestServosClampAndStep(t *testing.T) {
	s := NewServos()
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if err := s.SetFront(250); err != nil {
		t.Fatalf("SetFront failed: %v", err)
	}
	if s.Front() != MaxAngle {
		t.Errorf("front = %d, want clamp to %d", s.Front(), MaxAngle)
	}

	// Stepping never walks past either end stop.
	for i := 0; i < 25; i++ {
		if err := s.FrontLeft(); err != nil {
			t.Fatalf("FrontLeft failed: %v", err)
		}
	}
	if s.Front() != MaxAngle {
		t.Errorf("front = %d, want %d", s.Front(), MaxAngle)
	}
	for i := 0; i < 25; i++ {
		if err := s.FrontRight(); err != nil {
			t.Fatalf("FrontRight failed: %v", err)
		}
	}
	if s.Front() != 0 {
		t.Errorf("front = %d, want 0", s.Front())
	}

	if err := s.CenterFront(); err != nil {
		t.Fatalf("CenterFront failed: %v", err)
	}
	if s.Front() != CenterAngle {
		t.Errorf("front = %d, want %d", s.Front(), CenterAngle)
	}
}

func TestServosGimbalSteps(t *testing.T) {
	s := NewServos()
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if err := s.CameraPanLeft(); err != nil {
		t.Fatalf("CameraPanLeft failed: %v", err)
	}
	if s.CameraPan() != CenterAngle+ServoStep {
		t.Errorf("pan = %d, want %d", s.CameraPan(), CenterAngle+ServoStep)
	}

	if err := s.CameraTiltDown(); err != nil {
		t.Fatalf("CameraTiltDown failed: %v", err)
	}
	if s.CameraTilt() != CenterAngle-ServoStep {
		t.Errorf("tilt = %d, want %d", s.CameraTilt(), CenterAngle-ServoStep)
	}

	if err := s.CenterCameraPan(); err != nil {
		t.Fatalf("CenterCameraPan failed: %v", err)
	}
	if err := s.CenterCameraTilt(); err != nil {
		t.Fatalf("CenterCameraTilt failed: %v", err)
	}
	if s.CameraPan() != CenterAngle || s.CameraTilt() != CenterAngle {
		t.Errorf("gimbal = (%d,%d), want (%d,%d)",
			s.CameraPan(), s.CameraTilt(), CenterAngle, CenterAngle)
	}
}

func TestHidsLightsClamp(t *testing.T) {
	h := NewHumanInterface(WithSleep(func(time.Duration) {}))

	if err := h.Lights(150, 50, 200); err != nil {
		t.Fatalf("Lights failed: %v", err)
	}
	if got := h.State(); got != (RGB{100, 50, 100}) {
		t.Errorf("state = %v, want {100 50 100}", got)
	}

	if err := h.SetGreen(250); err != nil {
		t.Fatalf("SetGreen failed: %v", err)
	}
	if got := h.State(); got != (RGB{100, 100, 100}) {
		t.Errorf("state = %v, want {100 100 100}", got)
	}
}

func TestHidsPalette(t *testing.T) {
	h := NewHumanInterface(WithSleep(func(time.Duration) {}))

	for i, want := range Palette {
		if err := h.SetColor(uint8(i)); err != nil {
			t.Fatalf("SetColor(%d) failed: %v", i, err)
		}
		if got := h.State(); got != want {
			t.Errorf("palette %d = %v, want %v", i, got, want)
		}
	}

	// Out-of-range indexes clamp to the last entry.
	if err := h.SetColor(200); err != nil {
		t.Fatalf("SetColor(200) failed: %v", err)
	}
	if h.ColorIndex() != uint8(len(Palette))-1 {
		t.Errorf("color index = %d, want %d", h.ColorIndex(), len(Palette)-1)
	}
	if got := h.State(); got != Palette[len(Palette)-1] {
		t.Errorf("state = %v, want %v", got, Palette[len(Palette)-1])
	}
}

func TestHidsSounds(t *testing.T) {
	var slept []time.Duration
	h := NewHumanInterface(WithSleep(func(d time.Duration) { slept = append(slept, d) }))

	h.Beep(200 * time.Millisecond)
	h.Whistle()

	if h.Beeps() != 1 || h.Whistles() != 1 {
		t.Errorf("beeps=%d whistles=%d, want 1 and 1", h.Beeps(), h.Whistles())
	}
	if len(slept) != 2 || slept[0] != 200*time.Millisecond || slept[1] != whistleBeep {
		t.Errorf("sleeps = %v", slept)
	}
}

func TestHidsFan(t *testing.T) {
	var slept []time.Duration
	h := NewHumanInterface(WithSleep(func(d time.Duration) { slept = append(slept, d) }))

	if err := h.ToggleFan(); err != nil {
		t.Fatalf("ToggleFan failed: %v", err)
	}
	if !h.FanOn() {
		t.Error("fan should be on after toggle")
	}

	// Blow caps the run time and always ends with the fan off.
	h.Blow(5 * time.Minute)
	if h.FanOn() {
		t.Error("fan should be off after Blow")
	}
	if len(slept) != 1 || slept[0] != maxBlow {
		t.Errorf("sleeps = %v, want [%v]", slept, maxBlow)
	}
}
