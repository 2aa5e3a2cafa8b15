// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

// Package hardware provides state-model implementations of the rr4c
// actuator contracts: motors, servos, and the human-interface board.
//
// The drivers track the state the real hardware would be in (speeds, servo
// angles, light levels, fan) without generating GPIO or PWM signals, which
// makes them usable on any machine for the CLI tools and for integration
// tests. A pin-level port would keep the same exported surface.
package hardware

// Speed limits for the drive motors, in signed percent.
const (
	MaxSpeed int8 = 100
	MinSpeed int8 = -100
)

// Motors models the two H-bridge driven motor pairs. Speeds are signed
// percentages; sign selects direction.
type Motors struct {
	enabled     bool
	left, right int8
}

// NewMotors returns a stopped, enabled drive.
func NewMotors() *Motors {
	return &Motors{enabled: true}
}

// Movement sets both side speeds, clamped to the -100..100 range.
func (m *Motors) Movement(left, right int8) error {
	m.left = clampSpeed(left)
	m.right = clampSpeed(right)
	return nil
}

// Brake stops both sides.
func (m *Motors) Brake() error {
	m.left, m.right = 0, 0
	return nil
}

// Enable gates whether movement reaches the motors. The commanded speeds
// are kept either way so re-enabling resumes the last movement.
func (m *Motors) Enable(on bool) {
	m.enabled = on
}

// Enabled reports the drive gate state.
func (m *Motors) Enabled() bool {
	return m.enabled
}

// Speeds returns the last commanded left and right speeds.
func (m *Motors) Speeds() (left, right int8) {
	return m.left, m.right
}

func clampSpeed(v int8) int8 {
	return min(max(v, MinSpeed), MaxSpeed)
}
