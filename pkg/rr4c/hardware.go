// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package rr4c

import "time"

// Motors is the drive motor collaborator. Speeds are signed percentages in
// -100..100: sign selects direction, magnitude selects duty.
type Motors interface {
	// Movement sets the left and right side speeds.
	Movement(left, right int8) error
	// Brake stops both sides immediately.
	Brake() error
	// Enable gates whether movement commands reach the motors.
	Enable(on bool)
	// Speeds returns the last commanded left and right speeds.
	Speeds() (left, right int8)
}

// Servos is the steering and camera gimbal collaborator. Angles are degrees
// in 0..180; the Center variants move to the servo's default position.
// The directional helpers move one fixed step from the current position.
type Servos interface {
	Init() error
	Stop() error

	SetFront(angle uint8) error
	CenterFront() error
	FrontLeft() error
	FrontRight() error

	SetCameraPan(angle uint8) error
	CenterCameraPan() error
	CameraPanLeft() error
	CameraPanRight() error

	SetCameraTilt(angle uint8) error
	CenterCameraTilt() error
	CameraTiltUp() error
	CameraTiltDown() error
}

// HumanInterface is the lights, buzzer, and fan collaborator. Light values
// are percentages in 0..100. Beep, Whistle, and Blow block for the duration
// of the sound or fan run.
type HumanInterface interface {
	// Lights sets all three LED channels in one call.
	Lights(red, green, blue uint8) error
	SetRed(pct uint8) error
	SetGreen(pct uint8) error
	SetBlue(pct uint8) error
	// SetColor selects a preset color from the fixed 8-entry palette.
	SetColor(index uint8) error

	Beep(d time.Duration)
	Whistle()

	// Blow runs the fan for the given duration.
	Blow(d time.Duration)
	ToggleFan() error
}
