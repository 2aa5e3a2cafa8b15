// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

// Package rr4c implements the RR4C command-and-control protocol decoder.
//
// The decoder turns textual command frames into actuator calls and tracks
// the robot's operating mode, default drive speed, and LED color between
// frames. Two incompatible wire grammars are supported, each with its own
// entry point: the extended grammar ($RR4W,...#, comma-separated opcode
// segments) and the legacy Yahboom grammar ($...#, tagged or fixed-field
// positional bodies).
package rr4c

import "time"

// Frame markers shared by both grammars
const (
	FrameStart = '$'
	FrameEnd   = '#'
)

// Grammar prefixes
const (
	ExtendedPrefix = "$RR4W,"
	LegacyTag      = "4WD,"
)

// Extended grammar opcodes, matched against the first three characters of a
// segment. Segments shorter than four characters are rejected outright.
const (
	opCamera = "CAM"
	opFan    = "FAN"
	opFront  = "FRT"
	opLed    = "LED"
	opMotor  = "MTR"

	minSegmentLen = 4
)

// Legacy positional body layout. The body must be at least positionalLen
// characters; only the offsets below carry meaning, the rest are reserved.
const (
	positionalLen = 17

	offDirection  = 1
	offSpin       = 2
	offHorn       = 4
	offSpeedDelta = 6
	offServo      = 8
	offLed        = 12
	offFan        = 14
	offFrontReset = 16
)

// Session speed handling
const (
	// DefaultSpeed is the drive speed a fresh decoder starts with.
	DefaultSpeed int8 = 25
	// speedStep is the increment applied by speed-delta and MTR A/D commands.
	speedStep int8 = 10
	// maxSpeed bounds the session speed and all per-motor speeds.
	maxSpeed int8 = 100
)

// Servo angles
const (
	centerAngle uint8 = 90
)

// Alert and stop-command timing
const (
	// alertBeep is the buzzer length of one alert cycle and the pause
	// before the next cycle starts.
	alertBeep = 200 * time.Millisecond
	// stopBeep is the long beep played when a stop or unknown mode code
	// brakes the drive.
	stopBeep = time.Second
)

// Fan blow durations for the extended FAN segment
const (
	fanOffBlow = 10 * time.Millisecond
	fanOnBlow  = 10 * time.Second
)

// defaultBrightness is used by single-channel LED segments that omit the
// brightness argument, matching the lights driver default.
const defaultBrightness uint8 = 50
