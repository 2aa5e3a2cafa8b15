// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package rr4c

// Mode represents the robot's operating mode.
type Mode int

// Operating mode values. Remote is the initial and fallback mode; the
// others are entered only through legacy MODE commands.
const (
	ModeRemote Mode = iota
	ModeTracking
	ModeUltrasonicAvoid
	ModeLedColors
	ModeLightSeeking
	ModeInfraredFollow
)

var modeNames = map[Mode]string{
	ModeRemote:          "remote",
	ModeTracking:        "tracking",
	ModeUltrasonicAvoid: "ultrasonic-avoid",
	ModeLedColors:       "led-colors",
	ModeLightSeeking:    "light-seeking",
	ModeInfraredFollow:  "infrared-follow",
}

// String returns the mode name used in logs and traces.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// alertCycles returns the number of flash/beep cycles the mode-change alert
// plays for this mode.
func (m Mode) alertCycles() uint8 {
	switch m {
	case ModeTracking:
		return 2
	case ModeUltrasonicAvoid:
		return 3
	case ModeLedColors:
		return 4
	case ModeLightSeeking:
		return 5
	case ModeInfraredFollow:
		return 6
	default:
		return 1
	}
}

// ModeHooks is the extension point invoked after a mode-change alert for the
// non-remote modes. The reference system leaves these behaviors
// unimplemented; implementations typically drive the robot from its sensor
// suite until the next mode command arrives.
type ModeHooks interface {
	Tracking() error
	UltrasonicAvoid() error
	LedColors() error
	LightSeeking() error
	InfraredFollow() error
}

// nopHooks is the default: entering a mode succeeds and does nothing until
// an operator wires real behaviors in.
type nopHooks struct{}

func (nopHooks) Tracking() error        { return nil }
func (nopHooks) UltrasonicAvoid() error { return nil }
func (nopHooks) LedColors() error       { return nil }
func (nopHooks) LightSeeking() error    { return nil }
func (nopHooks) InfraredFollow() error  { return nil }
