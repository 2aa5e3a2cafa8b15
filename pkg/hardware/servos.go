// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package hardware

// Servo geometry shared by all three servos.
const (
	MaxAngle    uint8 = 180
	CenterAngle uint8 = 90
	// ServoStep is the distance one directional helper call moves.
	ServoStep uint8 = 10
)

// Servos models the front steering servo and the camera pan/tilt gimbal.
type Servos struct {
	front   uint8
	pan     uint8
	tilt    uint8
	running bool
}

// NewServos returns an uninitialized servo bank; call Init before use.
func NewServos() *Servos {
	return &Servos{}
}

// Init centers all three servos and starts driving them.
func (s *Servos) Init() error {
	s.front, s.pan, s.tilt = CenterAngle, CenterAngle, CenterAngle
	s.running = true
	return nil
}

// Stop releases the servo outputs. Positions are retained.
func (s *Servos) Stop() error {
	s.running = false
	return nil
}

// Running reports whether the servo outputs are being driven.
func (s *Servos) Running() bool {
	return s.running
}

// SetFront positions the steering servo, clamped to 0..180.
func (s *Servos) SetFront(angle uint8) error {
	s.front = clampAngle(angle)
	return nil
}

// CenterFront returns the steering servo to straight ahead.
func (s *Servos) CenterFront() error { return s.SetFront(CenterAngle) }

// FrontLeft steers one step left.
func (s *Servos) FrontLeft() error { return s.SetFront(stepUp(s.front)) }

// FrontRight steers one step right.
func (s *Servos) FrontRight() error { return s.SetFront(stepDown(s.front)) }

// Front returns the current steering angle.
func (s *Servos) Front() uint8 { return s.front }

// SetCameraPan positions the camera pan servo, clamped to 0..180.
func (s *Servos) SetCameraPan(angle uint8) error {
	s.pan = clampAngle(angle)
	return nil
}

// CenterCameraPan returns the pan servo to its default position.
func (s *Servos) CenterCameraPan() error { return s.SetCameraPan(CenterAngle) }

// CameraPanLeft pans one step left.
func (s *Servos) CameraPanLeft() error { return s.SetCameraPan(stepUp(s.pan)) }

// CameraPanRight pans one step right.
func (s *Servos) CameraPanRight() error { return s.SetCameraPan(stepDown(s.pan)) }

// CameraPan returns the current pan angle.
func (s *Servos) CameraPan() uint8 { return s.pan }

// SetCameraTilt positions the camera tilt servo, clamped to 0..180.
func (s *Servos) SetCameraTilt(angle uint8) error {
	s.tilt = clampAngle(angle)
	return nil
}

// CenterCameraTilt returns the tilt servo to its default position.
func (s *Servos) CenterCameraTilt() error { return s.SetCameraTilt(CenterAngle) }

// CameraTiltUp tilts one step up.
func (s *Servos) CameraTiltUp() error { return s.SetCameraTilt(stepUp(s.tilt)) }

// CameraTiltDown tilts one step down.
func (s *Servos) CameraTiltDown() error { return s.SetCameraTilt(stepDown(s.tilt)) }

// CameraTilt returns the current tilt angle.
func (s *Servos) CameraTilt() uint8 { return s.tilt }

func clampAngle(v uint8) uint8 {
	return min(v, MaxAngle)
}

func stepUp(v uint8) uint8 {
	if v > MaxAngle-ServoStep {
		return MaxAngle
	}
	return v + ServoStep
}

func stepDown(v uint8) uint8 {
	if v < ServoStep {
		return 0
	}
	return v - ServoStep
}
