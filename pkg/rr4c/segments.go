// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package rr4c

import (
	"strconv"
	"strings"
	"time"
)

// command is one parsed frame segment or positional field, ready to be
// dispatched against the decoder's collaborators. Parsing is side-effect
// free; all actuator calls happen in apply.
type command interface {
	apply(d *Decoder) error
}

// parseSegment parses one extended-grammar segment. The opcode is the first
// three characters; callers have already enforced the minimum length.
func parseSegment(piece string) (command, error) {
	switch piece[:3] {
	case opCamera:
		return parseCamera(piece)
	case opFan:
		return parseFan(piece)
	case opFront:
		return parseFront(piece)
	case opLed:
		return parseLed(piece)
	case opMotor:
		return parseMotor(piece)
	default:
		return nil, unknownCommand(piece)
	}
}

// parseUint8 parses an unsigned argument, reporting the whole segment on
// failure.
func parseUint8(arg, piece string) (uint8, error) {
	v, err := strconv.ParseUint(arg, 10, 8)
	if err != nil {
		return 0, badValue(piece)
	}
	return uint8(v), nil
}

func parseInt8(arg, piece string) (int8, error) {
	v, err := strconv.ParseInt(arg, 10, 8)
	if err != nil {
		return 0, badValue(piece)
	}
	return int8(v), nil
}

func parseUint8List(args, piece string) ([]uint8, error) {
	parts := strings.Split(args, ":")
	vals := make([]uint8, 0, len(parts))
	for _, part := range parts {
		v, err := parseUint8(part, piece)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parseInt8List(args, piece string) ([]int8, error) {
	parts := strings.Split(args, ":")
	vals := make([]int8, 0, len(parts))
	for _, part := range parts {
		v, err := parseInt8(part, piece)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// Camera commands

type camCenter struct{}

func (camCenter) apply(d *Decoder) error {
	if err := d.servos.CenterCameraPan(); err != nil {
		return err
	}
	return d.servos.CenterCameraTilt()
}

type camPanStep struct{ left bool }

func (c camPanStep) apply(d *Decoder) error {
	if c.left {
		return d.servos.CameraPanLeft()
	}
	return d.servos.CameraPanRight()
}

type camTiltStep struct{ up bool }

func (c camTiltStep) apply(d *Decoder) error {
	if c.up {
		return d.servos.CameraTiltUp()
	}
	return d.servos.CameraTiltDown()
}

type camPanSet struct {
	center bool
	angle  uint8
}

func (c camPanSet) apply(d *Decoder) error {
	if c.center {
		return d.servos.CenterCameraPan()
	}
	return d.servos.SetCameraPan(c.angle)
}

type camTiltSet struct {
	center bool
	angle  uint8
}

func (c camTiltSet) apply(d *Decoder) error {
	if c.center {
		return d.servos.CenterCameraTilt()
	}
	return d.servos.SetCameraTilt(c.angle)
}

type camBoth struct{ pan, tilt uint8 }

func (c camBoth) apply(d *Decoder) error {
	if err := d.servos.SetCameraPan(c.pan); err != nil {
		return err
	}
	return d.servos.SetCameraTilt(c.tilt)
}

func parseCamera(piece string) (command, error) {
	sel, rest := piece[3], piece[4:]
	switch sel {
	case 'I':
		return camCenter{}, nil
	case 'P':
		switch rest {
		case "":
			return camPanSet{center: true}, nil
		case "L":
			return camPanStep{left: true}, nil
		case "R":
			return camPanStep{}, nil
		}
		angle, err := parseUint8(rest, piece)
		if err != nil {
			return nil, err
		}
		return camPanSet{angle: angle}, nil
	case 'T':
		switch rest {
		case "":
			return camTiltSet{center: true}, nil
		case "U":
			return camTiltStep{up: true}, nil
		case "D":
			return camTiltStep{}, nil
		}
		angle, err := parseUint8(rest, piece)
		if err != nil {
			return nil, err
		}
		return camTiltSet{angle: angle}, nil
	default:
		// Colon-separated angle list: one value drives both axes, two
		// values drive pan then tilt.
		vals, err := parseUint8List(rest, piece)
		if err != nil {
			return nil, err
		}
		switch len(vals) {
		case 1:
			return camBoth{pan: vals[0], tilt: vals[0]}, nil
		case 2:
			return camBoth{pan: vals[0], tilt: vals[1]}, nil
		default:
			return nil, badValue(piece)
		}
	}
}

// Fan commands

type fanToggle struct{}

func (fanToggle) apply(d *Decoder) error { return d.hids.ToggleFan() }

type fanBlow struct{ d time.Duration }

func (f fanBlow) apply(d *Decoder) error {
	d.hids.Blow(f.d)
	return nil
}

func parseFan(piece string) (command, error) {
	switch piece[3] {
	case 'T':
		return fanToggle{}, nil
	case '0':
		return fanBlow{d: fanOffBlow}, nil
	case '1':
		return fanBlow{d: fanOnBlow}, nil
	default:
		return nil, badValue(piece)
	}
}

// Front steering commands

type frontCenter struct{}

func (frontCenter) apply(d *Decoder) error { return d.servos.CenterFront() }

type frontStep struct{ left bool }

func (f frontStep) apply(d *Decoder) error {
	if f.left {
		return d.servos.FrontLeft()
	}
	return d.servos.FrontRight()
}

type frontSet struct{ angle uint8 }

func (f frontSet) apply(d *Decoder) error { return d.servos.SetFront(f.angle) }

func parseFront(piece string) (command, error) {
	switch piece[3] {
	case 'I':
		return frontCenter{}, nil
	case 'L':
		return frontStep{left: true}, nil
	case 'R':
		return frontStep{}, nil
	default:
		angle, err := parseUint8(strings.TrimPrefix(piece[3:], ":"), piece)
		if err != nil {
			return nil, err
		}
		return frontSet{angle: angle}, nil
	}
}

// LED commands

type ledChannel struct {
	channel byte
	pct     uint8
}

func (l ledChannel) apply(d *Decoder) error {
	switch l.channel {
	case 'R':
		return d.hids.SetRed(l.pct)
	case 'G':
		return d.hids.SetGreen(l.pct)
	default:
		return d.hids.SetBlue(l.pct)
	}
}

type ledPalette struct{ index uint8 }

func (l ledPalette) apply(d *Decoder) error { return d.hids.SetColor(l.index) }

type ledLevels struct{ r, g, b uint8 }

func (l ledLevels) apply(d *Decoder) error { return d.hids.Lights(l.r, l.g, l.b) }

func parseLed(piece string) (command, error) {
	sel, rest := piece[3], piece[4:]
	switch sel {
	case 'B', 'G', 'R':
		pct := defaultBrightness
		if arg := strings.TrimPrefix(rest, ":"); arg != "" {
			var err error
			pct, err = parseUint8(arg, piece)
			if err != nil {
				return nil, err
			}
		}
		return ledChannel{channel: sel, pct: pct}, nil
	case 'C':
		// Exactly one digit position is allowed for the palette index.
		if len(piece) != minSegmentLen+1 {
			return nil, badValue(piece)
		}
		index, err := parseUint8(rest, piece)
		if err != nil {
			return nil, err
		}
		return ledPalette{index: index}, nil
	default:
		// Colon-separated levels: one value is grayscale, three set the
		// channels independently.
		vals, err := parseUint8List(rest, piece)
		if err != nil {
			return nil, err
		}
		switch len(vals) {
		case 1:
			return ledLevels{r: vals[0], g: vals[0], b: vals[0]}, nil
		case 3:
			return ledLevels{r: vals[0], g: vals[1], b: vals[2]}, nil
		default:
			return nil, badValue(piece)
		}
	}
}

// Motor commands

type mtrAccel struct{}

func (mtrAccel) apply(d *Decoder) error {
	d.motorSpeed = min(d.motorSpeed+speedStep, maxSpeed)
	left, right := d.motors.Speeds()
	return d.motors.Movement(accelerate(left), accelerate(right))
}

type mtrDecel struct{}

func (mtrDecel) apply(d *Decoder) error {
	d.motorSpeed = max(d.motorSpeed-speedStep, speedStep)
	left, right := d.motors.Speeds()
	return d.motors.Movement(decelerate(left), decelerate(right))
}

// accelerate pushes a side speed one step further from zero, clamped to the
// full range. A stopped side starts moving forward.
func accelerate(v int8) int8 {
	switch {
	case v > 0:
		return min(v+speedStep, maxSpeed)
	case v < 0:
		return max(v-speedStep, -maxSpeed)
	default:
		return speedStep
	}
}

// decelerate pulls a side speed one step toward zero but keeps a moving
// side moving at least one step.
func decelerate(v int8) int8 {
	switch {
	case v > 0:
		return max(v-speedStep, speedStep)
	case v < 0:
		return min(v+speedStep, -speedStep)
	default:
		return 0
	}
}

type mtrEnable struct{ on bool }

func (m mtrEnable) apply(d *Decoder) error {
	d.motors.Enable(m.on)
	return nil
}

type mtrSide struct {
	right    bool
	speed    int8
	hasSpeed bool
}

func (m mtrSide) apply(d *Decoder) error {
	speed := m.speed
	if !m.hasSpeed {
		speed = d.motorSpeed
	}
	if m.right {
		return d.motors.Movement(0, speed)
	}
	return d.motors.Movement(speed, 0)
}

type mtrSpin struct {
	right    bool
	speed    int8
	hasSpeed bool
}

func (m mtrSpin) apply(d *Decoder) error {
	speed := m.speed
	if !m.hasSpeed {
		speed = d.motorSpeed
	}
	if m.right {
		return d.motors.Movement(speed, -speed)
	}
	return d.motors.Movement(-speed, speed)
}

type mtrPair struct {
	left, right int8
	enable      int8
	hasEnable   bool
	piece       string
}

func (m mtrPair) apply(d *Decoder) error {
	if err := d.motors.Movement(m.left, m.right); err != nil {
		return err
	}
	if m.hasEnable {
		// Validated after the movement is issued; an out-of-range flag
		// leaves the new speeds applied.
		if m.enable != 0 && m.enable != 1 {
			return badValue(m.piece)
		}
		d.motors.Enable(m.enable == 1)
	}
	return nil
}

func parseMotor(piece string) (command, error) {
	sel, rest := piece[3], piece[4:]
	switch sel {
	case 'A':
		return mtrAccel{}, nil
	case 'D':
		return mtrDecel{}, nil
	case 'E':
		switch rest {
		case "0":
			return mtrEnable{}, nil
		case "1":
			return mtrEnable{on: true}, nil
		default:
			return nil, badValue(piece)
		}
	case 'L', 'R':
		if rest == "" {
			return mtrSide{right: sel == 'R'}, nil
		}
		speed, err := parseInt8(rest, piece)
		if err != nil {
			return nil, err
		}
		return mtrSide{right: sel == 'R', speed: speed, hasSpeed: true}, nil
	case 'S':
		if rest == "" {
			return nil, badCommand(piece)
		}
		var dir byte
		dir, rest = rest[0], rest[1:]
		if dir != 'L' && dir != 'R' {
			return nil, badCommand(piece)
		}
		if rest == "" {
			return mtrSpin{right: dir == 'R'}, nil
		}
		speed, err := parseInt8(rest, piece)
		if err != nil {
			return nil, err
		}
		return mtrSpin{right: dir == 'R', speed: speed, hasSpeed: true}, nil
	default:
		// Colon-separated list: one value is an enable flag, two are
		// left/right speeds, three are speeds plus enable flag.
		vals, err := parseInt8List(rest, piece)
		if err != nil {
			return nil, err
		}
		switch len(vals) {
		case 1:
			if vals[0] != 0 && vals[0] != 1 {
				return nil, badValue(piece)
			}
			return mtrEnable{on: vals[0] == 1}, nil
		case 2:
			return mtrPair{left: vals[0], right: vals[1]}, nil
		case 3:
			return mtrPair{
				left:      vals[0],
				right:     vals[1],
				enable:    vals[2],
				hasEnable: true,
				piece:     piece,
			}, nil
		default:
			return nil, badValue(piece)
		}
	}
}
