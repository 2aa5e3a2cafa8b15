// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package rr4c

import "strings"

// DecodeLegacy decodes one legacy-grammar frame: $ body #. The body is
// either a tagged single command (4WD, prefix followed by PTZ, CLR/CLG/CLB,
// or MODE) or a fixed-field positional body of digits.
//
// Positional fields are evaluated in a fixed order with effects committed
// immediately; a later field error does not undo earlier effects. A
// malformed outer frame forces the decoder back to remote mode.
func (d *Decoder) DecodeLegacy(line string) error {
	if !strings.HasPrefix(line, string(FrameStart)) || !strings.HasSuffix(line, string(FrameEnd)) {
		d.mode = ModeRemote
		return badCommand(line)
	}
	body := line[1 : len(line)-1]
	if tagged, ok := strings.CutPrefix(body, LegacyTag); ok {
		return d.decodeTagged(tagged)
	}
	return d.decodePositional(body)
}

// decodeTagged handles the 4WD,-prefixed single commands.
func (d *Decoder) decodeTagged(body string) error {
	switch {
	case strings.HasPrefix(body, "PTZ"):
		angle, err := parseUint8(body[3:], body)
		if err != nil {
			return err
		}
		return d.servos.SetFront(angle)
	case strings.HasPrefix(body, "CLR"):
		return d.decodeColor(body)
	case strings.HasPrefix(body, "MODE"):
		return d.decodeMode(body[4:])
	default:
		return unknownCommand(body)
	}
}

// decodeColor handles CLR<r>,CLG<g>,CLB<b>. Channel values are 0..255 and
// are rescaled to the 0..100 percentages the lights driver takes; all three
// channels go out in a single call.
func (d *Decoder) decodeColor(body string) error {
	rest := body[3:]
	idxG := strings.Index(rest, ",CLG")
	if idxG < 0 {
		return badCommand(body)
	}
	idxB := strings.Index(rest, ",CLB")
	if idxB < idxG+4 {
		return badCommand(body)
	}
	red, err := parseUint8(rest[:idxG], body)
	if err != nil {
		return err
	}
	green, err := parseUint8(rest[idxG+4:idxB], body)
	if err != nil {
		return err
	}
	blue, err := parseUint8(rest[idxB+4:], body)
	if err != nil {
		return err
	}
	return d.hids.Lights(scaleColor(red), scaleColor(green), scaleColor(blue))
}

// scaleColor rescales a 0..255 channel value to a 0..100 percentage with
// integer truncation.
func scaleColor(v uint8) uint8 {
	return uint8(100 * int(v) / 255)
}

// decodeMode is the mode state machine. Stop codes and unknown codes brake
// the drive and fall back to remote mode with a red flash; valid codes
// switch the mode, play the mode's alert, and invoke its behavior hook.
func (d *Decoder) decodeMode(code string) error {
	switch code {
	case "00", "10", "20", "30", "40", "50", "60":
		return d.stopAlert()
	case "11":
		d.mode = ModeRemote
		return d.alert()
	case "21":
		d.mode = ModeTracking
		if err := d.alert(); err != nil {
			return err
		}
		return d.hooks.Tracking()
	case "31":
		d.mode = ModeUltrasonicAvoid
		if err := d.alert(); err != nil {
			return err
		}
		return d.hooks.UltrasonicAvoid()
	case "41":
		d.mode = ModeLedColors
		if err := d.alert(); err != nil {
			return err
		}
		return d.hooks.LedColors()
	case "51":
		d.mode = ModeLightSeeking
		if err := d.alert(); err != nil {
			return err
		}
		return d.hooks.LightSeeking()
	case "61":
		d.mode = ModeInfraredFollow
		if err := d.alert(); err != nil {
			return err
		}
		return d.hooks.InfraredFollow()
	default:
		if err := d.stopAlert(); err != nil {
			return err
		}
		return &CommandError{Kind: KindUnknownModeCommand, Input: code}
	}
}

// decodePositional handles the fixed-field body. Fields are parsed and
// applied one at a time in the documented evaluation order, so the speed
// delta lands before the direction field reads the session speed and an
// invalid later field leaves earlier effects in place.
func (d *Decoder) decodePositional(body string) error {
	if len(body) < positionalLen {
		return &CommandError{Kind: KindIncompleteCommand, Input: body}
	}
	fields := []func(string) (command, error){
		parseSpeedDeltaField,
		parseDriveField,
		parseHornField,
		parseServoField,
		parseFrontResetField,
		parseLedField,
		parseFanField,
	}
	for _, parse := range fields {
		cmd, err := parse(body)
		if err != nil {
			return err
		}
		if cmd == nil {
			continue
		}
		if err := cmd.apply(d); err != nil {
			return err
		}
	}
	return nil
}

// speedDelta adjusts the session speed, clamped to 0..100.
type speedDelta struct{ up bool }

func (s speedDelta) apply(d *Decoder) error {
	if s.up {
		d.motorSpeed = min(d.motorSpeed+speedStep, maxSpeed)
	} else {
		d.motorSpeed = max(d.motorSpeed-speedStep, 0)
	}
	return nil
}

func parseSpeedDeltaField(body string) (command, error) {
	switch body[offSpeedDelta] {
	case '0':
		return nil, nil
	case '1':
		return speedDelta{up: true}, nil
	case '2':
		return speedDelta{}, nil
	default:
		return nil, unknownByte(KindUnknownMotorSpeedCommand, body[offSpeedDelta])
	}
}

// drive moves both sides using multiples of the session speed, or brakes.
type drive struct {
	brake       bool
	left, right int8 // session speed multipliers, -1..1
}

func (dr drive) apply(d *Decoder) error {
	if dr.brake {
		return d.motors.Brake()
	}
	return d.motors.Movement(dr.left*d.motorSpeed, dr.right*d.motorSpeed)
}

func parseDriveField(body string) (command, error) {
	switch body[offSpin] {
	case '0':
		switch body[offDirection] {
		case '0':
			return drive{brake: true}, nil
		case '1':
			return drive{left: 1, right: 1}, nil
		case '2':
			return drive{left: -1, right: -1}, nil
		case '3':
			return drive{left: 0, right: 1}, nil
		case '4':
			return drive{left: 1, right: 0}, nil
		case '5':
			return drive{left: 0, right: -1}, nil
		case '6':
			return drive{left: -1, right: 0}, nil
		default:
			return nil, unknownByte(KindUnknownMotorCommand, body[offDirection])
		}
	case '1':
		return drive{left: -1, right: 1}, nil
	case '2':
		return drive{left: 1, right: -1}, nil
	default:
		return nil, unknownByte(KindUnknownSpinCommand, body[offSpin])
	}
}

type horn struct{}

func (horn) apply(d *Decoder) error {
	d.hids.Whistle()
	return nil
}

func parseHornField(body string) (command, error) {
	if body[offHorn] == '1' {
		return horn{}, nil
	}
	return nil, nil
}

func parseServoField(body string) (command, error) {
	switch body[offServo] {
	case '0':
		return nil, nil
	case '1':
		return frontStep{left: true}, nil
	case '2':
		return frontStep{}, nil
	case '3':
		return camTiltStep{up: true}, nil
	case '4':
		return camTiltStep{}, nil
	case '5':
		return camTiltSet{angle: centerAngle}, nil
	case '6':
		return camPanStep{left: true}, nil
	case '7':
		return camPanStep{}, nil
	case '8':
		return camPanSet{angle: centerAngle}, nil
	case '9':
		return frontSet{angle: centerAngle}, nil
	default:
		return nil, unknownByte(KindUnknownServoCommand, body[offServo])
	}
}

func parseFrontResetField(body string) (command, error) {
	if body[offFrontReset] == '1' {
		return frontSet{angle: centerAngle}, nil
	}
	return nil, nil
}

// ledSelect updates the tracked palette index and pushes it to the lights.
// An increment is not clamped against the palette size; the stored index
// wraps only at the uint8 boundary.
type ledSelect struct {
	increment bool
	index     uint8
}

func (l ledSelect) apply(d *Decoder) error {
	if l.increment {
		d.ledColor++
	} else {
		d.ledColor = l.index
	}
	return d.hids.SetColor(d.ledColor)
}

func parseLedField(body string) (command, error) {
	switch ch := body[offLed]; ch {
	case '0', '8':
		return ledSelect{index: 0}, nil
	case '1':
		return ledSelect{increment: true}, nil
	case '2', '3', '4', '5', '6', '7':
		return ledSelect{index: ch - '0'}, nil
	default:
		return nil, unknownByte(KindUnknownLedCommand, ch)
	}
}

func parseFanField(body string) (command, error) {
	if body[offFan] == '1' {
		return fanToggle{}, nil
	}
	return nil, nil
}
