// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package rr4c

import (
	"strings"
	"time"
)

// Decoder turns command frames into actuator calls and tracks session state
// between frames. It owns its collaborators and is not safe for concurrent
// use; the transport layer must deliver one frame at a time.
type Decoder struct {
	motors Motors
	servos Servos
	hids   HumanInterface
	hooks  ModeHooks
	sleep  func(time.Duration)

	mode       Mode
	motorSpeed int8
	ledColor   uint8
}

// Option configures a Decoder at construction time.
type Option func(*Decoder)

// WithSleep replaces the pause between alert cycles. Tests pass a no-op to
// run alerts without real delays.
func WithSleep(sleep func(time.Duration)) Option {
	return func(d *Decoder) { d.sleep = sleep }
}

// WithModeHooks installs the behaviors invoked when a non-remote mode is
// entered. Without this option mode entry succeeds and does nothing.
func WithModeHooks(hooks ModeHooks) Option {
	return func(d *Decoder) { d.hooks = hooks }
}

// New creates a Decoder in remote mode with the default drive speed and
// initializes the servos to their center positions.
func New(motors Motors, servos Servos, hids HumanInterface, opts ...Option) (*Decoder, error) {
	d := &Decoder{
		motors:     motors,
		servos:     servos,
		hids:       hids,
		hooks:      nopHooks{},
		sleep:      time.Sleep,
		mode:       ModeRemote,
		motorSpeed: DefaultSpeed,
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := servos.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Mode returns the current operating mode.
func (d *Decoder) Mode() Mode { return d.mode }

// Speed returns the current default drive speed.
func (d *Decoder) Speed() int8 { return d.motorSpeed }

// LedColor returns the current LED palette index.
func (d *Decoder) LedColor() uint8 { return d.ledColor }

// DecodeExtended decodes one extended-grammar frame: $RR4W, followed by
// comma-separated opcode segments, closed by #.
//
// Segments are processed left to right. The first segment to fail parsing
// or dispatch aborts the rest of the frame, but effects already issued for
// earlier segments stand; there is no rollback. A malformed outer frame
// forces the decoder back to remote mode.
func (d *Decoder) DecodeExtended(line string) error {
	content, ok := strings.CutPrefix(line, ExtendedPrefix)
	if ok {
		content, ok = strings.CutSuffix(content, string(FrameEnd))
	}
	if !ok {
		d.mode = ModeRemote
		return badCommand(line)
	}
	for _, piece := range splitSegments(content) {
		if len(piece) < minSegmentLen {
			return unknownCommand(piece)
		}
		cmd, err := parseSegment(piece)
		if err != nil {
			return err
		}
		if err := cmd.apply(d); err != nil {
			return err
		}
	}
	return nil
}

// splitSegments splits the frame content on commas, dropping the empty
// element a trailing comma would otherwise produce.
func splitSegments(content string) []string {
	if content == "" {
		return nil
	}
	pieces := strings.Split(content, ",")
	if last := len(pieces) - 1; pieces[last] == "" {
		pieces = pieces[:last]
	}
	return pieces
}

// alert plays the blocking mode-change alert: one flash/beep cycle per
// alertCycles of the current mode, walking the LED palette from index 0.
func (d *Decoder) alert() error {
	count := d.mode.alertCycles()
	for i := uint8(0); i < count; i++ {
		if err := d.hids.SetColor(i); err != nil {
			return err
		}
		d.hids.Beep(alertBeep)
		if err := d.hids.Lights(0, 0, 0); err != nil {
			return err
		}
		d.sleep(alertBeep)
	}
	return nil
}

// stopAlert brakes the drive and plays the red-flash-and-beep sequence used
// by stop codes and rejected mode commands, leaving the lights off.
func (d *Decoder) stopAlert() error {
	if err := d.motors.Brake(); err != nil {
		return err
	}
	d.mode = ModeRemote
	if err := d.hids.Lights(100, 0, 0); err != nil {
		return err
	}
	d.hids.Beep(stopBeep)
	return d.hids.Lights(0, 0, 0)
}
