// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package hardware

import "time"

// RGB holds light channel levels as percentages 0..100.
type RGB struct {
	R, G, B uint8
}

// Palette is the fixed preset color table addressed by SetColor. Indexes
// past the end clamp to the last entry.
var Palette = [8]RGB{
	{0, 0, 0},       // off
	{100, 0, 0},     // red
	{0, 100, 0},     // green
	{0, 0, 100},     // blue
	{100, 100, 0},   // yellow
	{0, 100, 100},   // cyan
	{100, 0, 100},   // magenta
	{100, 100, 100}, // white
}

// Timing limits for the buzzer and fan.
const (
	maxBlow     = 60 * time.Second
	whistleBeep = 100 * time.Millisecond
)

// HumanInterface models the RGB light module, the buzzer, and the fan.
// Beep, Whistle, and Blow block for the duration of the sound or fan run
// through the configured sleep function.
type HumanInterface struct {
	sleep func(time.Duration)

	lights   RGB
	color    uint8
	fanOn    bool
	beeps    int
	whistles int
}

// HidOption configures a HumanInterface at construction time.
type HidOption func(*HumanInterface)

// WithSleep replaces the blocking pause used by timed operations. Tests
// pass a no-op to run beeps and fan blows instantly.
func WithSleep(sleep func(time.Duration)) HidOption {
	return func(h *HumanInterface) { h.sleep = sleep }
}

// NewHumanInterface returns a dark, silent board with the fan off.
func NewHumanInterface(opts ...HidOption) *HumanInterface {
	h := &HumanInterface{sleep: time.Sleep}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Lights sets all three channels in one call, each clamped to 100.
func (h *HumanInterface) Lights(red, green, blue uint8) error {
	h.lights = RGB{R: clampPct(red), G: clampPct(green), B: clampPct(blue)}
	return nil
}

// SetRed sets the red channel only.
func (h *HumanInterface) SetRed(pct uint8) error {
	h.lights.R = clampPct(pct)
	return nil
}

// SetGreen sets the green channel only.
func (h *HumanInterface) SetGreen(pct uint8) error {
	h.lights.G = clampPct(pct)
	return nil
}

// SetBlue sets the blue channel only.
func (h *HumanInterface) SetBlue(pct uint8) error {
	h.lights.B = clampPct(pct)
	return nil
}

// SetColor selects a palette preset. The index clamps to the table size.
func (h *HumanInterface) SetColor(index uint8) error {
	if index >= uint8(len(Palette)) {
		index = uint8(len(Palette)) - 1
	}
	h.color = index
	h.lights = Palette[index]
	return nil
}

// State returns the current light levels.
func (h *HumanInterface) State() RGB { return h.lights }

// ColorIndex returns the last palette index applied through SetColor.
func (h *HumanInterface) ColorIndex() uint8 { return h.color }

// Beep sounds the buzzer for the given duration.
func (h *HumanInterface) Beep(d time.Duration) {
	h.beeps++
	h.sleep(d)
}

// Whistle sounds the short fixed horn beep.
func (h *HumanInterface) Whistle() {
	h.whistles++
	h.sleep(whistleBeep)
}

// Beeps returns the number of Beep calls since construction.
func (h *HumanInterface) Beeps() int { return h.beeps }

// Whistles returns the number of Whistle calls since construction.
func (h *HumanInterface) Whistles() int { return h.whistles }

// Blow runs the fan for the given duration, capped at one minute, and
// leaves it off.
func (h *HumanInterface) Blow(d time.Duration) {
	if d < 0 {
		d = -d
	}
	h.fanOn = true
	h.sleep(min(d, maxBlow))
	h.fanOn = false
}

// ToggleFan flips the fan state.
func (h *HumanInterface) ToggleFan() error {
	h.fanOn = !h.fanOn
	return nil
}

// FanOn reports whether the fan is running.
func (h *HumanInterface) FanOn() bool { return h.fanOn }

// KeyPress blocks until the on-board key is pressed and debounced. The
// state model has no key, so it returns immediately; it is not part of the
// decoder contract.
func (h *HumanInterface) KeyPress() {}

func clampPct(v uint8) uint8 {
	return min(v, 100)
}
