// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package rr4c

import (
	"fmt"
	"testing"
	"time"
)

// Recording fakes for the actuator collaborators. Every call is appended to
// a shared journal so tests can assert both the calls made and their order
// across collaborators.

type journal struct {
	calls []string
}

func (j *journal) add(format string, args ...interface{}) {
	j.calls = append(j.calls, fmt.Sprintf(format, args...))
}

// since returns the calls recorded after the first n.
func (j *journal) since(n int) []string {
	return j.calls[n:]
}

type fakeMotors struct {
	j           *journal
	left, right int8
	enabled     bool
	err         error
}

func (f *fakeMotors) Movement(left, right int8) error {
	f.j.add("movement(%d,%d)", left, right)
	if f.err != nil {
		return f.err
	}
	f.left, f.right = left, right
	return nil
}

func (f *fakeMotors) Brake() error {
	f.j.add("brake")
	f.left, f.right = 0, 0
	return f.err
}

func (f *fakeMotors) Enable(on bool) {
	f.j.add("enable(%v)", on)
	f.enabled = on
}

func (f *fakeMotors) Speeds() (int8, int8) {
	return f.left, f.right
}

type fakeServos struct {
	j                *journal
	front, pan, tilt uint8
}

func (f *fakeServos) Init() error {
	f.j.add("init")
	f.front, f.pan, f.tilt = 90, 90, 90
	return nil
}

func (f *fakeServos) Stop() error {
	f.j.add("stop")
	return nil
}

func (f *fakeServos) SetFront(angle uint8) error {
	f.j.add("setFront(%d)", angle)
	f.front = angle
	return nil
}

func (f *fakeServos) CenterFront() error {
	f.j.add("centerFront")
	f.front = 90
	return nil
}

func (f *fakeServos) FrontLeft() error {
	f.j.add("frontLeft")
	f.front += 10
	return nil
}

func (f *fakeServos) FrontRight() error {
	f.j.add("frontRight")
	f.front -= 10
	return nil
}

func (f *fakeServos) SetCameraPan(angle uint8) error {
	f.j.add("setPan(%d)", angle)
	f.pan = angle
	return nil
}

func (f *fakeServos) CenterCameraPan() error {
	f.j.add("centerPan")
	f.pan = 90
	return nil
}

func (f *fakeServos) CameraPanLeft() error {
	f.j.add("panLeft")
	f.pan += 10
	return nil
}

func (f *fakeServos) CameraPanRight() error {
	f.j.add("panRight")
	f.pan -= 10
	return nil
}

func (f *fakeServos) SetCameraTilt(angle uint8) error {
	f.j.add("setTilt(%d)", angle)
	f.tilt = angle
	return nil
}

func (f *fakeServos) CenterCameraTilt() error {
	f.j.add("centerTilt")
	f.tilt = 90
	return nil
}

func (f *fakeServos) CameraTiltUp() error {
	f.j.add("tiltUp")
	f.tilt += 10
	return nil
}

func (f *fakeServos) CameraTiltDown() error {
	f.j.add("tiltDown")
	f.tilt -= 10
	return nil
}

type fakeHids struct {
	j     *journal
	r     uint8
	g     uint8
	b     uint8
	color uint8
	fan   bool
}

func (f *fakeHids) Lights(red, green, blue uint8) error {
	f.j.add("lights(%d,%d,%d)", red, green, blue)
	f.r, f.g, f.b = red, green, blue
	return nil
}

func (f *fakeHids) SetRed(pct uint8) error {
	f.j.add("setRed(%d)", pct)
	f.r = pct
	return nil
}

func (f *fakeHids) SetGreen(pct uint8) error {
	f.j.add("setGreen(%d)", pct)
	f.g = pct
	return nil
}

func (f *fakeHids) SetBlue(pct uint8) error {
	f.j.add("setBlue(%d)", pct)
	f.b = pct
	return nil
}

func (f *fakeHids) SetColor(index uint8) error {
	f.j.add("setColor(%d)", index)
	f.color = index
	return nil
}

func (f *fakeHids) Beep(d time.Duration) {
	f.j.add("beep(%s)", d)
}

func (f *fakeHids) Whistle() {
	f.j.add("whistle")
}

func (f *fakeHids) Blow(d time.Duration) {
	f.j.add("blow(%s)", d)
}

func (f *fakeHids) ToggleFan() error {
	f.j.add("toggleFan")
	f.fan = !f.fan
	return nil
}

type fakeHooks struct {
	invoked []string
}

func (f *fakeHooks) Tracking() error        { f.invoked = append(f.invoked, "tracking"); return nil }
func (f *fakeHooks) UltrasonicAvoid() error { f.invoked = append(f.invoked, "avoid"); return nil }
func (f *fakeHooks) LedColors() error       { f.invoked = append(f.invoked, "ledColors"); return nil }
func (f *fakeHooks) LightSeeking() error    { f.invoked = append(f.invoked, "lightSeeking"); return nil }
func (f *fakeHooks) InfraredFollow() error  { f.invoked = append(f.invoked, "infrared"); return nil }

// testRig bundles a decoder with its fakes. The journal starts after servo
// init so tests see only the calls their frames caused.
type testRig struct {
	d      *Decoder
	j      *journal
	motors *fakeMotors
	servos *fakeServos
	hids   *fakeHids
	hooks  *fakeHooks
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	j := &journal{}
	motors := &fakeMotors{j: j, enabled: true}
	servos := &fakeServos{j: j}
	hids := &fakeHids{j: j}
	hooks := &fakeHooks{}
	d, err := New(motors, servos, hids,
		WithSleep(func(time.Duration) {}),
		WithModeHooks(hooks),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	j.calls = nil
	return &testRig{d: d, j: j, motors: motors, servos: servos, hids: hids, hooks: hooks}
}

// wantKind asserts err is a CommandError of the given kind carrying input.
func wantKind(t *testing.T, err error, kind ErrorKind, input string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	ce, ok := err.(*CommandError)
	if !ok {
		t.Fatalf("expected CommandError, got %T: %v", err, err)
	}
	if ce.Kind != kind {
		t.Errorf("error kind = %s, want %s", ce.Kind, kind)
	}
	if ce.Input != input {
		t.Errorf("error input = %q, want %q", ce.Input, input)
	}
}

func wantCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (all: %v)", i, got[i], want[i], got)
		}
	}
}
