// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package rr4c

import "fmt"

// ErrorKind identifies the category of a command decoding failure.
type ErrorKind int

const (
	// KindBadCommand marks a malformed frame or segment.
	KindBadCommand ErrorKind = iota
	// KindBadCommandValue marks an un-parseable numeric argument.
	KindBadCommandValue
	// KindIncompleteCommand marks a positional body shorter than the
	// fixed field layout requires.
	KindIncompleteCommand
	// KindUnknownCommand marks an unrecognized opcode or tag.
	KindUnknownCommand
	KindUnknownModeCommand
	KindUnknownMotorCommand
	KindUnknownMotorSpeedCommand
	KindUnknownServoCommand
	KindUnknownSpinCommand
	KindUnknownLedCommand
)

var kindNames = map[ErrorKind]string{
	KindBadCommand:               "bad command",
	KindBadCommandValue:          "bad command value",
	KindIncompleteCommand:        "incomplete command",
	KindUnknownCommand:           "unknown command",
	KindUnknownModeCommand:       "unknown mode command",
	KindUnknownMotorCommand:      "unknown motor command",
	KindUnknownMotorSpeedCommand: "unknown motor speed command",
	KindUnknownServoCommand:      "unknown servo command",
	KindUnknownSpinCommand:       "unknown spin command",
	KindUnknownLedCommand:        "unknown LED command",
}

// String returns the human-readable name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// CommandError is a decoding failure carrying the offending input text.
// Hardware I/O failures from actuator calls are not wrapped in CommandError;
// they pass through to the caller unchanged.
type CommandError struct {
	Kind  ErrorKind
	Input string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Input)
}

func badCommand(input string) error {
	return &CommandError{Kind: KindBadCommand, Input: input}
}

func badValue(input string) error {
	return &CommandError{Kind: KindBadCommandValue, Input: input}
}

func unknownCommand(input string) error {
	return &CommandError{Kind: KindUnknownCommand, Input: input}
}

// unknownByte builds a category-specific error for a single unexpected
// character in the positional body.
func unknownByte(kind ErrorKind, ch byte) error {
	return &CommandError{Kind: kind, Input: string(ch)}
}

// KindOf returns the ErrorKind of err and true when err is a CommandError.
func KindOf(err error) (ErrorKind, bool) {
	if ce, ok := err.(*CommandError); ok {
		return ce.Kind, true
	}
	return 0, false
}
