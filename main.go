// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots
//
// rr4c - command and control for a Raspberry Pi 4WD robot.
//
// Decodes textual command frames from a serial line, a script file, or
// stdin and drives the robot's actuators.

package main

import (
	"fmt"
	"os"

	"github.com/Oxidized-Robots/go-rpi-4wd-car/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
