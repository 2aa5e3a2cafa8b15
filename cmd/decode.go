// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package cmd

import (
	"fmt"
	"time"

	"github.com/Oxidized-Robots/go-rpi-4wd-car/pkg/hardware"
	"github.com/Oxidized-Robots/go-rpi-4wd-car/pkg/rr4c"
	"github.com/spf13/cobra"
)

var decodeGrammar string

var decodeCmd = &cobra.Command{
	Use:   "decode <frame>...",
	Short: "Decode frames given on the command line",
	Long: `Decode one or more frames and print the session state each leaves behind.

Useful for checking what a frame does before sending it to a live robot:

  rr4c decode '$4WD,PTZ135#'
  rr4c decode -g extended '$RR4W,MTRA,LEDC3#'

Decoding stops at the first frame that fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeGrammar, "grammar", "g", "legacy", "Wire grammar: legacy or extended")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	motors := hardware.NewMotors()
	servos := hardware.NewServos()
	// Alerts run instantly; a one-shot decode should not sit in beep pauses.
	noSleep := rr4c.WithSleep(func(d time.Duration) {})
	hids := hardware.NewHumanInterface(hardware.WithSleep(func(d time.Duration) {}))
	decoder, err := rr4c.New(motors, servos, hids, noSleep)
	if err != nil {
		return err
	}

	for _, frame := range args {
		if err := decodeFrame(decoder, decodeGrammar, frame); err != nil {
			return fmt.Errorf("%s: %w", frame, err)
		}
		left, right := motors.Speeds()
		fmt.Printf("%s\n", frame)
		fmt.Printf("  mode=%s speed=%d motors=(%d,%d)\n", decoder.Mode(), decoder.Speed(), left, right)
		fmt.Printf("  front=%d° pan=%d° tilt=%d° led=%d lights=%v fan=%v\n",
			servos.Front(), servos.CameraPan(), servos.CameraTilt(),
			decoder.LedColor(), hids.State(), hids.FanOn())
	}
	return nil
}
