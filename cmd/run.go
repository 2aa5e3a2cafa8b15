// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package cmd

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/Oxidized-Robots/go-rpi-4wd-car/pkg/config"
	"github.com/Oxidized-Robots/go-rpi-4wd-car/pkg/hardware"
	"github.com/Oxidized-Robots/go-rpi-4wd-car/pkg/rr4c"
	"github.com/Oxidized-Robots/go-rpi-4wd-car/pkg/trace"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	runGrammar string
	runRecord  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Decode frames from the configured source and drive the robot",
	Long: `Continuously read command frames and dispatch them to the actuators.

Each frame is logged with its outcome and the session state it left behind
(mode, drive speed, LED index). Decode errors are logged and the loop keeps
reading; the transport stays up until the source is drained or interrupted.

With --record, every frame is also appended to a CBOR session trace that
can be replayed or analyzed later.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runGrammar, "grammar", "g", "", "Wire grammar: legacy or extended")
	runCmd.Flags().StringVarP(&runRecord, "record", "r", "", "Write CBOR session trace to file")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("grammar") {
		cfg.Grammar = runGrammar
	}
	if cmd.Flags().Changed("record") {
		cfg.Record = runRecord
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	src, srcInfo, err := OpenFrameSource(cfg)
	if err != nil {
		return err
	}
	defer src.Close()

	var recorder *trace.Recorder
	if cfg.Record != "" {
		f, err := os.Create(cfg.Record)
		if err != nil {
			return err
		}
		defer f.Close()
		recorder = trace.NewRecorder(f)
	}

	motors := hardware.NewMotors()
	servos := hardware.NewServos()
	hids := hardware.NewHumanInterface()
	decoder, err := rr4c.New(motors, servos, hids)
	if err != nil {
		return err
	}

	log.Info().Str("source", srcInfo).Str("grammar", cfg.Grammar).Msg("decoding frames")

	for {
		frame, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Info().Msg("frame source drained")
				return nil
			}
			return err
		}

		decodeErr := decodeFrame(decoder, cfg.Grammar, frame)
		left, right := motors.Speeds()
		ev := log.Info()
		if decodeErr != nil {
			ev = log.Warn().Err(decodeErr)
		}
		ev.Str("frame", frame).
			Stringer("mode", decoder.Mode()).
			Int8("speed", decoder.Speed()).
			Int8("left", left).
			Int8("right", right).
			Uint8("led", decoder.LedColor()).
			Msg("frame")

		if recorder != nil {
			errText := ""
			if decodeErr != nil {
				errText = decodeErr.Error()
			}
			rec := trace.Event{
				Time:    time.Now(),
				Grammar: cfg.Grammar,
				Frame:   frame,
				Err:     errText,
				Mode:    decoder.Mode().String(),
				Speed:   decoder.Speed(),
				Led:     decoder.LedColor(),
			}
			if err := recorder.Record(rec); err != nil {
				return err
			}
		}
	}
}

// decodeFrame routes one frame to the entry point for the selected grammar.
func decodeFrame(d *rr4c.Decoder, grammar, frame string) error {
	if grammar == config.GrammarExtended {
		return d.DecodeExtended(frame)
	}
	return d.DecodeLegacy(frame)
}
