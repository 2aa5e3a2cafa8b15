// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package cmd

import (
	"github.com/Oxidized-Robots/go-rpi-4wd-car/pkg/config"
	"github.com/spf13/cobra"
)

var (
	configPath string

	// Transport flags, overriding the config file
	portName   string
	baudRate   int
	scriptPath string
)

var rootCmd = &cobra.Command{
	Use:   "rr4c",
	Short: "RR4C robot command and control",
	Long: `rr4c - Command and control for a Raspberry Pi 4WD robot.

Decodes textual command frames and drives the robot's actuators: drive
motors, steering and camera servos, lights, buzzer, and fan. Two wire
grammars are supported: the legacy Yahboom grammar and the extended RR4W
grammar.

Frame sources:
  Serial:  --port /dev/ttyUSB0 [--baud 115200]
  Script:  --script frames.txt (one frame per line, // comments)
  Stdin:   default when neither --port nor --script is given`,
	Version: "1.0.0",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate (serial only)")
	rootCmd.PersistentFlags().StringVarP(&scriptPath, "script", "s", "", "Frame script file")
}

// loadConfig merges the config file with any transport flags set on the
// command line; flags win.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = portName
	}
	if flags.Changed("baud") {
		cfg.Baud = baudRate
	}
	if flags.Changed("script") {
		cfg.Script = scriptPath
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
