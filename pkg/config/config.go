// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

// Package config loads the rr4c tool configuration from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Grammar selector values accepted in the config file and on the command
// line.
const (
	GrammarLegacy   = "legacy"
	GrammarExtended = "extended"
)

// Config holds the tool settings. Command-line flags override any field.
type Config struct {
	// Port is the serial device to read frames from.
	Port string `toml:"port"`
	// Baud is the serial line rate.
	Baud int `toml:"baud"`
	// Grammar selects which wire grammar the transport speaks.
	Grammar string `toml:"grammar"`
	// Script is a file of frames to decode instead of a live transport.
	Script string `toml:"script"`
	// Record is a file to write the CBOR session trace to.
	Record string `toml:"record"`
}

// Default returns the built-in settings used when no file is given.
func Default() Config {
	return Config{
		Baud:    115200,
		Grammar: GrammarLegacy,
	}
}

// Load reads path into a Config on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that have a closed set of choices.
func (c Config) Validate() error {
	switch c.Grammar {
	case GrammarLegacy, GrammarExtended:
	default:
		return fmt.Errorf("invalid grammar %q (use %s or %s)", c.Grammar, GrammarLegacy, GrammarExtended)
	}
	if c.Baud <= 0 {
		return fmt.Errorf("invalid baud rate %d", c.Baud)
	}
	return nil
}
