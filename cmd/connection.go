// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Oxidized-Robots/go-rpi-4wd-car/pkg/config"
	"go.bug.st/serial"
	"golang.org/x/term"
)

// FrameSource delivers one command frame per call. The decoder is fed
// exactly one frame at a time; the source owns delimiting.
type FrameSource interface {
	// Next returns the next frame, or io.EOF when the source is drained.
	Next() (string, error)
	io.Closer
}

// lineSource reads newline-delimited frames from any reader. Blank lines
// are skipped; in script mode //-prefixed comment lines are skipped too.
type lineSource struct {
	scanner  *bufio.Scanner
	closer   io.Closer
	comments bool
}

func (l *lineSource) Next() (string, error) {
	for l.scanner.Scan() {
		line := strings.TrimSpace(l.scanner.Text())
		if line == "" {
			continue
		}
		if l.comments && strings.HasPrefix(line, "//") {
			continue
		}
		return line, nil
	}
	if err := l.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (l *lineSource) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// OpenSerialSource opens a serial port delivering line-delimited frames.
func OpenSerialSource(portName string, baudRate int) (FrameSource, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %v", portName, err)
	}

	return &lineSource{scanner: bufio.NewScanner(port), closer: port}, nil
}

// OpenScriptSource opens a frame script file, one frame per line.
func OpenScriptSource(path string) (FrameSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &lineSource{scanner: bufio.NewScanner(f), closer: f, comments: true}, nil
}

// OpenStdinSource reads frames from standard input. When stdin is a
// terminal a short usage note is printed so an operator knows what to type.
func OpenStdinSource() FrameSource {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Reading frames from stdin, one per line (e.g. $4WD,PTZ90#). Ctrl+D to exit.")
	}
	return &lineSource{scanner: bufio.NewScanner(os.Stdin)}
}

// OpenFrameSource opens the source selected by the configuration: script
// file, serial port, or stdin in that order of preference.
func OpenFrameSource(cfg config.Config) (FrameSource, string, error) {
	if cfg.Script != "" {
		src, err := OpenScriptSource(cfg.Script)
		if err != nil {
			return nil, "", err
		}
		return src, fmt.Sprintf("Script: %s", cfg.Script), nil
	}
	if cfg.Port != "" {
		src, err := OpenSerialSource(cfg.Port, cfg.Baud)
		if err != nil {
			return nil, "", err
		}
		return src, fmt.Sprintf("Serial: %s @ %d baud", cfg.Port, cfg.Baud), nil
	}
	return OpenStdinSource(), "Stdin", nil
}
