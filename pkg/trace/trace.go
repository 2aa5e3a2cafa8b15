// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

// Package trace records decoded command frames as a CBOR event stream for
// later replay and analysis.
package trace

import (
	"errors"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Event is one decoded frame together with the session state after it was
// applied. Err is empty for frames that decoded cleanly.
type Event struct {
	Time    time.Time `cbor:"1,keyasint"`
	Grammar string    `cbor:"2,keyasint"`
	Frame   string    `cbor:"3,keyasint"`
	Err     string    `cbor:"4,keyasint,omitempty"`
	Mode    string    `cbor:"5,keyasint"`
	Speed   int8      `cbor:"6,keyasint"`
	Led     uint8     `cbor:"7,keyasint"`
}

// Recorder appends events to a CBOR stream.
type Recorder struct {
	enc *cbor.Encoder
}

// NewRecorder wraps w in a streaming recorder.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: cbor.NewEncoder(w)}
}

// Record appends one event to the stream.
func (r *Recorder) Record(ev Event) error {
	return r.enc.Encode(ev)
}

// ReadAll decodes a recorded stream back into its events.
func ReadAll(r io.Reader) ([]Event, error) {
	dec := cbor.NewDecoder(r)
	var events []Event
	for {
		var ev Event
		if err := dec.Decode(&ev); err != nil {
			if errors.Is(err, io.EOF) {
				return events, nil
			}
			return events, err
		}
		events = append(events, ev)
	}
}
