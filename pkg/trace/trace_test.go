// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Oxidized Robots

package trace

import (
	"bytes"
	"testing"
	"time"
)

func TestRecordAndReadAll(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)

	events := []Event{
		{
			Time:    time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
			Grammar: "legacy",
			Frame:   "$4WD,PTZ90#",
			Mode:    "remote",
			Speed:   25,
		},
		{
			Time:    time.Date(2026, 8, 23, 10, 0, 1, 0, time.UTC),
			Grammar: "legacy",
			Frame:   "$4WD,MODE99#",
			Err:     `unknown mode command: "99"`,
			Mode:    "remote",
			Speed:   25,
			Led:     3,
		},
	}
	for _, ev := range events {
		if err := rec.Record(ev); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := ReadAll(&buf)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("read %d events, want %d", len(got), len(events))
	}
	for i, ev := range events {
		if !got[i].Time.Equal(ev.Time) {
			t.Errorf("event %d time = %v, want %v", i, got[i].Time, ev.Time)
		}
		got[i].Time = ev.Time
		if got[i] != ev {
			t.Errorf("event %d = %+v, want %+v", i, got[i], ev)
		}
	}
}

func TestReadAllEmptyStream(t *testing.T) {
	events, err := ReadAll(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("events = %v, want none", events)
	}
}

func TestReadAllTruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)
	if err := rec.Record(Event{Grammar: "extended", Frame: "$RR4W,FRTI#", Mode: "remote"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	data := buf.Bytes()
	if _, err := ReadAll(bytes.NewReader(data[:len(data)-2])); err == nil {
		t.Fatal("expected an error for a truncated stream")
	}
}
