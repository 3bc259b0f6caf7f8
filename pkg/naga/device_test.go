// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"
	"time"
)

// fakeTransport is a scripted Transport for driving the sequencer. By
// default it echoes the last written frame back with status 0; the respond
// hook overrides the response per exchange.
type fakeTransport struct {
	writes      [][]byte
	reads       int
	failWriteAt int // 1-based index of the write to fail, 0 means never
	respond     func(exchange int, written []byte) ([]byte, error)
	closed      bool
}

func (f *fakeTransport) Write(request uint8, value uint16, data []byte) error {
	if f.failWriteAt > 0 && len(f.writes)+1 == f.failWriteAt {
		return &TransportError{Op: "write", Request: request, Value: value,
			Err: errors.New("scripted failure")}
	}
	f.writes = append(f.writes, append([]byte(nil), data...))
	return nil
}

func (f *fakeTransport) Read(request uint8, value uint16, size int) ([]byte, error) {
	f.reads++
	last := f.writes[len(f.writes)-1]
	if f.respond != nil {
		return f.respond(f.reads, last)
	}
	return append([]byte(nil), last...), nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

// firmwareResponse builds a device answer to the firmware query.
func firmwareResponse(version uint16) []byte {
	var values [ValueCount]byte
	binary.BigEndian.PutUint16(values[0:2], version)
	return EncodeFrame(CommandGetFirmware, RequestGetFirmware, values)
}

// silenceProbeDelay removes the real inter-attempt sleep from the firmware
// probe for the duration of a test, recording simulated sleep time.
func silenceProbeDelay(t *testing.T, slept *time.Duration) {
	t.Helper()
	saved := firmwareProbeRetries
	firmwareProbeRetries.sleep = func(d time.Duration) {
		if slept != nil {
			*slept += d
		}
	}
	t.Cleanup(func() { firmwareProbeRetries = saved })
}

func discardLogger() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

func TestOpen_InitSequence(t *testing.T) {
	silenceProbeDelay(t, nil)

	tr := &fakeTransport{}
	tr.respond = func(exchange int, written []byte) ([]byte, error) {
		f := DecodeFrame(written)
		if f.Command == CommandGetFirmware {
			if exchange == 1 {
				// Firmware not ready on the first poke.
				return firmwareResponse(0x0000), nil
			}
			return firmwareResponse(0x0105), nil
		}
		return append([]byte(nil), written...), nil
	}

	d, err := Open(tr, ModelClassic, discardLogger())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if d.FirmwareVersion() != 0x0105 {
		t.Errorf("firmware version: expected 0x0105, got 0x%04X", d.FirmwareVersion())
	}
	if d.SuggestFirmwareUpgrade() {
		t.Error("no upgrade advisory expected for a Classic")
	}
	if d.Dirty() {
		t.Error("session should be clean after the forced initial commit")
	}
	if d.Claimed() {
		t.Error("claim must be released after initialization")
	}

	// Two probe exchanges, then the forced commit: resolution, two LEDs
	// (thumb grid is unsupported on a Classic), frequency.
	if len(tr.writes) != 6 {
		t.Fatalf("expected 6 writes (2 probe + 4 commit), got %d", len(tr.writes))
	}
	commit := tr.writes[2:]
	wantOps := []string{"SET_RESOLUTION", "SET_LED", "SET_LED", "SET_FREQUENCY"}
	for i, frame := range commit {
		f := DecodeFrame(frame)
		if op := FormatOperation(f.Command, f.Request); op != wantOps[i] {
			t.Errorf("commit frame %d: expected %s, got %s", i, wantOps[i], op)
		}
	}

	// Defaults: 1000 DPI legacy encoding on both axes, both LEDs on, 1000 Hz.
	res := DecodeFrame(commit[0])
	if res.Values[0] != 36 || res.Values[1] != 36 {
		t.Errorf("default resolution bytes: expected 36 36, got %d %d", res.Values[0], res.Values[1])
	}
	for i := 1; i <= 2; i++ {
		if f := DecodeFrame(commit[i]); f.Values[2] != 1 {
			t.Errorf("LED frame %d: expected on (1), got %d", i, f.Values[2])
		}
	}
	if f := DecodeFrame(commit[3]); f.Values[0] != 1 {
		t.Errorf("frequency byte: expected 1, got %d", f.Values[0])
	}
}

func TestOpen_EpicFirmwareAdvisory(t *testing.T) {
	silenceProbeDelay(t, nil)

	var logs bytes.Buffer
	tr := &fakeTransport{}
	tr.respond = func(exchange int, written []byte) ([]byte, error) {
		if DecodeFrame(written).Command == CommandGetFirmware {
			return firmwareResponse(0x0103), nil
		}
		return append([]byte(nil), written...), nil
	}

	d, err := Open(tr, ModelEpic, log.New(&logs, "", 0))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !d.SuggestFirmwareUpgrade() {
		t.Error("firmware 1.03 on an Epic should suggest an upgrade")
	}
	if !strings.Contains(logs.String(), "1.04") {
		t.Errorf("advisory log should mention 1.04, got %q", logs.String())
	}
}

func TestProbe_ExhaustionIsFatal(t *testing.T) {
	var slept time.Duration
	silenceProbeDelay(t, &slept)

	tr := &fakeTransport{}
	tr.respond = func(exchange int, written []byte) ([]byte, error) {
		// High byte always zero: never a valid version.
		return firmwareResponse(0x0000), nil
	}

	_, err := Open(tr, ModelClassic, discardLogger())
	if !errors.Is(err, ErrDeviceNotResponding) {
		t.Fatalf("expected ErrDeviceNotResponding, got %v", err)
	}
	if len(tr.writes) != 5 {
		t.Errorf("expected exactly 5 probe attempts, got %d", len(tr.writes))
	}
	if slept < 1000*time.Millisecond {
		t.Errorf("expected at least 1000ms of inter-attempt delay, got %v", slept)
	}
}

func TestSetters_RequireClaim(t *testing.T) {
	d := newDevice(&fakeTransport{}, ModelClassic, discardLogger())
	d.dirty = false

	if err := d.SetFrequency(Freq500); !errors.Is(err, ErrBusy) {
		t.Errorf("SetFrequency on unclaimed device: expected ErrBusy, got %v", err)
	}
	if err := d.SetLED(LEDScrollwheel, LEDOff); !errors.Is(err, ErrBusy) {
		t.Errorf("SetLED on unclaimed device: expected ErrBusy, got %v", err)
	}
	if err := d.SetResolution(AxisX, 800); !errors.Is(err, ErrBusy) {
		t.Errorf("SetResolution on unclaimed device: expected ErrBusy, got %v", err)
	}
	if err := d.Commit(false); !errors.Is(err, ErrBusy) {
		t.Errorf("Commit on unclaimed device: expected ErrBusy, got %v", err)
	}
	if d.Dirty() {
		t.Error("rejected mutations must not dirty the session")
	}
}

func TestSetLED_InvalidArguments(t *testing.T) {
	d := newDevice(&fakeTransport{}, ModelClassic, discardLogger())
	d.Claim()
	d.dirty = false

	before := d.leds

	tests := []struct {
		name  string
		id    LEDID
		state LEDState
	}{
		{"unsupported LED", LEDThumbGrid, LEDOn},
		{"out of range id", LEDID(7), LEDOn},
		{"negative id", LEDID(-1), LEDOff},
		{"unsupported as target state", LEDScrollwheel, LEDUnsupported},
		{"arbitrary state value", LEDScrollwheel, LEDState(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := d.SetLED(tt.id, tt.state); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}

	if d.leds != before {
		t.Error("failed toggles must leave all LED states unchanged")
	}
	if d.Dirty() {
		t.Error("failed toggles must not dirty the session")
	}
}

func TestSetResolution_InvalidArguments(t *testing.T) {
	d := newDevice(&fakeTransport{}, ModelClassic, discardLogger())
	d.Claim()
	d.dirty = false

	tests := []struct {
		name string
		axis Axis
		res  Resolution
	}{
		{"scroll axis", AxisScroll, 800},
		{"unknown axis", Axis(5), 800},
		{"zero resolution", AxisX, 0},
		{"not a table step", AxisX, 850},
		{"beyond legacy range", AxisY, 5700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := d.SetResolution(tt.axis, tt.res); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}

	if d.Resolution(AxisX) != 1000 || d.Resolution(AxisY) != 1000 {
		t.Error("failed setters must leave the cursors unchanged")
	}
	if d.Dirty() {
		t.Error("failed setters must not dirty the session")
	}
}

func TestCommit_CleanIsNoop(t *testing.T) {
	tr := &fakeTransport{}
	d := newDevice(tr, ModelClassic, discardLogger())
	d.Claim()
	d.dirty = false

	if err := d.Commit(false); err != nil {
		t.Fatalf("clean commit failed: %v", err)
	}
	if len(tr.writes) != 0 {
		t.Errorf("clean non-forced commit must not send frames, sent %d", len(tr.writes))
	}

	if err := d.Commit(true); err != nil {
		t.Fatalf("forced commit failed: %v", err)
	}
	if len(tr.writes) != 4 {
		t.Errorf("forced commit must run the full sequence, sent %d frames", len(tr.writes))
	}
}

func TestCommit_FrequencyMapping(t *testing.T) {
	tests := []struct {
		freq Frequency
		code uint8
	}{
		{Freq125, 8},
		{Freq500, 2},
		{Freq1000, 1},
		{FreqUnknown, 1},
	}

	for _, tt := range tests {
		t.Run(tt.freq.String(), func(t *testing.T) {
			tr := &fakeTransport{}
			d := newDevice(tr, ModelClassic, discardLogger())
			d.Claim()
			d.freq = tt.freq

			if err := d.Commit(false); err != nil {
				t.Fatalf("commit failed: %v", err)
			}
			last := DecodeFrame(tr.writes[len(tr.writes)-1])
			if last.Command != CommandSetFrequency {
				t.Fatalf("last frame is %04X, expected the frequency frame", last.Command)
			}
			if last.Values[0] != tt.code {
				t.Errorf("frequency byte: expected %d, got %d", tt.code, last.Values[0])
			}
		})
	}
}

func TestCommit_InvalidFrequencySendsNoFrequencyFrame(t *testing.T) {
	tr := &fakeTransport{}
	d := newDevice(tr, ModelClassic, discardLogger())
	d.Claim()
	d.freq = Frequency(250)

	err := d.Commit(false)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	for _, frame := range tr.writes {
		if DecodeFrame(frame).Command == CommandSetFrequency {
			t.Error("no frequency frame may be sent for an out-of-domain frequency")
		}
	}
	if !d.Dirty() {
		t.Error("failed commit must leave the session dirty")
	}
}

func TestCommit_TransportFailureKeepsStateIntact(t *testing.T) {
	tr := &fakeTransport{failWriteAt: 2} // first LED frame
	d := newDevice(tr, ModelClassic, discardLogger())
	d.Claim()

	if err := d.SetResolution(AxisX, 800); err != nil {
		t.Fatalf("SetResolution failed: %v", err)
	}
	if err := d.SetLED(LEDGlowingLogo, LEDOff); err != nil {
		t.Fatalf("SetLED failed: %v", err)
	}

	type snapshot struct {
		freq       Frequency
		leds       [ledCount]LEDState
		curX, curY int
	}
	before := snapshot{d.freq, d.leds, d.curX, d.curY}

	err := d.Commit(false)
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected a *TransportError, got %v", err)
	}
	if !d.Dirty() {
		t.Error("failed commit must leave the dirty flag set")
	}
	if after := (snapshot{d.freq, d.leds, d.curX, d.curY}); after != before {
		t.Errorf("staged configuration changed across a failed commit:\nbefore %+v\nafter  %+v", before, after)
	}

	// A later commit retries the entire sequence from the first frame.
	tr.failWriteAt = 0
	sent := len(tr.writes)
	if err := d.Commit(false); err != nil {
		t.Fatalf("retry commit failed: %v", err)
	}
	if got := len(tr.writes) - sent; got != 4 {
		t.Errorf("retry must resend the full sequence, sent %d frames", got)
	}
	if first := DecodeFrame(tr.writes[sent]); FormatOperation(first.Command, first.Request) != "SET_RESOLUTION" {
		t.Error("retry must restart with the resolution frame")
	}
	if d.Dirty() {
		t.Error("successful retry must clear the dirty flag")
	}
}

func TestCommit_AnomalousStatusIsNonFatal(t *testing.T) {
	var logs bytes.Buffer
	tr := &fakeTransport{}
	tr.respond = func(exchange int, written []byte) ([]byte, error) {
		resp := append([]byte(nil), written...)
		resp[0] = 0x05 // outside the known-normal set
		return resp, nil
	}

	d := newDevice(tr, ModelClassic, log.New(&logs, "", 0))
	d.Claim()

	if err := d.Commit(false); err != nil {
		t.Fatalf("anomalous status must not fail the commit: %v", err)
	}
	if d.Dirty() {
		t.Error("commit should have cleared the dirty flag")
	}
	if !strings.Contains(logs.String(), "status 05") {
		t.Errorf("anomaly should be logged, got %q", logs.String())
	}
}

func TestCommit_EndToEndExtended(t *testing.T) {
	tr := &fakeTransport{}
	d := newDevice(tr, Model2014, discardLogger())
	// Exercise the two-LED shape of the sequence.
	d.leds[LEDThumbGrid] = LEDUnsupported
	d.Claim()

	if err := d.SetResolution(AxisX, 800); err != nil {
		t.Fatalf("SetResolution X: %v", err)
	}
	if err := d.SetResolution(AxisY, 1600); err != nil {
		t.Fatalf("SetResolution Y: %v", err)
	}
	if err := d.SetLED(LEDScrollwheel, LEDOn); err != nil {
		t.Fatalf("SetLED scrollwheel: %v", err)
	}
	if err := d.SetLED(LEDGlowingLogo, LEDOn); err != nil {
		t.Fatalf("SetLED logo: %v", err)
	}
	if err := d.SetFrequency(Freq1000); err != nil {
		t.Fatalf("SetFrequency: %v", err)
	}
	if !d.Dirty() {
		t.Fatal("session should be dirty before commit")
	}

	if err := d.Commit(false); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if d.Dirty() {
		t.Error("session should be clean after commit")
	}

	if len(tr.writes) != 4 {
		t.Fatalf("expected exactly 4 frames, got %d", len(tr.writes))
	}

	res := DecodeFrame(tr.writes[0])
	if res.Command != CommandSetResolutionExtended || res.Request != RequestSetResolutionExtended {
		t.Errorf("frame 0: expected the extended resolution frame, got %04X/%04X", res.Command, res.Request)
	}
	wantValues := [ValueCount]byte{0x00, 0x03, 0x20, 0x06, 0x40} // X=800, Y=1600
	if res.Values != wantValues {
		t.Errorf("resolution values: expected % 02X, got % 02X", wantValues[:], res.Values[:])
	}

	for i := 1; i <= 2; i++ {
		f := DecodeFrame(tr.writes[i])
		if f.Command != CommandSetLED || f.Request != RequestSetLED {
			t.Errorf("frame %d: expected an LED frame, got %04X/%04X", i, f.Command, f.Request)
		}
		if f.Values[2] != 1 {
			t.Errorf("frame %d: LED should be on, third value byte is %d", i, f.Values[2])
		}
	}

	freq := DecodeFrame(tr.writes[3])
	if freq.Command != CommandSetFrequency || freq.Request != RequestSetFrequency {
		t.Errorf("frame 3: expected the frequency frame, got %04X/%04X", freq.Command, freq.Request)
	}
	if freq.Values[0] != 1 {
		t.Errorf("frequency byte: expected 1, got %d", freq.Values[0])
	}
}

func TestLEDs_FreshOrderedList(t *testing.T) {
	d := newDevice(&fakeTransport{}, Model2014, discardLogger())

	leds := d.LEDs()
	if len(leds) != 3 {
		t.Fatalf("a 2014 has 3 LEDs, got %d", len(leds))
	}
	for i, led := range leds {
		if led.ID != LEDID(i) {
			t.Errorf("LEDs must be in ascending id order: position %d holds id %d", i, led.ID)
		}
	}

	// The returned slice is caller-owned: mutating it must not touch the
	// staged state.
	leds[0].State = LEDOff
	if d.leds[LEDScrollwheel] != LEDOn {
		t.Error("mutating the returned LED list leaked into the session state")
	}

	classic := newDevice(&fakeTransport{}, ModelClassic, discardLogger())
	if got := classic.LEDs(); len(got) != 2 {
		t.Errorf("a Classic enumerates 2 LEDs, got %d", len(got))
	}
	for _, led := range classic.LEDs() {
		if led.ID == LEDThumbGrid {
			t.Error("unsupported LEDs must be excluded from the list")
		}
	}
}

func TestEnumerationSurfaces(t *testing.T) {
	d := newDevice(&fakeTransport{}, ModelClassic, discardLogger())

	freqs := d.SupportedFrequencies()
	want := []Frequency{Freq125, Freq500, Freq1000}
	if fmt.Sprint(freqs) != fmt.Sprint(want) {
		t.Errorf("supported frequencies: expected %v, got %v", want, freqs)
	}

	res := d.SupportedResolutions()
	if len(res) != 56 {
		t.Errorf("a Classic supports 56 resolutions, got %d", len(res))
	}
	res[0] = 9999
	if d.table[0] != 100 {
		t.Error("SupportedResolutions must return a copy")
	}

	axes := d.Axes()
	if len(axes) != 3 {
		t.Fatalf("expected 3 axes, got %d", len(axes))
	}
	if !axes[0].IndependentMapping || !axes[1].IndependentMapping || axes[2].IndependentMapping {
		t.Error("X and Y have independent mappings, Scroll does not")
	}
}
