// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

import (
	"encoding/binary"
	"fmt"
	"log"
)

// Device is one control session with a Naga. It stages configuration in
// memory and pushes it to the hardware as an ordered frame sequence on
// Commit. All mutation and every commit require an active claim; the session
// is single-threaded by contract, so there is no internal locking.
type Device struct {
	tr     Transport
	logger *log.Logger

	model   Model
	variant Variant

	fwVersion      uint16
	suggestUpgrade bool

	table      []Resolution
	curX, curY int // resolution table cursors, one per axis

	freq Frequency
	leds [ledCount]LEDState

	dirty  bool
	claims int
}

// Open builds a device session over the transport and runs the
// initialization sequence of the hardware: claim, firmware probe, default
// configuration, forced commit, release. A probe or commit failure aborts
// initialization with the claim released.
func Open(tr Transport, model Model, logger *log.Logger) (*Device, error) {
	d := newDevice(tr, model, logger)

	d.Claim()
	defer d.Release()

	version, err := d.probeFirmware()
	if err != nil {
		return nil, err
	}
	d.fwVersion = version

	if model == ModelEpic && version < epicFirmwareMinimum {
		d.suggestUpgrade = true
		d.logf("naga: firmware %d.%02d of this Naga Epic has known bugs, upgrade to 1.04 or later",
			FirmwareMajor(version), FirmwareMinor(version))
	}

	if err := d.Commit(true); err != nil {
		return nil, fmt.Errorf("initial commit: %w", err)
	}
	return d, nil
}

// newDevice builds the in-memory session with the model's default
// configuration. The session starts dirty; Open pushes the defaults with a
// forced commit.
func newDevice(tr Transport, model Model, logger *log.Logger) *Device {
	d := &Device{
		tr:      tr,
		logger:  logger,
		model:   model,
		variant: model.Variant(),
		table:   ResolutionTable(model.Variant()),
		freq:    Freq1000,
		dirty:   true,
	}

	// Default resolution is 1000 DPI on both axes.
	d.curX = 1000/100 - 1
	d.curY = d.curX

	d.leds[LEDScrollwheel] = LEDOn
	d.leds[LEDGlowingLogo] = LEDOn
	if model.hasThumbGrid() {
		d.leds[LEDThumbGrid] = LEDOn
	} else {
		d.leds[LEDThumbGrid] = LEDUnsupported
	}
	return d
}

// Claim takes exclusive session ownership of the control interface. Claims
// nest; every Claim needs a matching Release.
func (d *Device) Claim() {
	d.claims++
}

// Release drops one claim.
func (d *Device) Release() {
	if d.claims > 0 {
		d.claims--
	}
}

// Claimed reports whether the session currently holds a claim.
func (d *Device) Claimed() bool {
	return d.claims > 0
}

// Close releases the underlying transport.
func (d *Device) Close() error {
	return d.tr.Close()
}

// Model returns the hardware model of the session.
func (d *Device) Model() Model {
	return d.model
}

// Variant returns the resolution encoding generation in use.
func (d *Device) Variant() Variant {
	return d.variant
}

// FirmwareVersion returns the probed 16-bit firmware version.
func (d *Device) FirmwareVersion() uint16 {
	return d.fwVersion
}

// SuggestFirmwareUpgrade reports whether the probed firmware is one with
// known bugs (Naga Epic before 1.04).
func (d *Device) SuggestFirmwareUpgrade() bool {
	return d.suggestUpgrade
}

// Dirty reports whether any setter ran since the last successful commit.
func (d *Device) Dirty() bool {
	return d.dirty
}

// Frequency returns the staged scan frequency.
func (d *Device) Frequency() Frequency {
	return d.freq
}

// SetFrequency stages a new scan frequency. The value is validated when the
// frequency frame is built at commit, matching the hardware's own ordering.
func (d *Device) SetFrequency(f Frequency) error {
	if !d.Claimed() {
		return ErrBusy
	}
	d.freq = f
	d.dirty = true
	return nil
}

// LEDs returns the enumerable LEDs of this model in ascending id order.
// Unsupported LEDs are excluded. The slice is freshly built and owned by the
// caller.
func (d *Device) LEDs() []LED {
	leds := make([]LED, 0, ledCount)
	for id := LEDID(0); id < ledCount; id++ {
		if d.leds[id] == LEDUnsupported {
			continue
		}
		leds = append(leds, LED{
			ID:       id,
			Name:     ledTable[id].name,
			State:    d.leds[id],
			selector: ledTable[id].selector,
		})
	}
	return leds
}

// SetLED stages an LED state. Unsupported LEDs and states other than on/off
// are caller bugs and leave all staged state untouched.
func (d *Device) SetLED(id LEDID, state LEDState) error {
	if id < 0 || id >= ledCount {
		return ErrInvalidArgument
	}
	if state != LEDOn && state != LEDOff {
		return ErrInvalidArgument
	}
	if d.leds[id] == LEDUnsupported {
		return ErrInvalidArgument
	}
	if !d.Claimed() {
		return ErrBusy
	}
	d.leds[id] = state
	d.dirty = true
	return nil
}

// Resolution returns the staged resolution for an axis, or 0 for axes
// without an independent mapping.
func (d *Device) Resolution(axis Axis) Resolution {
	switch axis {
	case AxisX:
		return d.table[d.curX]
	case AxisY:
		return d.table[d.curY]
	default:
		return 0
	}
}

// SetResolution stages the resolution table entry for one axis. The value
// must be an entry of the model's table (a multiple of 100 within the sensor
// range) and the axis must be X or Y.
func (d *Device) SetResolution(axis Axis, res Resolution) error {
	if !d.Claimed() {
		return ErrBusy
	}
	index := int(res)/100 - 1
	if res%100 != 0 || index < 0 || index >= len(d.table) {
		return ErrInvalidArgument
	}
	switch axis {
	case AxisX:
		d.curX = index
	case AxisY:
		d.curY = index
	default:
		return ErrInvalidArgument
	}
	d.dirty = true
	return nil
}

// SupportedFrequencies lists the scan frequencies the hardware accepts.
func (d *Device) SupportedFrequencies() []Frequency {
	return []Frequency{Freq125, Freq500, Freq1000}
}

// SupportedResolutions lists the model's resolution table.
func (d *Device) SupportedResolutions() []Resolution {
	table := make([]Resolution, len(d.table))
	copy(table, d.table)
	return table
}

// Axes lists the enumerated sensor axes.
func (d *Device) Axes() []AxisInfo {
	return []AxisInfo{
		{ID: AxisX, Name: "X", IndependentMapping: true},
		{ID: AxisY, Name: "Y", IndependentMapping: true},
		{ID: AxisScroll, Name: "Scroll"},
	}
}

// Commit pushes the staged configuration to the hardware. With force false
// it is a no-op on a clean session; with force true the sequence always
// runs. On success the session becomes clean; on failure it stays dirty and
// a later commit retries the whole sequence from the first frame.
func (d *Device) Commit(force bool) error {
	if !d.Claimed() {
		return ErrBusy
	}
	if !d.dirty && !force {
		return nil
	}
	if err := d.doCommit(); err != nil {
		return err
	}
	d.dirty = false
	return nil
}

// doCommit sends the commit sequence strictly in order (resolution, LEDs,
// frequency) and aborts at the first failure.
func (d *Device) doCommit() error {
	frame := NewResolutionCommand(d.variant, d.table[d.curX], d.table[d.curY])
	if _, err := d.sendCommand(frame); err != nil {
		return err
	}

	for id := LEDID(0); id < ledCount; id++ {
		if d.leds[id] == LEDUnsupported {
			continue
		}
		frame := NewLEDCommand(ledTable[id].selector, d.leds[id] == LEDOn)
		if _, err := d.sendCommand(frame); err != nil {
			return err
		}
	}

	frame, err := NewFrequencyCommand(d.freq)
	if err != nil {
		return err
	}
	if _, err := d.sendCommand(frame); err != nil {
		return err
	}
	return nil
}

// sendCommand performs one write-then-read exchange and returns the decoded
// response. A response status outside the known-normal set is logged as a
// protocol anomaly but does not fail the call: the device is presumed to
// have applied the command regardless.
func (d *Device) sendCommand(frame []byte) (Frame, error) {
	if err := d.tr.Write(RequestWrite, CommandValue, frame); err != nil {
		return Frame{}, err
	}
	buf, err := d.tr.Read(RequestRead, CommandValue, FrameSize)
	if err != nil {
		return Frame{}, err
	}

	resp := DecodeFrame(buf)
	if !StatusNormal(resp.Status) {
		d.logf("naga: %v", &ProtocolAnomaly{Command: resp.Command, Request: resp.Request, Status: resp.Status})
	}
	if !VerifyChecksum(buf) {
		d.logf("naga: response %04X/%04X has a bad checksum", resp.Command, resp.Request)
	}
	return resp, nil
}

// probeFirmware polls the device for its firmware version. Fresh hardware
// takes a few exchanges before it answers with a valid version, so the probe
// retries with a settling delay; exhaustion means the device is not coming
// up at all.
func (d *Device) probeFirmware() (uint16, error) {
	version, err := WithRetries(firmwareProbeRetries, func() (uint16, error) {
		resp, err := d.sendCommand(NewFirmwareQuery())
		if err != nil {
			return 0, err
		}
		version := binary.BigEndian.Uint16(resp.Values[0:2])
		if version&0xFF00 == 0 {
			return 0, fmt.Errorf("no firmware version yet (read %04X)", version)
		}
		return version, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDeviceNotResponding, err)
	}
	return version, nil
}

func (d *Device) logf(format string, args ...interface{}) {
	if d.logger != nil {
		d.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
