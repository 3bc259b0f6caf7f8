// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

// Command builder functions create wire-ready 90-byte frames. These are the
// only places command/request opcode pairs are assembled, so each builder is
// the single source of truth for its operation's encoding.

// Frequency is the sensor scan ("polling") frequency in Hz. FreqUnknown is
// treated as 1000 Hz when committed.
type Frequency int

const (
	FreqUnknown Frequency = 0
	Freq125     Frequency = 125
	Freq500     Frequency = 500
	Freq1000    Frequency = 1000
)

// String returns the frequency as "125Hz" etc.
func (f Frequency) String() string {
	switch f {
	case Freq125:
		return "125Hz"
	case Freq500:
		return "500Hz"
	case Freq1000:
		return "1000Hz"
	default:
		return "unknown"
	}
}

// wireCode maps a frequency to the single value byte of the frequency-set
// command. Values outside the enumerated set are a caller bug.
func (f Frequency) wireCode() (uint8, error) {
	switch f {
	case Freq125:
		return 8, nil
	case Freq500:
		return 2, nil
	case Freq1000, FreqUnknown:
		return 1, nil
	default:
		return 0, ErrInvalidArgument
	}
}

// NewFirmwareQuery creates the firmware version query frame (0x0002/0x0081).
// The response carries the big-endian version in the first two value bytes.
func NewFirmwareQuery() []byte {
	return EncodeFrame(CommandGetFirmware, RequestGetFirmware, [ValueCount]byte{})
}

// NewLEDCommand creates an LED-set frame (0x0003/0x0300) for the given
// device-side LED selector.
func NewLEDCommand(selector [2]byte, on bool) []byte {
	values := [ValueCount]byte{selector[0], selector[1]}
	if on {
		values[2] = 1
	}
	return EncodeFrame(CommandSetLED, RequestSetLED, values)
}

// NewFrequencyCommand creates a frequency-set frame (0x0001/0x0005). It
// fails with ErrInvalidArgument before any encoding when the frequency is
// outside the enumerated set.
func NewFrequencyCommand(f Frequency) ([]byte, error) {
	code, err := f.wireCode()
	if err != nil {
		return nil, err
	}
	return EncodeFrame(CommandSetFrequency, RequestSetFrequency, [ValueCount]byte{code}), nil
}

// NewResolutionCommand creates a resolution-set frame for the variant's
// encoding. Both axis inputs come from the device's resolution table
// cursors, never from raw caller numbers.
func NewResolutionCommand(v Variant, x, y Resolution) []byte {
	return v.encodeResolution(x, y)
}
