// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

// LEDID identifies one of the Naga's LEDs.
type LEDID int

const (
	LEDScrollwheel LEDID = iota
	LEDGlowingLogo
	LEDThumbGrid

	ledCount
)

// LEDState is the configured state of an LED. LEDUnsupported is a sentinel
// meaning the physical variant has no such LED: it can never be toggled and
// the LED is excluded from the enumerated list and from commit.
type LEDState int

const (
	LEDUnsupported LEDState = iota
	LEDOff
	LEDOn
)

// String returns the state name.
func (s LEDState) String() string {
	switch s {
	case LEDOff:
		return "off"
	case LEDOn:
		return "on"
	default:
		return "unsupported"
	}
}

// LED describes one LED and its currently configured state.
type LED struct {
	ID       LEDID
	Name     string
	State    LEDState
	selector [2]byte // device-side id in the LED-set command
}

// ledTable lists every LED the protocol knows about, in id order. Whether a
// given device exposes an LED depends on the model.
var ledTable = [ledCount]struct {
	name     string
	selector [2]byte
}{
	LEDScrollwheel: {"Scrollwheel", [2]byte{0x01, 0x01}},
	LEDGlowingLogo: {"GlowingLogo", [2]byte{0x01, 0x04}},
	LEDThumbGrid:   {"ThumbGrid", [2]byte{0x01, 0x05}},
}

// LEDSelector returns the device-side selector bytes for an LED id.
func LEDSelector(id LEDID) [2]byte {
	if id < 0 || id >= ledCount {
		return [2]byte{}
	}
	return ledTable[id].selector
}

// LEDName returns the display name for an LED id, or "" for unknown ids.
func LEDName(id LEDID) string {
	if id < 0 || id >= ledCount {
		return ""
	}
	return ledTable[id].name
}

// ParseLEDName maps a display name (case-exact) back to an LED id.
func ParseLEDName(name string) (LEDID, bool) {
	for id, led := range ledTable {
		if led.name == name {
			return LEDID(id), true
		}
	}
	return 0, false
}
