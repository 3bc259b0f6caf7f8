// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

import "fmt"

// Model identifies the Naga hardware variant. The model decides the sensor
// generation (resolution encoding) and which LEDs are present.
type Model int

const (
	ModelClassic Model = iota
	ModelEpic
	Model2012
	ModelHex
	ModelHexV2
	Model2014
)

// String returns the marketing name of the model.
func (m Model) String() string {
	switch m {
	case ModelClassic:
		return "Naga"
	case ModelEpic:
		return "Naga Epic"
	case Model2012:
		return "Naga 2012"
	case ModelHex:
		return "Naga Hex"
	case ModelHexV2:
		return "Naga Hex v2"
	case Model2014:
		return "Naga 2014"
	default:
		return fmt.Sprintf("Naga(unknown %d)", int(m))
	}
}

// ModelForProduct maps a USB product id to a Model.
func ModelForProduct(pid uint16) (Model, bool) {
	switch pid {
	case ProductClassic:
		return ModelClassic, true
	case ProductEpic:
		return ModelEpic, true
	case Product2012:
		return Model2012, true
	case ProductHex:
		return ModelHex, true
	case ProductHexV2:
		return ModelHexV2, true
	case Product2014:
		return Model2014, true
	default:
		return ModelClassic, false
	}
}

// ParseModel maps a model name as accepted on the command line.
func ParseModel(name string) (Model, bool) {
	switch name {
	case "classic", "naga":
		return ModelClassic, true
	case "epic":
		return ModelEpic, true
	case "2012":
		return Model2012, true
	case "hex":
		return ModelHex, true
	case "hexv2", "hex-v2":
		return ModelHexV2, true
	case "2014":
		return Model2014, true
	default:
		return ModelClassic, false
	}
}

// Variant returns the resolution encoding generation of the model.
func (m Model) Variant() Variant {
	if m == Model2014 {
		return VariantExtended
	}
	return VariantLegacy
}

// hasThumbGrid reports whether the model carries the thumb grid LED.
func (m Model) hasThumbGrid() bool {
	return m == Model2014
}

// FirmwareMajor extracts the major part of a 16-bit firmware version.
func FirmwareMajor(version uint16) int {
	return int(version>>8) & 0xFF
}

// FirmwareMinor extracts the minor part of a 16-bit firmware version.
func FirmwareMinor(version uint16) int {
	return int(version) & 0xFF
}
