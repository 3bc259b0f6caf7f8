// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

import "encoding/binary"

// Resolution is a sensor resolution in DPI. Valid values are the entries of
// the model's resolution table: multiples of 100 starting at 100.
type Resolution int

// Variant selects the resolution-set encoding for a sensor generation. It is
// chosen once at device construction and never changes afterwards.
type Variant int

const (
	// VariantLegacy covers the Classic, Epic, 2012 and Hex sensors
	// (100-5600 DPI, scaled single-byte encoding).
	VariantLegacy Variant = iota

	// VariantExtended covers the 2014 sensor (100-8200 DPI, raw 16-bit
	// big-endian encoding).
	VariantExtended
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantLegacy:
		return "legacy"
	case VariantExtended:
		return "extended"
	default:
		return "unknown"
	}
}

// Mappings returns the number of resolution table entries for the variant.
func (v Variant) Mappings() int {
	if v == VariantExtended {
		return extendedMappings
	}
	return legacyMappings
}

// ResolutionTable builds the ordered resolution table for the variant:
// 100, 200, ... up to the generation maximum.
func ResolutionTable(v Variant) []Resolution {
	table := make([]Resolution, v.Mappings())
	for i := range table {
		table[i] = Resolution((i + 1) * 100)
	}
	return table
}

// encodeResolution builds the resolution-set frame for the currently
// selected per-axis resolutions.
func (v Variant) encodeResolution(x, y Resolution) []byte {
	var values [ValueCount]byte
	switch v {
	case VariantExtended:
		binary.BigEndian.PutUint16(values[1:3], uint16(x))
		binary.BigEndian.PutUint16(values[3:5], uint16(y))
		return EncodeFrame(CommandSetResolutionExtended, RequestSetResolutionExtended, values)
	default:
		values[0] = uint8((int(x)/100 - 1) * 4)
		values[1] = uint8((int(y)/100 - 1) * 4)
		return EncodeFrame(CommandSetResolutionLegacy, RequestSetResolutionLegacy, values)
	}
}
