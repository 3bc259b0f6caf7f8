// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

// Package naga implements the vendor control protocol of the Razer Naga
// mouse family.
//
// The protocol is reverse engineered: configuration is pushed to the device
// as fixed 90-byte command frames over the USB control channel, one frame per
// setting. This package provides the frame codec, the per-generation
// resolution encodings, and the device session that stages configuration
// changes and commits them as an ordered frame sequence.
package naga

import "time"

// Frame layout. Offsets are wire-exact; see the command frame table in the
// protocol notes.
const (
	FrameSize = 90

	offsetStatus   = 0
	offsetCommand  = 4
	offsetRequest  = 6
	offsetValues   = 8
	offsetChecksum = 88

	// Number of opcode-specific value bytes per frame.
	ValueCount = 5

	// The checksum is an XOR reduction of bytes 2..87 inclusive.
	checksumFrom = 2
	checksumTo   = 88
)

// Command/request opcode pairs, big-endian on the wire.
const (
	CommandGetFirmware = 0x0002
	RequestGetFirmware = 0x0081

	CommandSetLED = 0x0003
	RequestSetLED = 0x0300

	CommandSetFrequency = 0x0001
	RequestSetFrequency = 0x0005

	CommandSetResolutionLegacy = 0x0003
	RequestSetResolutionLegacy = 0x0401

	CommandSetResolutionExtended = 0x0007
	RequestSetResolutionExtended = 0x0405
)

// USB control request codes for the vendor command channel. The firmware
// abuses the HID class SET_REPORT/GET_REPORT requests with feature report 3
// as its command mailbox.
const (
	RequestWrite = 0x09
	RequestRead  = 0x01

	CommandValue = 0x0300
)

// Transfer timing. Some Naga firmwares desynchronize when control transfers
// arrive back-to-back, so every transfer is preceded by a minimum settling
// delay relative to the previous one.
const (
	TransferSpacing = 25 * time.Millisecond
	TransferTimeout = 3 * time.Second
)

// Retry policies for the two operations that need them.
var (
	firmwareProbeRetries = RetryPolicy{Attempts: 5, Delay: 250 * time.Millisecond}
	readTransferRetries  = RetryPolicy{Attempts: 3}
)

// USB identifiers
const (
	// VendorID is the Razer USB vendor id.
	VendorID = 0x1532

	ProductClassic = 0x0015
	ProductEpic    = 0x001F
	Product2012    = 0x002E
	Product2014    = 0x0040
	ProductHex     = 0x0041
	ProductHexV2   = 0x0050
)

// Resolution table sizes per sensor generation, in 100 DPI steps from 100.
const (
	legacyMappings   = 56 // 100 to 5600 DPI
	extendedMappings = 82 // 100 to 8200 DPI
)

// epicFirmwareMinimum is the first Naga Epic firmware without the known
// command-handling bugs. Older firmware still works but a profile upgrade
// is suggested to the user.
const epicFirmwareMinimum = 0x0104
