// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

import (
	"fmt"
	"strings"
)

// FormatFrame renders a frame into a human-readable one-line summary.
func FormatFrame(buf []byte) string {
	f := DecodeFrame(buf)
	checksum := "ok"
	if !VerifyChecksum(buf) {
		checksum = fmt.Sprintf("BAD (stored %02X, computed %02X)",
			f.Checksum, Checksum(buf[checksumFrom:checksumTo]))
	}
	return fmt.Sprintf("%s (%04X/%04X) status=%02X values=% 02X checksum=%s",
		FormatOperation(f.Command, f.Request), f.Command, f.Request,
		f.Status, f.Values[:], checksum)
}

// FormatOperation returns the human-readable name for a command/request
// opcode pair.
func FormatOperation(command, request uint16) string {
	switch {
	case command == CommandGetFirmware && request == RequestGetFirmware:
		return "GET_FIRMWARE"
	case command == CommandSetLED && request == RequestSetLED:
		return "SET_LED"
	case command == CommandSetFrequency && request == RequestSetFrequency:
		return "SET_FREQUENCY"
	case command == CommandSetResolutionLegacy && request == RequestSetResolutionLegacy:
		return "SET_RESOLUTION"
	case command == CommandSetResolutionExtended && request == RequestSetResolutionExtended:
		return "SET_RESOLUTION_16BIT"
	default:
		return "UNKNOWN"
	}
}

// HexDump renders a frame as rows of 16 hex bytes with offsets, the way the
// frames appear in USB captures.
func HexDump(buf []byte) string {
	var b strings.Builder
	for offset := 0; offset < len(buf); offset += 16 {
		end := offset + 16
		if end > len(buf) {
			end = len(buf)
		}
		fmt.Fprintf(&b, "%04X  ", offset)
		for i := offset; i < end; i++ {
			fmt.Fprintf(&b, "%02X ", buf[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
