// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

import "encoding/binary"

// Frame is the structural view of a 90-byte command frame. Decoding is a
// pure reinterpretation of the buffer; checksum verification is left to the
// caller because a mismatch is diagnostic, not fatal.
type Frame struct {
	Status   uint8
	Command  uint16
	Request  uint16
	Values   [ValueCount]byte
	Checksum uint8
}

// EncodeFrame builds a wire-ready command frame. All padding is zero, the
// status byte is zero on send, and the checksum is computed over the current
// frame content immediately before it is stored.
func EncodeFrame(command, request uint16, values [ValueCount]byte) []byte {
	buf := make([]byte, FrameSize)
	binary.BigEndian.PutUint16(buf[offsetCommand:], command)
	binary.BigEndian.PutUint16(buf[offsetRequest:], request)
	copy(buf[offsetValues:], values[:])
	buf[offsetChecksum] = Checksum(buf[checksumFrom:checksumTo])
	return buf
}

// DecodeFrame reinterprets a 90-byte buffer as a Frame. Buffers shorter than
// FrameSize yield a zero Frame.
func DecodeFrame(buf []byte) Frame {
	if len(buf) < FrameSize {
		return Frame{}
	}
	var f Frame
	f.Status = buf[offsetStatus]
	f.Command = binary.BigEndian.Uint16(buf[offsetCommand:])
	f.Request = binary.BigEndian.Uint16(buf[offsetRequest:])
	copy(f.Values[:], buf[offsetValues:offsetValues+ValueCount])
	f.Checksum = buf[offsetChecksum]
	return f
}

// VerifyChecksum reports whether the stored checksum matches the frame
// content.
func VerifyChecksum(buf []byte) bool {
	if len(buf) < FrameSize {
		return false
	}
	return Checksum(buf[checksumFrom:checksumTo]) == buf[offsetChecksum]
}

// StatusNormal reports whether a response status byte is one the firmware is
// known to return for applied commands. Anything else is a protocol anomaly.
func StatusNormal(status uint8) bool {
	return status <= 2
}
