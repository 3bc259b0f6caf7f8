// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

import "time"

// Transport performs single blocking control exchanges with the device.
// Implementations must enforce the exact-length contract: a Write that
// moves fewer than len(data) bytes and a Read that returns fewer than size
// bytes both fail with a *TransportError. Implementations also own the
// minimum inter-transfer spacing; callers never pace themselves.
type Transport interface {
	// Write sends data with the given control request code and value field.
	Write(request uint8, value uint16, data []byte) error

	// Read receives exactly size bytes with the given control request code
	// and value field.
	Read(request uint8, value uint16, size int) ([]byte, error)

	// Close releases the underlying channel.
	Close() error
}

// transferSpacer enforces a minimum delay between consecutive transfers.
// It is owned by the transport instance, not shared process-wide.
type transferSpacer struct {
	min  time.Duration
	last time.Time
}

func newTransferSpacer(min time.Duration) *transferSpacer {
	return &transferSpacer{min: min}
}

// enter blocks until at least the minimum spacing has elapsed since the last
// leave.
func (s *transferSpacer) enter() {
	if s.last.IsZero() {
		return
	}
	if wait := s.min - time.Since(s.last); wait > 0 {
		time.Sleep(wait)
	}
}

// leave records the end of a transfer.
func (s *transferSpacer) leave() {
	s.last = time.Now()
}
