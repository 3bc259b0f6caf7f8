// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned when a mutation or commit is attempted without an
	// active claim on the device.
	ErrBusy = errors.New("device is not claimed")

	// ErrInvalidArgument is returned for out-of-domain frequencies, axis ids
	// and LED ids/states. No state is mutated.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDeviceNotResponding is returned when the firmware version probe
	// exhausts its retries. It is fatal to device initialization.
	ErrDeviceNotResponding = errors.New("device not responding")
)

// TransportError wraps a failed control transfer: either the underlying
// transfer failed outright or it moved a different byte count than requested.
type TransportError struct {
	Op      string // "write" or "read"
	Request uint8
	Value   uint16
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("usb %s 0x%02X 0x%04X failed: %v", e.Op, e.Request, e.Value, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolAnomaly describes a response whose status byte is outside the
// known-normal set. The device is presumed to have applied the command
// anyway, so anomalies are logged and never returned as call failures.
type ProtocolAnomaly struct {
	Command uint16
	Request uint16
	Status  uint8
}

func (e *ProtocolAnomaly) Error() string {
	return fmt.Sprintf("command %04X/%04X answered with status %02X", e.Command, e.Request, e.Status)
}
