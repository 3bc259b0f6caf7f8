// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

import (
	"fmt"

	"github.com/google/gousb"
)

// USBTransport implements Transport over a claimed gousb device, issuing
// class/interface control transfers against interface 0.
type USBTransport struct {
	dev    *gousb.Device
	done   func()
	spacer *transferSpacer
}

// NewUSBTransport claims interface 0 of the device (detaching any kernel
// driver first) and wraps it in a Transport. The caller keeps ownership of
// the gousb context; the device is closed by Close.
func NewUSBTransport(dev *gousb.Device) (*USBTransport, error) {
	if err := dev.SetAutoDetach(true); err != nil {
		return nil, fmt.Errorf("auto-detach: %w", err)
	}
	dev.ControlTimeout = TransferTimeout

	// Claiming the default interface keeps the kernel HID driver off the
	// control channel while the session is open.
	_, done, err := dev.DefaultInterface()
	if err != nil {
		return nil, fmt.Errorf("claim interface: %w", err)
	}

	return &USBTransport{
		dev:    dev,
		done:   done,
		spacer: newTransferSpacer(TransferSpacing),
	}, nil
}

// Write sends data as a class OUT transfer to the interface recipient.
func (t *USBTransport) Write(request uint8, value uint16, data []byte) error {
	t.spacer.enter()
	n, err := t.dev.Control(
		gousb.ControlOut|gousb.ControlClass|gousb.ControlInterface,
		request, value, 0, data)
	t.spacer.leave()
	if err != nil {
		return &TransportError{Op: "write", Request: request, Value: value, Err: err}
	}
	if n != len(data) {
		return &TransportError{
			Op: "write", Request: request, Value: value,
			Err: fmt.Errorf("short transfer: %d of %d bytes", n, len(data)),
		}
	}
	return nil
}

// Read receives size bytes as a class IN transfer from the interface
// recipient. Short or failed transfers are retried up to three times before
// the last error is surfaced.
func (t *USBTransport) Read(request uint8, value uint16, size int) ([]byte, error) {
	return WithRetries(readTransferRetries, func() ([]byte, error) {
		buf := make([]byte, size)
		t.spacer.enter()
		n, err := t.dev.Control(
			gousb.ControlIn|gousb.ControlClass|gousb.ControlInterface,
			request, value, 0, buf)
		t.spacer.leave()
		if err != nil {
			return nil, &TransportError{Op: "read", Request: request, Value: value, Err: err}
		}
		if n != size {
			return nil, &TransportError{
				Op: "read", Request: request, Value: value,
				Err: fmt.Errorf("short transfer: %d of %d bytes", n, size),
			}
		}
		return buf, nil
	})
}

// Close releases the claimed interface and the device handle.
func (t *USBTransport) Close() error {
	if t.done != nil {
		t.done()
		t.done = nil
	}
	return t.dev.Close()
}
