// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package cmd

import (
	"fmt"

	"github.com/google/gousb"
	"github.com/openrzr/nagactl/pkg/naga"
)

// openSession opens the selected Naga, runs the protocol initialization and
// returns the device session plus a cleanup function releasing the USB
// stack. Exactly one session may exist per physical device.
func openSession() (*naga.Device, func(), error) {
	ctx := gousb.NewContext()

	usbDev, model, err := findNaga(ctx)
	if err != nil {
		ctx.Close()
		return nil, nil, err
	}

	if modelName != "" {
		override, ok := naga.ParseModel(modelName)
		if !ok {
			usbDev.Close()
			ctx.Close()
			return nil, nil, fmt.Errorf("unknown model %q", modelName)
		}
		model = override
	}

	tr, err := naga.NewUSBTransport(usbDev)
	if err != nil {
		usbDev.Close()
		ctx.Close()
		return nil, nil, fmt.Errorf("failed to open control channel: %w", err)
	}

	dev, err := naga.Open(tr, model, nil)
	if err != nil {
		tr.Close()
		ctx.Close()
		return nil, nil, fmt.Errorf("failed to initialize %s: %w", model, err)
	}

	cleanup := func() {
		dev.Close()
		ctx.Close()
	}
	return dev, cleanup, nil
}

// findNaga picks the Naga matching the --bus/--address flags, or the first
// one found.
func findNaga(ctx *gousb.Context) (*gousb.Device, naga.Model, error) {
	var model naga.Model

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		if uint16(desc.Vendor) != naga.VendorID {
			return false
		}
		if _, ok := naga.ModelForProduct(uint16(desc.Product)); !ok {
			return false
		}
		if usbBus >= 0 && desc.Bus != usbBus {
			return false
		}
		if usbAddr >= 0 && desc.Address != usbAddr {
			return false
		}
		return true
	})
	if err != nil && len(devs) == 0 {
		return nil, model, fmt.Errorf("USB enumeration failed: %w", err)
	}
	if len(devs) == 0 {
		return nil, model, fmt.Errorf("no Naga found (use --bus/--address to select one)")
	}

	// Keep the first match, close the rest.
	for _, d := range devs[1:] {
		d.Close()
	}
	dev := devs[0]
	model, _ = naga.ModelForProduct(uint16(dev.Desc.Product))
	return dev, model, nil
}
