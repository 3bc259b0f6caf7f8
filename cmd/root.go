// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Device selection flags
	modelName string
	usbBus    int
	usbAddr   int
)

var rootCmd = &cobra.Command{
	Use:   "nagactl",
	Short: "Razer Naga configuration tool",
	Long: `nagactl - Configure Razer Naga mice over the USB control protocol.

Supports LED states, per-axis sensor resolution (DPI) and scan frequency
for the Naga Classic, Epic, 2012, Hex, Hex v2 and 2014 models.

The protocol is reverse engineered. Configuration is staged in memory and
pushed to the device as an ordered command frame sequence; nothing persists
on the host, the device is reprogrammed on every run.

Device selection:
  By default the first Naga on the bus is used. Use --bus/--address to pick
  a specific one, and --model to override the detected hardware model.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelName, "model", "m", "", "Override detected model (classic, epic, 2012, hex, hexv2, 2014)")
	rootCmd.PersistentFlags().IntVar(&usbBus, "bus", -1, "USB bus number of the device")
	rootCmd.PersistentFlags().IntVar(&usbAddr, "address", -1, "USB device address on the bus")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
