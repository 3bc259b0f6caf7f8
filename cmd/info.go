// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package cmd

import (
	"fmt"

	"github.com/openrzr/nagactl/pkg/naga"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show device model, firmware and current configuration",
	Long: `Probe the device and print its model, firmware version and the
configuration as staged by initialization (the hardware defaults).`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	dev, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	fw := dev.FirmwareVersion()
	fmt.Printf("Model:     %s\n", dev.Model())
	fmt.Printf("Firmware:  %d.%02d\n", naga.FirmwareMajor(fw), naga.FirmwareMinor(fw))
	fmt.Printf("Sensor:    %s (%d resolution steps, max %d DPI)\n",
		dev.Variant(), dev.Variant().Mappings(), dev.SupportedResolutions()[dev.Variant().Mappings()-1])
	if dev.SuggestFirmwareUpgrade() {
		fmt.Printf("Warning:   this firmware has known bugs, upgrade to 1.04 or later\n")
	}

	fmt.Printf("Frequency: %s\n", dev.Frequency())
	fmt.Printf("DPI:       X=%d Y=%d\n", dev.Resolution(naga.AxisX), dev.Resolution(naga.AxisY))

	fmt.Printf("LEDs:\n")
	for _, led := range dev.LEDs() {
		fmt.Printf("  %-12s %s\n", led.Name, led.State)
	}

	fmt.Printf("Axes:\n")
	for _, axis := range dev.Axes() {
		independent := ""
		if axis.IndependentMapping {
			independent = " (independent DPI)"
		}
		fmt.Printf("  %s%s\n", axis.Name, independent)
	}
	return nil
}
