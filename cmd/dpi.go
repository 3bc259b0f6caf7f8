// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package cmd

import (
	"fmt"
	"strconv"

	"github.com/openrzr/nagactl/pkg/naga"
	"github.com/spf13/cobra"
)

var dpiAxis string

var dpiCmd = &cobra.Command{
	Use:   "dpi [value]",
	Short: "Show or set the sensor resolution",
	Long: `Without arguments, print the staged per-axis resolution and the
supported range. With a value, stage it and commit.

Values are multiples of 100 DPI up to the sensor maximum (5600, or 8200 on
the Naga 2014). By default both axes are set; use --axis to set one.`,
	Args: cobra.RangeArgs(0, 1),
	RunE: runDPI,
}

func init() {
	rootCmd.AddCommand(dpiCmd)
	dpiCmd.Flags().StringVar(&dpiAxis, "axis", "", "Restrict to one axis (x or y)")
}

func runDPI(cmd *cobra.Command, args []string) error {
	dev, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) == 0 {
		table := dev.SupportedResolutions()
		fmt.Printf("X: %d DPI\n", dev.Resolution(naga.AxisX))
		fmt.Printf("Y: %d DPI\n", dev.Resolution(naga.AxisY))
		fmt.Printf("Supported: %d to %d in steps of 100\n", table[0], table[len(table)-1])
		return nil
	}

	value, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid DPI value %q", args[0])
	}
	res := naga.Resolution(value)

	var axes []naga.Axis
	switch dpiAxis {
	case "":
		axes = []naga.Axis{naga.AxisX, naga.AxisY}
	case "x", "X":
		axes = []naga.Axis{naga.AxisX}
	case "y", "Y":
		axes = []naga.Axis{naga.AxisY}
	default:
		return fmt.Errorf("axis must be \"x\" or \"y\", got %q", dpiAxis)
	}

	dev.Claim()
	defer dev.Release()

	for _, axis := range axes {
		if err := dev.SetResolution(axis, res); err != nil {
			return fmt.Errorf("cannot set %s resolution to %d: %w", axis, value, err)
		}
	}
	if err := dev.Commit(false); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	fmt.Printf("DPI set: X=%d Y=%d\n", dev.Resolution(naga.AxisX), dev.Resolution(naga.AxisY))
	return nil
}
