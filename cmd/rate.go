// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package cmd

import (
	"fmt"

	"github.com/openrzr/nagactl/pkg/naga"
	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate [125|500|1000]",
	Short: "Show or set the scan frequency",
	Long: `Without arguments, print the staged scan frequency. With a value,
stage it and commit. The hardware supports 125, 500 and 1000 Hz.`,
	Args: cobra.RangeArgs(0, 1),
	RunE: runRate,
}

func init() {
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, args []string) error {
	dev, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) == 0 {
		fmt.Printf("Frequency: %s\n", dev.Frequency())
		for _, f := range dev.SupportedFrequencies() {
			fmt.Printf("  supported: %s\n", f)
		}
		return nil
	}

	var freq naga.Frequency
	switch args[0] {
	case "125":
		freq = naga.Freq125
	case "500":
		freq = naga.Freq500
	case "1000":
		freq = naga.Freq1000
	default:
		return fmt.Errorf("frequency must be 125, 500 or 1000, got %q", args[0])
	}

	dev.Claim()
	defer dev.Release()

	if err := dev.SetFrequency(freq); err != nil {
		return fmt.Errorf("cannot set frequency: %w", err)
	}
	if err := dev.Commit(false); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	fmt.Printf("Frequency set to %s\n", freq)
	return nil
}
