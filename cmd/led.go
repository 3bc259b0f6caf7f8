// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package cmd

import (
	"fmt"

	"github.com/openrzr/nagactl/pkg/naga"
	"github.com/spf13/cobra"
)

var ledCmd = &cobra.Command{
	Use:   "led [name on|off]",
	Short: "List LEDs or set an LED state",
	Long: `Without arguments, list the LEDs of the connected model and their
states. With a name and a state, stage the new state and commit it.

LED names as reported by "nagactl led": Scrollwheel, GlowingLogo and, on
the Naga 2014, ThumbGrid.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runLED,
}

func init() {
	rootCmd.AddCommand(ledCmd)
}

func runLED(cmd *cobra.Command, args []string) error {
	dev, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) == 0 {
		for _, led := range dev.LEDs() {
			fmt.Printf("%-12s %s\n", led.Name, led.State)
		}
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("expected a LED name and a state, got %q", args)
	}

	id, ok := naga.ParseLEDName(args[0])
	if !ok {
		return fmt.Errorf("unknown LED %q", args[0])
	}
	var state naga.LEDState
	switch args[1] {
	case "on":
		state = naga.LEDOn
	case "off":
		state = naga.LEDOff
	default:
		return fmt.Errorf("state must be \"on\" or \"off\", got %q", args[1])
	}

	dev.Claim()
	defer dev.Release()

	if err := dev.SetLED(id, state); err != nil {
		return fmt.Errorf("cannot set %s: %w", args[0], err)
	}
	if err := dev.Commit(false); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	fmt.Printf("%s is now %s\n", args[0], state)
	return nil
}
