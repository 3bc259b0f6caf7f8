// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <profile.toml>",
	Short: "Apply a TOML profile in one commit",
	Long: `Stage every setting from a TOML profile and push them to the device
as a single commit.

Profile format:

  frequency = 1000

  [resolution]
  x = 800
  y = 1600

  [leds]
  Scrollwheel = true
  GlowingLogo = false

All keys are optional; omitted settings keep the device defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	profile, err := LoadProfile(args[0])
	if err != nil {
		return err
	}

	dev, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	dev.Claim()
	defer dev.Release()

	if err := profile.stage(dev); err != nil {
		return err
	}
	if err := dev.Commit(false); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	fmt.Printf("Profile %s applied\n", args[0])
	return nil
}
