// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package cmd

import (
	"fmt"

	"github.com/openrzr/nagactl/pkg/naga"
	"github.com/spf13/cobra"
)

var (
	framesDPI  int
	framesDump bool
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Print the command frames a commit would send (no device needed)",
	Long: `Build the full commit frame sequence offline and print each frame
in decoded form. Useful for comparing against USB captures when debugging
a model variant.

The model defaults to "classic"; use --model to pick another and --dpi to
change the resolution encoded into the first frame.`,
	RunE: runFrames,
}

func init() {
	rootCmd.AddCommand(framesCmd)
	framesCmd.Flags().IntVar(&framesDPI, "dpi", 1000, "Resolution encoded into the resolution frame")
	framesCmd.Flags().BoolVar(&framesDump, "hex", false, "Also hex-dump every frame")
}

func runFrames(cmd *cobra.Command, args []string) error {
	model := naga.ModelClassic
	if modelName != "" {
		m, ok := naga.ParseModel(modelName)
		if !ok {
			return fmt.Errorf("unknown model %q", modelName)
		}
		model = m
	}

	res := naga.Resolution(framesDPI)
	frames := [][]byte{
		naga.NewFirmwareQuery(),
		naga.NewResolutionCommand(model.Variant(), res, res),
	}

	leds := []struct {
		id naga.LEDID
		on bool
	}{
		{naga.LEDScrollwheel, true},
		{naga.LEDGlowingLogo, true},
	}
	if model == naga.Model2014 {
		leds = append(leds, struct {
			id naga.LEDID
			on bool
		}{naga.LEDThumbGrid, true})
	}
	for _, led := range leds {
		frames = append(frames, naga.NewLEDCommand(naga.LEDSelector(led.id), led.on))
	}

	freq, err := naga.NewFrequencyCommand(naga.Freq1000)
	if err != nil {
		return err
	}
	frames = append(frames, freq)

	fmt.Printf("Model: %s (%s variant)\n\n", model, model.Variant())
	for _, frame := range frames {
		fmt.Println(naga.FormatFrame(frame))
		if framesDump {
			fmt.Println(naga.HexDump(frame))
		}
	}
	return nil
}
