// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/openrzr/nagactl/pkg/naga"
)

// Profile is a TOML device profile. Zero fields are left at whatever the
// device currently stages, so a profile may set any subset of the
// configuration.
type Profile struct {
	Frequency  int               `toml:"frequency"`
	Resolution ResolutionProfile `toml:"resolution"`
	LEDs       map[string]bool   `toml:"leds"`
}

// ResolutionProfile holds per-axis DPI values.
type ResolutionProfile struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// LoadProfile reads and validates a profile file.
func LoadProfile(path string) (*Profile, error) {
	var p Profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("cannot read profile %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &p, nil
}

func (p *Profile) validate() error {
	switch p.Frequency {
	case 0, 125, 500, 1000:
	default:
		return fmt.Errorf("frequency must be 125, 500 or 1000, got %d", p.Frequency)
	}
	for name := range p.LEDs {
		if _, ok := naga.ParseLEDName(name); !ok {
			return fmt.Errorf("unknown LED %q", name)
		}
	}
	return nil
}

// stage pushes every setting the profile carries into the claimed device
// session. The caller commits.
func (p *Profile) stage(dev *naga.Device) error {
	if p.Resolution.X != 0 {
		if err := dev.SetResolution(naga.AxisX, naga.Resolution(p.Resolution.X)); err != nil {
			return fmt.Errorf("X resolution %d: %w", p.Resolution.X, err)
		}
	}
	if p.Resolution.Y != 0 {
		if err := dev.SetResolution(naga.AxisY, naga.Resolution(p.Resolution.Y)); err != nil {
			return fmt.Errorf("Y resolution %d: %w", p.Resolution.Y, err)
		}
	}

	for name, on := range p.LEDs {
		id, _ := naga.ParseLEDName(name)
		state := naga.LEDOff
		if on {
			state = naga.LEDOn
		}
		if err := dev.SetLED(id, state); err != nil {
			return fmt.Errorf("LED %s: %w", name, err)
		}
	}

	if p.Frequency != 0 {
		if err := dev.SetFrequency(naga.Frequency(p.Frequency)); err != nil {
			return fmt.Errorf("frequency %d: %w", p.Frequency, err)
		}
	}
	return nil
}
