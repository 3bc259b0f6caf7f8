// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

import "testing"

func TestModelForProduct(t *testing.T) {
	tests := []struct {
		pid   uint16
		model Model
	}{
		{ProductClassic, ModelClassic},
		{ProductEpic, ModelEpic},
		{Product2012, Model2012},
		{ProductHex, ModelHex},
		{ProductHexV2, ModelHexV2},
		{Product2014, Model2014},
	}

	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			model, ok := ModelForProduct(tt.pid)
			if !ok {
				t.Fatalf("pid 0x%04X should be known", tt.pid)
			}
			if model != tt.model {
				t.Errorf("pid 0x%04X: expected %v, got %v", tt.pid, tt.model, model)
			}
		})
	}

	if _, ok := ModelForProduct(0xBEEF); ok {
		t.Error("unknown pid must not map to a model")
	}
}

func TestModelVariant(t *testing.T) {
	for _, m := range []Model{ModelClassic, ModelEpic, Model2012, ModelHex, ModelHexV2} {
		if m.Variant() != VariantLegacy {
			t.Errorf("%v: expected the legacy variant", m)
		}
		if m.hasThumbGrid() {
			t.Errorf("%v: no thumb grid LED expected", m)
		}
	}
	if Model2014.Variant() != VariantExtended {
		t.Error("the 2014 uses the extended variant")
	}
	if !Model2014.hasThumbGrid() {
		t.Error("the 2014 has a thumb grid LED")
	}
}

func TestParseModel(t *testing.T) {
	for _, name := range []string{"classic", "naga", "epic", "2012", "hex", "hexv2", "hex-v2", "2014"} {
		if _, ok := ParseModel(name); !ok {
			t.Errorf("%q should parse", name)
		}
	}
	if _, ok := ParseModel("trinity"); ok {
		t.Error("unknown names must not parse")
	}
}

func TestFirmwareVersionSplit(t *testing.T) {
	if FirmwareMajor(0x0104) != 1 || FirmwareMinor(0x0104) != 4 {
		t.Errorf("0x0104 should split into 1.04, got %d.%d",
			FirmwareMajor(0x0104), FirmwareMinor(0x0104))
	}
	if FirmwareMajor(0x2A0F) != 42 || FirmwareMinor(0x2A0F) != 15 {
		t.Errorf("0x2A0F should split into 42.15, got %d.%d",
			FirmwareMajor(0x2A0F), FirmwareMinor(0x2A0F))
	}
}

func TestParseLEDName(t *testing.T) {
	for id := LEDID(0); id < ledCount; id++ {
		name := LEDName(id)
		if name == "" {
			t.Fatalf("id %d has no name", id)
		}
		back, ok := ParseLEDName(name)
		if !ok || back != id {
			t.Errorf("%q should round-trip to id %d, got %d (%v)", name, id, back, ok)
		}
	}
	if LEDName(LEDID(9)) != "" {
		t.Error("out-of-range ids have no name")
	}
	if _, ok := ParseLEDName("Underglow"); ok {
		t.Error("unknown names must not parse")
	}
}
