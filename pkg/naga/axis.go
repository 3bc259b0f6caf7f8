// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 The nagactl authors

package naga

// Axis identifies a sensor axis. Only X and Y carry an independent
// resolution mapping; the scroll axis is enumerated but not configurable.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisScroll
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisScroll:
		return "Scroll"
	default:
		return "invalid"
	}
}

// AxisInfo describes one enumerated axis.
type AxisInfo struct {
	ID                 Axis
	Name               string
	IndependentMapping bool
}
