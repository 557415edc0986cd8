// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events usually generated at the window
// level.
package system

import (
	"github.com/PistonDevelopers/conrod-go/f32"
	"github.com/PistonDevelopers/conrod-go/unit"
)

// A ResizeEvent is generated when the window changes dimensions.
type ResizeEvent struct {
	// Size is the new dimensions of the window, in pixels.
	Size f32.Point
	// Metric is the window's current dp conversion.
	Metric unit.Metric
}

// A FocusEvent is generated when the window gains or loses input
// focus. Losing focus may eat key or button releases; state derived
// from unmatched presses must degrade gracefully.
type FocusEvent struct {
	Focus bool
}

func (ResizeEvent) ImplementsEvent() {}
func (FocusEvent) ImplementsEvent()  {}
