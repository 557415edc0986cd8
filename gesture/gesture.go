// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures read a widget's scoped input Source and reduce it to
higher level widget reactions such as hover, press and click state.
*/
package gesture

import (
	"github.com/PistonDevelopers/conrod-go/f32"
	"github.com/PistonDevelopers/conrod-go/input"
	"github.com/PistonDevelopers/conrod-go/io/key"
	"github.com/PistonDevelopers/conrod-go/io/pointer"
)

// Click detects click gestures in the form of ClickEvents.
type Click struct {
	// state tracks the gesture state.
	state ClickState
}

type ClickState uint8

// ClickEvent represents a click action, either a TypePress for the
// beginning of a click or a TypeClick for a completed click.
type ClickEvent struct {
	Type      ClickType
	Position  f32.Point
	Modifiers key.Modifiers
}

type ClickType uint8

// Drag tracks a button drag across cycles.
type Drag struct {
	dragging bool
	start    f32.Point
}

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StateHovered is reported when the pointer is over the widget.
	StateHovered
	// StatePressed is reported while a press is held on the widget.
	StatePressed
)

const (
	// TypePress is reported for the first pointer press.
	TypePress ClickType = iota
	// TypeClick is reported when a click action is complete.
	TypeClick
)

// Update processes the cycle's events for the widget behind src and
// returns the click events it completed.
func (c *Click) Update(src input.Source) []ClickEvent {
	var events []ClickEvent
	for _, e := range src.Presses(pointer.ButtonLeft) {
		if c.state == StatePressed || !src.MouseIsOver() {
			continue
		}
		c.state = StatePressed
		events = append(events, ClickEvent{Type: TypePress, Position: e.Position, Modifiers: e.Modifiers})
	}
	for _, e := range src.LeftClicks() {
		wasPressed := c.state == StatePressed
		c.state = StateNormal
		if wasPressed {
			events = append(events, ClickEvent{Type: TypeClick, Position: e.Position, Modifiers: e.Modifiers})
		}
	}
	if c.state != StatePressed {
		if src.MouseIsOver() {
			c.state = StateHovered
		} else {
			c.state = StateNormal
		}
	}
	// A completed drag abandons the press without a click.
	for _, e := range src.Drags(pointer.ButtonLeft) {
		if !e.InProgress && c.state == StatePressed {
			c.state = StateNormal
		}
	}
	return events
}

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// Update processes the cycle's drags of button b and returns them.
func (d *Drag) Update(src input.Source, b pointer.Button) []input.DragEvent {
	drags := src.Drags(b)
	for _, e := range drags {
		d.dragging = e.InProgress
		d.start = e.Origin
	}
	return drags
}

// Dragging reports whether a drag is in progress.
func (d *Drag) Dragging() bool {
	return d.dragging
}

// Start returns the origin of the last observed drag, in the
// widget-local space of the Source that saw it.
func (d *Drag) Start() f32.Point {
	return d.start
}

func (ct ClickType) String() string {
	switch ct {
	case TypePress:
		return "TypePress"
	case TypeClick:
		return "TypeClick"
	default:
		panic("invalid ClickType")
	}
}

func (cs ClickState) String() string {
	switch cs {
	case StateNormal:
		return "StateNormal"
	case StateHovered:
		return "StateHovered"
	case StatePressed:
		return "StatePressed"
	default:
		panic("invalid ClickState")
	}
}
