// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"fmt"

	"github.com/PistonDevelopers/conrod-go/f32"
	"github.com/PistonDevelopers/conrod-go/io/key"
	"github.com/PistonDevelopers/conrod-go/io/pointer"
	"github.com/PistonDevelopers/conrod-go/widget"
)

// Device is an input source a widget can capture.
type Device uint8

const (
	// Mouse input: cursor position, buttons, scroll wheels.
	Mouse Device = iota
	// Keyboard input: keys and entered text.
	Keyboard
)

// A ClickEvent is synthesized when a button is released close enough
// to where it was pressed.
type ClickEvent struct {
	Button pointer.Button
	// Position is where the press happened.
	Position  f32.Point
	Modifiers key.Modifiers
}

// A DragEvent is synthesized when a pressed button has moved past the
// drag threshold. While the button is held, qualifying moves repeat
// the event with InProgress set; the release emits a final event with
// InProgress cleared.
type DragEvent struct {
	Button pointer.Button
	// Origin is where the press happened.
	Origin f32.Point
	// Position is the pointer position when the event fired.
	Position   f32.Point
	Modifiers  key.Modifiers
	InProgress bool
}

// A ScrollEvent carries one raw scroll's delta. Deltas within a cycle
// are summed by the query layer, not collapsed at synthesis time.
type ScrollEvent struct {
	Delta     f32.Point
	Modifiers key.Modifiers
}

// A CaptureEvent records a transfer of exclusive ownership of an
// input device. Ownership changes always appear as paired log
// entries: an uncapture for the previous owner, if any, then a
// capture for the new one.
type CaptureEvent struct {
	Device Device
	// Capture is true when Widget gains the device, false when it
	// loses it.
	Capture bool
	Widget  widget.Id
}

// Command is a request to the Router, such as a capture transfer.
type Command interface {
	ImplementsCommand()
}

func (d Device) String() string {
	switch d {
	case Mouse:
		return "Mouse"
	case Keyboard:
		return "Keyboard"
	default:
		panic("unknown Device")
	}
}

func (e CaptureEvent) String() string {
	verb := "Uncapture"
	if e.Capture {
		verb = "Capture"
	}
	return fmt.Sprintf("%s%s(%d)", verb, e.Device, e.Widget)
}

func (ClickEvent) ImplementsEvent()   {}
func (DragEvent) ImplementsEvent()    {}
func (ScrollEvent) ImplementsEvent()  {}
func (CaptureEvent) ImplementsEvent() {}
