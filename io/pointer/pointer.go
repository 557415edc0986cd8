// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements raw pointer events.
package pointer

import (
	"fmt"
	"strings"
	"time"

	"github.com/PistonDevelopers/conrod-go/f32"
	"github.com/PistonDevelopers/conrod-go/io/key"
)

// Event is a raw pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID is the id for the pointer and can be used to track a
	// particular touch point from Press to Release.
	PointerID ID
	// Time is when the event was received. The timestamp is relative
	// to an undefined base.
	Time time.Duration
	// Button is the button the event concerns, for Press and Release.
	Button Button
	// Position is the coordinates of the event in window space.
	Position f32.Point
	// Scroll is the scroll amount, if any.
	Scroll f32.Point
	// Modifiers is the set of active modifiers when the event was
	// fired.
	Modifiers key.Modifiers
}

// ID identifies a pointer, such as a touch point.
type ID uint16

// Kind of an Event.
type Kind uint8

// Source of an Event.
type Source uint8

// Button is a mouse button.
type Button uint8

// Cursor denotes a pre-defined cursor shape, reported to the host
// window system as a hint. The cursors correspond to CSS pointer
// naming.
type Cursor byte

const (
	// Press of a pointer button.
	Press Kind = iota
	// Release of a pointer button.
	Release
	// Move of a pointer.
	Move
	// Scroll of a pointer.
	Scroll
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

const (
	// ButtonLeft is the left mouse button.
	ButtonLeft Button = iota
	// ButtonRight is the right mouse button.
	ButtonRight
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonX1 is the first extra mouse button, usually "back".
	ButtonX1
	// ButtonX2 is the second extra mouse button, usually "forward".
	ButtonX2
	// Button6 through Button8 are further device specific buttons.
	Button6
	Button7
	Button8
	// ButtonUnknown is reported for buttons the platform cannot name.
	ButtonUnknown

	// NumButtons is the number of distinguishable buttons.
	NumButtons = int(ButtonUnknown) + 1
)

const (
	// CursorDefault is the default cursor.
	CursorDefault Cursor = iota
	// CursorNone hides the cursor. To show it again, use any other
	// cursor.
	CursorNone
	// CursorText is for selecting and inserting text.
	CursorText
	// CursorPointer is for a link. Usually displayed as a pointing
	// hand.
	CursorPointer
	// CursorCrosshair is for a precise location.
	CursorCrosshair
	// CursorGrab is for content that can be dragged to be moved.
	CursorGrab
	// CursorGrabbing is for content that is being dragged.
	CursorGrabbing
	// CursorNotAllowed is shown when the requested action cannot be
	// carried out.
	CursorNotAllowed
	// CursorWait is shown when the program is busy.
	CursorWait
	// CursorNorthSouthResize is for top-bottom resizing.
	CursorNorthSouthResize
	// CursorEastWestResize is for left-right resizing.
	CursorEastWestResize
)

func (t Kind) String() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Scroll:
		return "Scroll"
	default:
		panic("unknown Kind")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown Source")
	}
}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "ButtonLeft"
	case ButtonRight:
		return "ButtonRight"
	case ButtonMiddle:
		return "ButtonMiddle"
	case ButtonX1:
		return "ButtonX1"
	case ButtonX2:
		return "ButtonX2"
	case Button6:
		return "Button6"
	case Button7:
		return "Button7"
	case Button8:
		return "Button8"
	case ButtonUnknown:
		return "ButtonUnknown"
	default:
		panic("unknown Button")
	}
}

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "Default"
	case CursorNone:
		return "None"
	case CursorText:
		return "Text"
	case CursorPointer:
		return "Pointer"
	case CursorCrosshair:
		return "Crosshair"
	case CursorGrab:
		return "Grab"
	case CursorGrabbing:
		return "Grabbing"
	case CursorNotAllowed:
		return "NotAllowed"
	case CursorWait:
		return "Wait"
	case CursorNorthSouthResize:
		return "NorthSouthResize"
	case CursorEastWestResize:
		return "EastWestResize"
	default:
		panic("unknown Cursor")
	}
}

func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Source, e.Kind)
	switch e.Kind {
	case Press, Release:
		fmt.Fprintf(&b, " %s@%s", e.Button, e.Position)
	case Move:
		fmt.Fprintf(&b, " %s", e.Position)
	case Scroll:
		fmt.Fprintf(&b, " %s", e.Scroll)
	}
	return b.String()
}

func (Event) ImplementsEvent() {}
