// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"github.com/PistonDevelopers/conrod-go/f32"
	"github.com/PistonDevelopers/conrod-go/io/key"
	"github.com/PistonDevelopers/conrod-go/io/pointer"
	"github.com/PistonDevelopers/conrod-go/widget"
)

// ButtonState is the state of one mouse button.
type ButtonState struct {
	Down bool
	// Origin is where the press happened, in window space.
	Origin f32.Point
	// Widget is the widget under the cursor at press time, or zero.
	Widget widget.Id
}

// TouchState is the state of one active touch point.
type TouchState struct {
	Start  time.Duration
	Origin f32.Point
	Last   f32.Point
	// Widget is the widget under the touch at its start, or zero.
	Widget widget.Id
}

// State is the raw per-device input state: button positions, active
// touches, capturing widgets and the modifier set. A Router keeps two
// snapshots, one frozen at cycle start and one mutated as the cycle's
// raw events are folded in.
type State struct {
	Buttons       [pointer.NumButtons]ButtonState
	MousePosition f32.Point
	Touches       map[pointer.ID]TouchState
	// MouseCapture and KeyboardCapture are the widgets holding each
	// device, or zero. At most one widget captures each device.
	MouseCapture    widget.Id
	KeyboardCapture widget.Id
	Modifiers       key.Modifiers
}

// ButtonDown returns the state of b if it is currently pressed.
func (s State) ButtonDown(b pointer.Button) (ButtonState, bool) {
	bs := s.Buttons[b]
	return bs, bs.Down
}

// RelativeTo returns a copy of s with every absolute position
// translated by subtracting p, giving position-local semantics
// without mutating the global state. Translation composes
// additively:
//
//	s.RelativeTo(a).RelativeTo(b) == s.RelativeTo(a.Add(b))
func (s State) RelativeTo(p f32.Point) State {
	s.MousePosition = s.MousePosition.Sub(p)
	for i := range s.Buttons {
		if s.Buttons[i].Down {
			s.Buttons[i].Origin = s.Buttons[i].Origin.Sub(p)
		}
	}
	if s.Touches != nil {
		touches := make(map[pointer.ID]TouchState, len(s.Touches))
		for id, t := range s.Touches {
			t.Origin = t.Origin.Sub(p)
			t.Last = t.Last.Sub(p)
			touches[id] = t
		}
		s.Touches = touches
	}
	return s
}

// clone returns a copy of s that shares no mutable structure.
func (s State) clone() State {
	if s.Touches != nil {
		touches := make(map[pointer.ID]TouchState, len(s.Touches))
		for id, t := range s.Touches {
			touches[id] = t
		}
		s.Touches = touches
	}
	return s
}
