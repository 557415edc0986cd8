// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"strings"

	"github.com/PistonDevelopers/conrod-go/f32"
	"github.com/PistonDevelopers/conrod-go/io/event"
	"github.com/PistonDevelopers/conrod-go/io/key"
	"github.com/PistonDevelopers/conrod-go/io/pointer"
	"github.com/PistonDevelopers/conrod-go/widget"
)

// Source is one widget's view of the cycle's event log. Events are
// filtered by capture: while a different widget captures the mouse,
// mouse-sourced events are invisible, and likewise for the keyboard.
// Scroll deltas and modifier state bypass capture gating. Positions
// in returned events are translated into the widget's local
// coordinate space, with the widget rectangle's minimum as origin.
type Source struct {
	r    *Router
	id   widget.Id
	rect f32.Rectangle
}

// SourceFor returns the scoped view for the widget occupying rect.
func (r *Router) SourceFor(id widget.Id, rect f32.Rectangle) Source {
	return Source{r: r, id: id, rect: rect}
}

// Widget returns the id the source is scoped to.
func (s Source) Widget() widget.Id {
	return s.id
}

// MousePosition returns the mouse position in widget-local
// coordinates.
func (s Source) MousePosition() f32.Point {
	return s.r.current.MousePosition.Sub(s.rect.Min)
}

// MouseIsOver reports whether the mouse is inside the widget's
// rectangle. Containment is tested against the global mouse
// position.
func (s Source) MouseIsOver() bool {
	return s.rect.Contains(s.r.current.MousePosition)
}

// State returns the current input state translated into widget-local
// coordinates.
func (s Source) State() State {
	return s.r.current.clone().RelativeTo(s.rect.Min)
}

// Modifiers returns the current modifier set. Modifier state bypasses
// capture gating.
func (s Source) Modifiers() key.Modifiers {
	return s.r.current.Modifiers
}

// LeftClicks returns the cycle's visible left button clicks.
func (s Source) LeftClicks() []ClickEvent {
	return s.Clicks(pointer.ButtonLeft)
}

// Clicks returns the cycle's visible clicks of button b, with click
// locations in widget-local coordinates.
func (s Source) Clicks(b pointer.Button) []ClickEvent {
	var clicks []ClickEvent
	s.each(func(e event.Event) {
		if c, ok := e.(ClickEvent); ok && c.Button == b {
			c.Position = c.Position.Sub(s.rect.Min)
			clicks = append(clicks, c)
		}
	})
	return clicks
}

// Drags returns the cycle's visible drags of button b, with origins
// and positions in widget-local coordinates.
func (s Source) Drags(b pointer.Button) []DragEvent {
	var drags []DragEvent
	s.each(func(e event.Event) {
		if d, ok := e.(DragEvent); ok && d.Button == b {
			d.Origin = d.Origin.Sub(s.rect.Min)
			d.Position = d.Position.Sub(s.rect.Min)
			drags = append(drags, d)
		}
	})
	return drags
}

// Scroll returns the cycle's scroll deltas summed per axis, and
// whether any scrolling happened. Scrolling bypasses capture gating.
// The modifier set is the one active at the last scroll.
func (s Source) Scroll() (ScrollEvent, bool) {
	var total ScrollEvent
	any := false
	s.each(func(e event.Event) {
		if sc, ok := e.(ScrollEvent); ok {
			total.Delta = total.Delta.Add(sc.Delta)
			total.Modifiers = sc.Modifiers
			any = true
		}
	})
	return total, any
}

// Presses returns the cycle's visible raw presses of button b, with
// positions in widget-local coordinates.
func (s Source) Presses(b pointer.Button) []pointer.Event {
	return s.rawButton(b, pointer.Press)
}

// Releases returns the cycle's visible raw releases of button b, with
// positions in widget-local coordinates.
func (s Source) Releases(b pointer.Button) []pointer.Event {
	return s.rawButton(b, pointer.Release)
}

func (s Source) rawButton(b pointer.Button, k pointer.Kind) []pointer.Event {
	var evts []pointer.Event
	s.each(func(e event.Event) {
		if pe, ok := e.(pointer.Event); ok && pe.Kind == k && pe.Button == b && pe.Source == pointer.Mouse {
			pe.Position = pe.Position.Sub(s.rect.Min)
			evts = append(evts, pe)
		}
	})
	return evts
}

// TextEntered returns the cycle's visible entered text, joined in
// log order. Splitting or further buffering is the caller's
// responsibility.
func (s Source) TextEntered() string {
	var b strings.Builder
	s.each(func(e event.Event) {
		if ee, ok := e.(key.EditEvent); ok {
			b.WriteString(ee.Text)
		}
	})
	return b.String()
}

// KeysJustPressed returns the names of keys pressed this cycle, in
// log order.
func (s Source) KeysJustPressed() []key.Name {
	return s.keys(key.Press)
}

// KeysJustReleased returns the names of keys released this cycle, in
// log order.
func (s Source) KeysJustReleased() []key.Name {
	return s.keys(key.Release)
}

func (s Source) keys(state key.State) []key.Name {
	var names []key.Name
	s.each(func(e event.Event) {
		if ke, ok := e.(key.Event); ok && ke.State == state {
			names = append(names, ke.Name)
		}
	})
	return names
}

// Captures returns the cycle's capture transitions naming this
// widget, so a widget can react to gaining or losing a device.
func (s Source) Captures() []CaptureEvent {
	var evts []CaptureEvent
	s.each(func(e event.Event) {
		if ce, ok := e.(CaptureEvent); ok && ce.Widget == s.id {
			evts = append(evts, ce)
		}
	})
	return evts
}

// each walks the log with capture gating applied. The capturing
// widget is tracked along the walk, so events synthesized before a
// capture transition are gated by the owner they had at synthesis
// time.
func (s Source) each(fn func(e event.Event)) {
	mouseCap := s.r.start.MouseCapture
	keyCap := s.r.start.KeyboardCapture
	for _, e := range s.r.log {
		visible := true
		switch e := e.(type) {
		case CaptureEvent:
			switch {
			case e.Device == Mouse && e.Capture:
				mouseCap = e.Widget
			case e.Device == Mouse:
				mouseCap = 0
			case e.Device == Keyboard && e.Capture:
				keyCap = e.Widget
			default:
				keyCap = 0
			}
		case ClickEvent, DragEvent:
			visible = mouseCap == 0 || mouseCap == s.id
		case pointer.Event:
			if e.Source == pointer.Mouse && e.Kind != pointer.Scroll {
				visible = mouseCap == 0 || mouseCap == s.id
			}
		case key.Event, key.EditEvent:
			visible = keyCap == 0 || keyCap == s.id
		}
		if visible {
			fn(e)
		}
	}
}
