// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input synthesizes semantic interaction events from raw device
events.

A Router folds the cycle's ordered raw event stream into its current
State and appends both the raw events and the synthesized semantic
events (clicks, drags, scrolls, capture transitions) to a per-cycle
log. During the tree rebuild each widget reads the log through a
Source, a capture-aware view translated into the widget's local
coordinates.
*/
package input

import (
	"github.com/PistonDevelopers/conrod-go/f32"
	"github.com/PistonDevelopers/conrod-go/io/event"
	"github.com/PistonDevelopers/conrod-go/io/key"
	"github.com/PistonDevelopers/conrod-go/io/pointer"
	"github.com/PistonDevelopers/conrod-go/io/system"
	"github.com/PistonDevelopers/conrod-go/unit"
	"github.com/PistonDevelopers/conrod-go/widget"
)

// defaultDragThreshold is the minimum distance between a press and
// the current position for movement to classify as a drag rather
// than a click.
const defaultDragThreshold = unit.Dp(4)

// Router synthesizes semantic events from raw device events. The
// zero value is ready to use.
type Router struct {
	// DragThreshold overrides the 4dp default when non-zero.
	DragThreshold unit.Dp
	// InvertScroll flips the sign of scroll deltas, for natural
	// scrolling hosts.
	InvertScroll bool

	// start is the state snapshot at cycle start; current mutates as
	// the cycle's raw events are folded in.
	start, current State
	log            []event.Event
	metric         unit.Metric
	hitTest        func(f32.Point) widget.Id
}

// SetHitTest installs the function resolving the widget under a
// window-space point. The cycle driver owns the widget geometry; the
// Router only consults it to tag presses and touches.
func (r *Router) SetHitTest(hit func(f32.Point) widget.Id) {
	r.hitTest = hit
}

// Queue folds raw events into the current state and appends the raw
// and synthesized events to the cycle's log. Malformed orderings,
// such as a release without a matching press, are absorbed as no-ops
// and never interrupt the remainder of the stream.
func (r *Router) Queue(events ...event.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case pointer.Event:
			r.queuePointer(e)
		case key.Event:
			r.queueKey(e)
		case key.EditEvent:
			r.log = append(r.log, e)
		case system.ResizeEvent:
			r.metric = e.Metric
			r.log = append(r.log, e)
		case system.FocusEvent:
			r.queueFocus(e)
		default:
			r.log = append(r.log, e)
		}
	}
}

func (r *Router) queuePointer(e pointer.Event) {
	if e.Source == pointer.Touch {
		r.queueTouch(e)
		return
	}
	switch e.Kind {
	case pointer.Press:
		under := r.hit(e.Position)
		r.captureMouse(under)
		r.current.Buttons[e.Button] = ButtonState{
			Down:   true,
			Origin: e.Position,
			Widget: under,
		}
		r.log = append(r.log, e)
	case pointer.Release:
		r.log = append(r.log, e)
		bs := r.current.Buttons[e.Button]
		if !bs.Down {
			// Stale release, for example after focus loss ate the
			// press. Benign.
			return
		}
		r.current.Buttons[e.Button] = ButtonState{}
		if bs.Origin.Dist(e.Position) > r.threshold() {
			r.log = append(r.log, DragEvent{
				Button:    e.Button,
				Origin:    bs.Origin,
				Position:  e.Position,
				Modifiers: r.current.Modifiers,
			})
		} else {
			r.log = append(r.log, ClickEvent{
				Button:    e.Button,
				Position:  bs.Origin,
				Modifiers: r.current.Modifiers,
			})
		}
		r.releaseImplicitGrab(bs.Widget)
	case pointer.Move:
		r.current.MousePosition = e.Position
		r.log = append(r.log, e)
		for b := range r.current.Buttons {
			bs := r.current.Buttons[b]
			if !bs.Down || bs.Origin.Dist(e.Position) <= r.threshold() {
				continue
			}
			r.log = append(r.log, DragEvent{
				Button:     pointer.Button(b),
				Origin:     bs.Origin,
				Position:   e.Position,
				Modifiers:  r.current.Modifiers,
				InProgress: true,
			})
		}
	case pointer.Scroll:
		delta := e.Scroll
		if r.InvertScroll {
			delta = delta.Mul(-1)
		}
		r.log = append(r.log, e)
		r.log = append(r.log, ScrollEvent{
			Delta:     delta,
			Modifiers: r.current.Modifiers,
		})
	}
}

func (r *Router) queueTouch(e pointer.Event) {
	switch e.Kind {
	case pointer.Press:
		if r.current.Touches == nil {
			r.current.Touches = make(map[pointer.ID]TouchState)
		}
		r.current.Touches[e.PointerID] = TouchState{
			Start:  e.Time,
			Origin: e.Position,
			Last:   e.Position,
			Widget: r.hit(e.Position),
		}
	case pointer.Move:
		if t, ok := r.current.Touches[e.PointerID]; ok {
			t.Last = e.Position
			r.current.Touches[e.PointerID] = t
		}
	case pointer.Release:
		delete(r.current.Touches, e.PointerID)
	}
	r.log = append(r.log, e)
}

func (r *Router) queueKey(e key.Event) {
	if mod := key.ModifierFor(e.Name); mod != 0 {
		// Left and right variants are tracked independently.
		switch e.State {
		case key.Press:
			r.current.Modifiers |= mod
		case key.Release:
			r.current.Modifiers &^= mod
		}
	}
	e.Modifiers = r.current.Modifiers
	r.log = append(r.log, e)
}

func (r *Router) queueFocus(e system.FocusEvent) {
	if !e.Focus {
		// Losing window focus eats releases. Drop pending button and
		// modifier state so no gesture is left stuck; pending presses
		// synthesize nothing. With every button up, no grab can
		// persist either, so the transition is logged like any other.
		r.current.Buttons = [pointer.NumButtons]ButtonState{}
		r.current.Modifiers = 0
		r.captureMouse(0)
	}
	r.log = append(r.log, e)
}

// Execute applies a capture command. Transitions appear as paired
// CaptureEvents in the log. An uncapture naming a widget that does
// not hold the capture is a no-op.
func (r *Router) Execute(c Command) {
	switch c := c.(type) {
	case pointer.GrabCmd:
		r.captureMouse(c.Widget)
	case pointer.ReleaseGrabCmd:
		if r.current.MouseCapture != c.Widget {
			return
		}
		r.captureMouse(0)
	case key.FocusCmd:
		r.captureKeyboard(c.Widget)
	case key.ReleaseFocusCmd:
		if r.current.KeyboardCapture != c.Widget {
			return
		}
		r.captureKeyboard(0)
	}
}

func (r *Router) captureMouse(w widget.Id) {
	if r.current.MouseCapture == w {
		return
	}
	if old := r.current.MouseCapture; old != 0 {
		r.log = append(r.log, CaptureEvent{Device: Mouse, Widget: old})
	}
	if w != 0 {
		r.log = append(r.log, CaptureEvent{Device: Mouse, Capture: true, Widget: w})
	}
	r.current.MouseCapture = w
}

func (r *Router) captureKeyboard(w widget.Id) {
	if r.current.KeyboardCapture == w {
		return
	}
	if old := r.current.KeyboardCapture; old != 0 {
		r.log = append(r.log, CaptureEvent{Device: Keyboard, Widget: old})
	}
	if w != 0 {
		r.log = append(r.log, CaptureEvent{Device: Keyboard, Capture: true, Widget: w})
	}
	r.current.KeyboardCapture = w
}

// releaseImplicitGrab drops the mouse capture a press acquired for w
// once no button holds the widget down anymore. Captures taken with
// GrabCmd follow the same rule; a widget that needs to hold the
// mouse across releases re-grabs it.
func (r *Router) releaseImplicitGrab(w widget.Id) {
	if w == 0 || r.current.MouseCapture != w {
		return
	}
	for _, bs := range r.current.Buttons {
		if bs.Down && bs.Widget == w {
			return
		}
	}
	r.captureMouse(0)
}

// Frame ends the update cycle: the semantic log clears and the start
// snapshot rolls forward to the current state.
func (r *Router) Frame() {
	r.start = r.current.clone()
	r.log = r.log[:0]
}

// Events returns the cycle's log: raw events interleaved with the
// semantic events synthesized from them, in synthesis order.
func (r *Router) Events() []event.Event {
	return r.log
}

// Start returns the state snapshot taken at cycle start.
func (r *Router) Start() State {
	return r.start.clone()
}

// Current returns the state with the cycle's events folded in.
func (r *Router) Current() State {
	return r.current.clone()
}

func (r *Router) hit(p f32.Point) widget.Id {
	if r.hitTest == nil {
		return 0
	}
	return r.hitTest(p)
}

func (r *Router) threshold() float32 {
	t := r.DragThreshold
	if t == 0 {
		t = defaultDragThreshold
	}
	return r.metric.Dp(t)
}
