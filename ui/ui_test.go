// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"image/color"
	"testing"

	"github.com/PistonDevelopers/conrod-go/config"
	"github.com/PistonDevelopers/conrod-go/f32"
	"github.com/PistonDevelopers/conrod-go/input"
	"github.com/PistonDevelopers/conrod-go/io/event"
	"github.com/PistonDevelopers/conrod-go/io/pointer"
	"github.com/PistonDevelopers/conrod-go/io/system"
	"github.com/PistonDevelopers/conrod-go/widget"
)

// toggle is a minimal widget: its state is whether the left button
// was clicked an odd number of times.
type toggle struct {
	id    widget.Id
	rect  f32.Rectangle
	state *widget.State[bool]
	on    bool
}

func newToggle(t *testing.T, u *Ui, rect f32.Rectangle) *toggle {
	t.Helper()
	id, err := u.Ids().Next()
	if err != nil {
		t.Fatal(err)
	}
	return &toggle{id: id, rect: rect, state: widget.NewState[bool]()}
}

func (w *toggle) update(u *Ui) {
	src := u.Place(w.id, w.rect)
	Update(u, w.id, w.state, func() bool {
		on := w.on
		for range src.LeftClicks() {
			on = !on
		}
		w.on = on
		return on
	})
	u.Ops().Rect(w.id, w.rect, color.NRGBA{A: 0xff})
}

// cycle runs one full update cycle and returns the primitive count
// DrawIfChanged yielded, or -1 when it yielded nothing.
func cycle(u *Ui, w *toggle, events ...event.Event) int {
	u.Queue(events...)
	w.update(u)
	n := -1
	if ops, ok := u.DrawIfChanged(); ok {
		n = ops.Len()
	}
	u.Frame()
	return n
}

func TestDrawIfChangedGatesOnStateChanges(t *testing.T) {
	u := New()
	w := newToggle(t, u, f32.Rect(0, 0, 100, 50))

	// First cycle renders: the state is freshly committed.
	if n := cycle(u, w); n != 1 {
		t.Fatalf("first cycle yielded %d primitives, expected 1", n)
	}
	// Two identical cycles yield nothing.
	if n := cycle(u, w); n != -1 {
		t.Errorf("unchanged cycle yielded %d primitives", n)
	}
	if n := cycle(u, w); n != -1 {
		t.Errorf("unchanged cycle yielded %d primitives", n)
	}
	// A click flips the state and triggers a draw.
	n := cycle(u, w,
		pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft, Position: f32.Pt(10, 10)},
		pointer.Event{Kind: pointer.Release, Button: pointer.ButtonLeft, Position: f32.Pt(10, 10)},
	)
	if n != 1 {
		t.Errorf("click cycle yielded %d primitives, expected 1", n)
	}
	if !w.state.Value() {
		t.Error("click did not flip the toggle")
	}
	// And the next idle cycle is quiet again.
	if n := cycle(u, w); n != -1 {
		t.Errorf("post-click cycle yielded %d primitives", n)
	}
}

func TestUnvisitedWidgetsDoNotContribute(t *testing.T) {
	u := New()
	w := newToggle(t, u, f32.Rect(0, 0, 100, 50))
	cycle(u, w)

	// A cycle that rebuilds nothing has no changes to aggregate,
	// whatever happened in earlier cycles.
	u.Queue()
	if u.NeedsRedraw() {
		t.Error("redraw flag set with no widgets visited")
	}
	if _, ok := u.DrawIfChanged(); ok {
		t.Error("DrawIfChanged yielded with no widgets visited")
	}
	u.Frame()
}

func TestChangedTracksPerWidget(t *testing.T) {
	u := New()
	a := newToggle(t, u, f32.Rect(0, 0, 100, 50))
	b := newToggle(t, u, f32.Rect(0, 50, 100, 100))
	a.update(u)
	b.update(u)
	u.Frame()

	// A click on a flips only a's state.
	u.Queue(
		pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft, Position: f32.Pt(10, 10)},
		pointer.Event{Kind: pointer.Release, Button: pointer.ButtonLeft, Position: f32.Pt(10, 10)},
	)
	a.update(u)
	b.update(u)
	if !u.Changed(a.id) {
		t.Error("clicked widget not reported changed")
	}
	if u.Changed(b.id) {
		t.Error("idle widget reported changed")
	}
	u.Frame()
	if u.Changed(a.id) {
		t.Error("change record survived the frame")
	}
}

func TestDamageCoversChangedWidgetBounds(t *testing.T) {
	u := New()
	a := newToggle(t, u, f32.Rect(0, 0, 100, 50))
	b := newToggle(t, u, f32.Rect(0, 50, 100, 100))
	a.update(u)
	b.update(u)
	// The first cycle commits both states, so damage spans both.
	if dmg, ok := u.Damage(); !ok || dmg != f32.Rect(0, 0, 100, 100) {
		t.Errorf("first cycle damage %v (ok=%v), expected full span", dmg, ok)
	}
	u.Frame()

	u.Queue(
		pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft, Position: f32.Pt(10, 60)},
		pointer.Event{Kind: pointer.Release, Button: pointer.ButtonLeft, Position: f32.Pt(10, 60)},
	)
	a.update(u)
	b.update(u)
	if dmg, ok := u.Damage(); !ok || dmg != b.rect {
		t.Errorf("damage %v (ok=%v), expected %v", dmg, ok, b.rect)
	}
	u.Frame()

	// A quiet cycle has nothing to repaint.
	a.update(u)
	b.update(u)
	if _, ok := u.Damage(); ok {
		t.Error("idle cycle reported damage")
	}
}

func TestPlaceClipsToWindow(t *testing.T) {
	u := New()
	u.Queue(system.ResizeEvent{Size: f32.Pt(100, 100)})
	w := newToggle(t, u, f32.Rect(50, 0, 200, 50))
	cycle(u, w)

	// A press beyond the window edge misses the clipped rect.
	u.Queue(pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft, Position: f32.Pt(150, 25)})
	src := u.Place(w.id, w.rect)
	if n := len(src.Captures()); n != 0 {
		t.Errorf("press outside the window captured the widget (%d transitions)", n)
	}
	u.Queue(pointer.Event{Kind: pointer.Release, Button: pointer.ButtonLeft, Position: f32.Pt(150, 25)})
	u.Frame()

	// Inside the window the same widget still hits.
	u.Queue(pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft, Position: f32.Pt(75, 25)})
	src = u.Place(w.id, w.rect)
	captured := false
	for _, c := range src.Captures() {
		if c.Device == input.Mouse && c.Capture {
			captured = true
		}
	}
	if !captured {
		t.Error("press inside the window did not capture the widget")
	}
	u.Frame()
}

func TestPressCapturesPlacedWidget(t *testing.T) {
	u := New()
	w := newToggle(t, u, f32.Rect(0, 0, 100, 50))
	// First cycle registers geometry for hit testing.
	cycle(u, w)

	u.Queue(pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft, Position: f32.Pt(10, 10)})
	w.update(u)
	src := u.Place(w.id, w.rect)
	found := false
	for _, c := range src.Captures() {
		if c.Device == input.Mouse && c.Capture && c.Widget == w.id {
			found = true
		}
	}
	if !found {
		t.Error("press inside the placed rect did not capture the widget")
	}
	u.Frame()
}

func TestCursorHintResetsEachFrame(t *testing.T) {
	u := New()
	u.SetCursor(pointer.CursorPointer)
	if u.Cursor() != pointer.CursorPointer {
		t.Fatal("cursor hint not recorded")
	}
	u.Frame()
	if u.Cursor() != pointer.CursorDefault {
		t.Error("cursor hint survived the frame")
	}
}

func TestWithInputAppliesTuning(t *testing.T) {
	u := New(WithInput(config.Input{DragThresholdDp: 30}))
	w := newToggle(t, u, f32.Rect(0, 0, 100, 50))
	cycle(u, w)

	// A 20px move stays a click under the widened threshold.
	n := cycle(u, w,
		pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft, Position: f32.Pt(10, 10)},
		pointer.Event{Kind: pointer.Release, Button: pointer.ButtonLeft, Position: f32.Pt(30, 10)},
	)
	if n == -1 {
		t.Error("click under widened threshold did not flip the toggle")
	}
}
