// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ui drives the update cycle.

One cycle drains raw events into the input Router, rebuilds the
widget tree (each widget reads its scoped input, recomputes its state
and records primitives), queries the aggregate change flag, and
optionally renders. Frame ends the cycle. The Ui is exclusively owned
by the cycle driver; widgets only hold the read-only scoped views it
lends out during rebuild.
*/
package ui

import (
	"github.com/PistonDevelopers/conrod-go/config"
	"github.com/PistonDevelopers/conrod-go/f32"
	"github.com/PistonDevelopers/conrod-go/input"
	"github.com/PistonDevelopers/conrod-go/io/event"
	"github.com/PistonDevelopers/conrod-go/io/pointer"
	"github.com/PistonDevelopers/conrod-go/io/system"
	"github.com/PistonDevelopers/conrod-go/op"
	"github.com/PistonDevelopers/conrod-go/unit"
	"github.com/PistonDevelopers/conrod-go/widget"
)

// Ui owns the input state, the cycle's event log and the per-cycle
// change tracking.
type Ui struct {
	ids    widget.Generator
	router input.Router
	ops    op.Ops

	// rects and order hold the geometry registered during the
	// previous rebuild. Raw events arrive before the current rebuild,
	// so hit testing runs against the last known layout.
	rects     map[widget.Id]f32.Rectangle
	order     []widget.Id
	nextRects map[widget.Id]f32.Rectangle
	nextOrder []widget.Id

	// window is the host surface, taken from the last Resize. Placed
	// rectangles are clipped to it for hit testing.
	window f32.Rectangle

	// changed records, per widget visited this cycle, whether its
	// state changed. redraw is the running OR of its values.
	changed map[widget.Id]bool
	redraw  bool
	cursor  pointer.Cursor
}

// Option configures a Ui.
type Option func(*Ui)

// WithInput applies input tuning.
func WithInput(cfg config.Input) Option {
	return func(u *Ui) {
		u.router.DragThreshold = unit.Dp(cfg.DragThresholdDp)
		u.router.InvertScroll = cfg.NaturalScroll
	}
}

// New returns a Ui ready for its first cycle.
func New(opts ...Option) *Ui {
	u := &Ui{
		rects:     make(map[widget.Id]f32.Rectangle),
		nextRects: make(map[widget.Id]f32.Rectangle),
		changed:   make(map[widget.Id]bool),
	}
	u.router.SetHitTest(u.hit)
	for _, o := range opts {
		o(u)
	}
	return u
}

// Ids returns the id arena. Widgets allocate their identities here
// the first time their call site is visited.
func (u *Ui) Ids() *widget.Generator {
	return &u.ids
}

// Queue folds raw events into the cycle.
func (u *Ui) Queue(events ...event.Event) {
	for _, e := range events {
		if re, ok := e.(system.ResizeEvent); ok {
			u.window = f32.Rectangle{Max: re.Size}
		}
	}
	u.router.Queue(events...)
}

// Execute applies a capture command.
func (u *Ui) Execute(c input.Command) {
	u.router.Execute(c)
}

// Place registers the widget's rectangle for hit testing and returns
// its scoped input view. Call it once per widget per rebuild. The
// hit-test rectangle is clipped to the window; the scoped view keeps
// the full rectangle so its coordinate origin is stable.
func (u *Ui) Place(id widget.Id, rect f32.Rectangle) input.Source {
	hitRect := rect
	if !u.window.Empty() {
		hitRect = rect.Intersect(u.window)
	}
	if _, ok := u.nextRects[id]; !ok {
		u.nextOrder = append(u.nextOrder, id)
	}
	u.nextRects[id] = hitRect
	return u.router.SourceFor(id, rect)
}

// Visit records that id was rebuilt this cycle and whether its state
// changed. The aggregate redraw flag is the OR of the changes of
// visited widgets; widgets not visited this cycle do not contribute.
func (u *Ui) Visit(id widget.Id, changed bool) {
	u.changed[id] = u.changed[id] || changed
	u.redraw = u.redraw || changed
}

// Changed reports whether id was visited this cycle with a state
// change. Renderers use it to damage-track individual widgets.
func (u *Ui) Changed(id widget.Id) bool {
	return u.changed[id]
}

// Update recomputes a widget's cached state, commits it if changed
// and folds the result into the aggregate redraw flag.
func Update[T any](u *Ui, id widget.Id, s *widget.State[T], compute func() T) bool {
	changed := s.Update(compute)
	u.Visit(id, changed)
	return changed
}

// Ops returns the primitive buffer widgets record into during
// rebuild.
func (u *Ui) Ops() *op.Ops {
	return &u.ops
}

// SetCursor sets the cursor hint reported to the host window system.
// Typically called by the hovered widget.
func (u *Ui) SetCursor(c pointer.Cursor) {
	u.cursor = c
}

// Cursor returns the current cursor hint.
func (u *Ui) Cursor() pointer.Cursor {
	return u.cursor
}

// NeedsRedraw reports the aggregate change flag for this cycle.
func (u *Ui) NeedsRedraw() bool {
	return u.redraw
}

// DrawIfChanged returns the primitives recorded this cycle if any
// visited widget's state changed, avoiding downstream render cost on
// unchanged frames. The buffer is valid until Frame.
func (u *Ui) DrawIfChanged() (*op.Ops, bool) {
	if !u.redraw {
		return nil, false
	}
	return &u.ops, true
}

// Damage returns the union of the bounds of primitives recorded by
// widgets whose state changed this cycle, and whether any did. A
// renderer may repaint just that region.
func (u *Ui) Damage() (f32.Rectangle, bool) {
	var dmg f32.Rectangle
	any := false
	for _, p := range u.ops.Primitives() {
		if !u.changed[p.Widget] {
			continue
		}
		if !any {
			dmg = p.Bounds
			any = true
		} else {
			dmg = dmg.Union(p.Bounds)
		}
	}
	return dmg, any
}

// Frame ends the cycle: the event log clears, the start state rolls
// forward, the registered geometry becomes the hit-test layout for
// the next cycle's events, and the change flag and primitive buffer
// reset.
func (u *Ui) Frame() {
	u.router.Frame()
	u.rects, u.nextRects = u.nextRects, u.rects
	u.order, u.nextOrder = u.nextOrder, u.order[:0]
	for id := range u.nextRects {
		delete(u.nextRects, id)
	}
	for id := range u.changed {
		delete(u.changed, id)
	}
	u.redraw = false
	u.cursor = pointer.CursorDefault
	u.ops.Reset()
}

// hit resolves the topmost widget under p, in last-placed-first
// order.
func (u *Ui) hit(p f32.Point) widget.Id {
	for i := len(u.order) - 1; i >= 0; i-- {
		id := u.order[i]
		if u.rects[id].Contains(p) {
			return id
		}
	}
	return 0
}
