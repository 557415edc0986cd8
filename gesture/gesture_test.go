// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"testing"

	"github.com/PistonDevelopers/conrod-go/f32"
	"github.com/PistonDevelopers/conrod-go/input"
	"github.com/PistonDevelopers/conrod-go/io/pointer"
	"github.com/PistonDevelopers/conrod-go/widget"
)

const clickable widget.Id = 1

var clickRect = f32.Rect(0, 0, 100, 50)

func clickRouter() *input.Router {
	r := new(input.Router)
	r.SetHitTest(func(p f32.Point) widget.Id {
		if clickRect.Contains(p) {
			return clickable
		}
		return 0
	})
	return r
}

func TestClickPressAndComplete(t *testing.T) {
	r := clickRouter()
	var c Click

	r.Queue(
		pointer.Event{Kind: pointer.Move, Position: f32.Pt(10, 10)},
		pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft, Position: f32.Pt(10, 10)},
	)
	evts := c.Update(r.SourceFor(clickable, clickRect))
	if len(evts) != 1 || evts[0].Type != TypePress {
		t.Fatalf("got %v, expected a single TypePress", evts)
	}
	if c.State() != StatePressed {
		t.Fatalf("state %v, expected StatePressed", c.State())
	}
	r.Frame()

	r.Queue(pointer.Event{Kind: pointer.Release, Button: pointer.ButtonLeft, Position: f32.Pt(11, 10)})
	evts = c.Update(r.SourceFor(clickable, clickRect))
	if len(evts) != 1 || evts[0].Type != TypeClick {
		t.Fatalf("got %v, expected a single TypeClick", evts)
	}
	if c.State() != StateHovered {
		t.Errorf("state %v after click with cursor over, expected StateHovered", c.State())
	}
}

func TestClickAbandonedByDrag(t *testing.T) {
	r := clickRouter()
	var c Click

	r.Queue(
		pointer.Event{Kind: pointer.Move, Position: f32.Pt(10, 10)},
		pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft, Position: f32.Pt(10, 10)},
		pointer.Event{Kind: pointer.Move, Position: f32.Pt(60, 10)},
		pointer.Event{Kind: pointer.Release, Button: pointer.ButtonLeft, Position: f32.Pt(60, 10)},
	)
	evts := c.Update(r.SourceFor(clickable, clickRect))
	for _, e := range evts {
		if e.Type == TypeClick {
			t.Error("drag completed as a click")
		}
	}
	if c.State() == StatePressed {
		t.Error("state still pressed after the drag released")
	}
}

func TestHoverState(t *testing.T) {
	r := clickRouter()
	var c Click

	r.Queue(pointer.Event{Kind: pointer.Move, Position: f32.Pt(10, 10)})
	c.Update(r.SourceFor(clickable, clickRect))
	if c.State() != StateHovered {
		t.Errorf("state %v with cursor over, expected StateHovered", c.State())
	}
	r.Frame()

	r.Queue(pointer.Event{Kind: pointer.Move, Position: f32.Pt(200, 10)})
	c.Update(r.SourceFor(clickable, clickRect))
	if c.State() != StateNormal {
		t.Errorf("state %v with cursor away, expected StateNormal", c.State())
	}
}

func TestDragTracksProgress(t *testing.T) {
	r := clickRouter()
	var d Drag

	r.Queue(
		pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft, Position: f32.Pt(10, 10)},
		pointer.Event{Kind: pointer.Move, Position: f32.Pt(40, 10)},
	)
	drags := d.Update(r.SourceFor(clickable, clickRect), pointer.ButtonLeft)
	if len(drags) != 1 {
		t.Fatalf("got %d drags, expected 1", len(drags))
	}
	if !d.Dragging() {
		t.Error("drag not reported in progress")
	}
	r.Frame()

	r.Queue(pointer.Event{Kind: pointer.Release, Button: pointer.ButtonLeft, Position: f32.Pt(40, 10)})
	d.Update(r.SourceFor(clickable, clickRect), pointer.ButtonLeft)
	if d.Dragging() {
		t.Error("drag still in progress after release")
	}
}
