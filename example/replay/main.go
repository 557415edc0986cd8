// SPDX-License-Identifier: Unlicense OR MIT

// Command replay feeds a scripted raw event stream through the input
// core and prints the primitive batches it would hand a renderer.
// The event producer and the cycle owner run on separate goroutines
// and share no mutable core state, only channels.
package main

import (
	"image/color"
	"log"

	"github.com/PistonDevelopers/conrod-go/f32"
	"github.com/PistonDevelopers/conrod-go/gesture"
	"github.com/PistonDevelopers/conrod-go/io/event"
	"github.com/PistonDevelopers/conrod-go/io/pointer"
	"github.com/PistonDevelopers/conrod-go/op"
	"github.com/PistonDevelopers/conrod-go/ui"
	"github.com/PistonDevelopers/conrod-go/widget"
)

type counter struct {
	id    widget.Id
	rect  f32.Rectangle
	click gesture.Click
	state *widget.State[int]
}

func main() {
	cycles := make(chan []event.Event)
	frames := make(chan []op.Primitive)

	go produce(cycles)
	go run(cycles, frames)

	n := 0
	for batch := range frames {
		n++
		log.Printf("frame %d: %d primitives", n, len(batch))
		for _, p := range batch {
			log.Printf("  widget %d: %v %v", p.Widget, p.Kind, p.Bounds)
		}
	}
}

// produce scripts three cycles: a hover move, a click on the button,
// and an idle cycle that should not render.
func produce(cycles chan<- []event.Event) {
	defer close(cycles)
	cycles <- nil // first rebuild registers geometry
	cycles <- []event.Event{
		pointer.Event{Kind: pointer.Move, Position: f32.Pt(30, 20)},
	}
	cycles <- []event.Event{
		pointer.Event{Kind: pointer.Press, Button: pointer.ButtonLeft, Position: f32.Pt(30, 20)},
		pointer.Event{Kind: pointer.Release, Button: pointer.ButtonLeft, Position: f32.Pt(31, 20)},
	}
	cycles <- nil
}

// run owns the Ui for the duration of every cycle.
func run(cycles <-chan []event.Event, frames chan<- []op.Primitive) {
	defer close(frames)

	u := ui.New()
	btn := &counter{rect: f32.Rect(10, 10, 110, 40), state: widget.NewState[int]()}
	var err error
	if btn.id, err = u.Ids().Next(); err != nil {
		log.Fatal(err)
	}

	for evts := range cycles {
		u.Queue(evts...)
		btn.update(u)
		if ops, ok := u.DrawIfChanged(); ok {
			if dmg, ok := u.Damage(); ok {
				log.Printf("damage %v spanning %v", dmg, dmg.Size())
			}
			frames <- append([]op.Primitive(nil), ops.Primitives()...)
		}
		u.Frame()
	}
}

func (c *counter) update(u *ui.Ui) {
	src := u.Place(c.id, c.rect)
	clicks := c.click.Update(src)
	ui.Update(u, c.id, c.state, func() int {
		n := c.state.Value()
		for _, e := range clicks {
			if e.Type == gesture.TypeClick {
				n++
			}
		}
		return n
	})
	if c.click.State() == gesture.StateHovered {
		u.SetCursor(pointer.CursorPointer)
	}
	u.Ops().Rect(c.id, c.rect, color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff})
}
