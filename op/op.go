// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op holds the drawing primitives recorded during a tree
rebuild.

An Ops buffer is recorded by widgets and replayed by a renderer. The
primitives are deliberately minimal; resolving colors, fonts and
image references is the renderer's concern.
*/
package op

import (
	"image/color"

	"github.com/PistonDevelopers/conrod-go/f32"
	"github.com/PistonDevelopers/conrod-go/widget"
)

// Kind of a Primitive.
type Kind uint8

const (
	// KindRect is a filled rectangle.
	KindRect Kind = iota
	// KindOutline is a stroked rectangle.
	KindOutline
	// KindProse is a text run. Shaping happens in the renderer.
	KindProse
	// KindImage references a renderer-owned image resource.
	KindImage
)

// Primitive is one drawing command, tagged with the widget that
// recorded it.
type Primitive struct {
	Widget widget.Id
	Kind   Kind
	Bounds f32.Rectangle
	Color  color.NRGBA
	// Text is the run for KindProse primitives.
	Text string
	// Ref is the resource reference for KindImage primitives.
	Ref int
}

// Ops is an append-only list of primitives. The zero value is an
// empty list.
type Ops struct {
	prims []Primitive
}

// Reset empties the buffer, retaining its capacity.
func (o *Ops) Reset() {
	o.prims = o.prims[:0]
}

// Rect records a filled rectangle.
func (o *Ops) Rect(id widget.Id, bounds f32.Rectangle, col color.NRGBA) {
	o.prims = append(o.prims, Primitive{Widget: id, Kind: KindRect, Bounds: bounds, Color: col})
}

// Outline records a stroked rectangle.
func (o *Ops) Outline(id widget.Id, bounds f32.Rectangle, col color.NRGBA) {
	o.prims = append(o.prims, Primitive{Widget: id, Kind: KindOutline, Bounds: bounds, Color: col})
}

// Prose records a text run.
func (o *Ops) Prose(id widget.Id, bounds f32.Rectangle, col color.NRGBA, text string) {
	o.prims = append(o.prims, Primitive{Widget: id, Kind: KindProse, Bounds: bounds, Color: col, Text: text})
}

// Image records an image reference.
func (o *Ops) Image(id widget.Id, bounds f32.Rectangle, ref int) {
	o.prims = append(o.prims, Primitive{Widget: id, Kind: KindImage, Bounds: bounds, Ref: ref})
}

// Primitives returns the recorded primitives in record order. The
// returned slice is valid until the next Reset.
func (o *Ops) Primitives() []Primitive {
	return o.prims
}

// Len reports the number of recorded primitives.
func (o *Ops) Len() int {
	return len(o.prims)
}
