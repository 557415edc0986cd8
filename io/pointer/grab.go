// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import "github.com/PistonDevelopers/conrod-go/widget"

// GrabCmd requests exclusive mouse capture for a widget. The capture
// transition is expressed as synthesized events in the cycle's log,
// never as silent state mutation.
type GrabCmd struct {
	Widget widget.Id
}

// ReleaseGrabCmd releases the mouse capture held by Widget. If Widget
// does not hold the capture, the command is a no-op.
type ReleaseGrabCmd struct {
	Widget widget.Id
}

func (GrabCmd) ImplementsCommand()        {}
func (ReleaseGrabCmd) ImplementsCommand() {}
