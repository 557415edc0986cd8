// SPDX-License-Identifier: Unlicense OR MIT

package key

import "github.com/PistonDevelopers/conrod-go/widget"

// FocusCmd requests exclusive keyboard capture for a widget. The
// capture transition is expressed as synthesized events in the
// cycle's log, never as silent state mutation.
type FocusCmd struct {
	Widget widget.Id
}

// ReleaseFocusCmd releases the keyboard capture held by Widget. If
// Widget does not hold the capture, the command is a no-op.
type ReleaseFocusCmd struct {
	Widget widget.Id
}

func (FocusCmd) ImplementsCommand()        {}
func (ReleaseFocusCmd) ImplementsCommand() {}
