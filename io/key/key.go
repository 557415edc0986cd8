// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements key and text events.
package key

import "strings"

// An Event is generated when a key is pressed or released. For text
// input use EditEvent.
type Event struct {
	// Name of the key.
	Name Name
	// Modifiers is the set of active modifiers when the event was fired.
	Modifiers Modifiers
	// State is the state of the key when the event was fired.
	State State
}

// An EditEvent is generated when text is entered.
type EditEvent struct {
	Text string
}

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Modifiers is a set of modifier keys. The left and right variant of
// each modifier is tracked as its own bit.
type Modifiers uint32

const (
	// ModCtrlLeft is the left ctrl key.
	ModCtrlLeft Modifiers = 1 << iota
	// ModCtrlRight is the right ctrl key.
	ModCtrlRight
	// ModShiftLeft is the left shift key.
	ModShiftLeft
	// ModShiftRight is the right shift key.
	ModShiftRight
	// ModAltLeft is the left alt key, or the left option key on Apple
	// keyboards.
	ModAltLeft
	// ModAltRight is the right alt key.
	ModAltRight
	// ModSuperLeft is the left "logo" key, often represented by a
	// Windows logo.
	ModSuperLeft
	// ModSuperRight is the right "logo" key.
	ModSuperRight
)

const (
	// ModCtrl is the set of both ctrl keys.
	ModCtrl = ModCtrlLeft | ModCtrlRight
	// ModShift is the set of both shift keys.
	ModShift = ModShiftLeft | ModShiftRight
	// ModAlt is the set of both alt keys.
	ModAlt = ModAltLeft | ModAltRight
	// ModSuper is the set of both "logo" keys.
	ModSuper = ModSuperLeft | ModSuperRight
)

// Name is the identifier for a keyboard key.
//
// For letters, the upper case form is used, via unicode.ToUpper.
// The shift modifier is taken into account, all other
// modifiers are ignored. For example, the "shift-1" and "ctrl-shift-1"
// combinations both give the Name "!" with the US keyboard layout.
type Name string

const (
	// Names for special keys.
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEnter          Name = "⌤"
	NameEscape         Name = "⎋"
	NameHome           Name = "⇱"
	NameEnd            Name = "⇲"
	NameDeleteBackward Name = "⌫"
	NameDeleteForward  Name = "⌦"
	NamePageUp         Name = "⇞"
	NamePageDown       Name = "⇟"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
	NameCtrlLeft       Name = "LCtrl"
	NameCtrlRight      Name = "RCtrl"
	NameShiftLeft      Name = "LShift"
	NameShiftRight     Name = "RShift"
	NameAltLeft        Name = "LAlt"
	NameAltRight       Name = "RAlt"
	NameSuperLeft      Name = "LSuper"
	NameSuperRight     Name = "RSuper"
	NameF1             Name = "F1"
	NameF2             Name = "F2"
	NameF3             Name = "F3"
	NameF4             Name = "F4"
	NameF5             Name = "F5"
	NameF6             Name = "F6"
	NameF7             Name = "F7"
	NameF8             Name = "F8"
	NameF9             Name = "F9"
	NameF10            Name = "F10"
	NameF11            Name = "F11"
	NameF12            Name = "F12"
)

var modifierNames = map[Name]Modifiers{
	NameCtrlLeft:   ModCtrlLeft,
	NameCtrlRight:  ModCtrlRight,
	NameShiftLeft:  ModShiftLeft,
	NameShiftRight: ModShiftRight,
	NameAltLeft:    ModAltLeft,
	NameAltRight:   ModAltRight,
	NameSuperLeft:  ModSuperLeft,
	NameSuperRight: ModSuperRight,
}

// ModifierFor returns the modifier bit for n, or zero if n is not a
// modifier key.
func ModifierFor(n Name) Modifiers {
	return modifierNames[n]
}

// Contain reports whether m contains all modifiers in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

// ContainAny reports whether m contains at least one modifier in m2.
// Use it with the two-sided sets, such as ModCtrl, to match either
// variant of a modifier.
func (m Modifiers) ContainAny(m2 Modifiers) bool {
	return m&m2 != 0
}

func (m Modifiers) String() string {
	var strs []string
	appendIf := func(bit Modifiers, s string) {
		if m.Contain(bit) {
			strs = append(strs, s)
		}
	}
	appendIf(ModCtrlLeft, "LCtrl")
	appendIf(ModCtrlRight, "RCtrl")
	appendIf(ModShiftLeft, "LShift")
	appendIf(ModShiftRight, "RShift")
	appendIf(ModAltLeft, "LAlt")
	appendIf(ModAltRight, "RAlt")
	appendIf(ModSuperLeft, "LSuper")
	appendIf(ModSuperRight, "RSuper")
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}

func (Event) ImplementsEvent()     {}
func (EditEvent) ImplementsEvent() {}
