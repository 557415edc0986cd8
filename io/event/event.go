// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for raw device events and the
// semantic events synthesized from them.
type Event interface {
	ImplementsEvent()
}
