// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "reflect"

// State holds the previous value of a widget's typed state plus a
// dirty flag. Update commits a newly computed value only when it
// differs from the cached one, so a renderer runs only on real
// changes.
type State[T any] struct {
	value T
	eq    func(a, b T) bool
	dirty bool
	valid bool
}

// NewState returns a State comparing values with ==.
func NewState[T comparable]() *State[T] {
	return &State[T]{eq: func(a, b T) bool { return a == b }}
}

// NewStateFunc returns a State comparing values with eq. A nil eq
// falls back to reflect.DeepEqual, for state types that are not
// comparable.
func NewStateFunc[T any](eq func(a, b T) bool) *State[T] {
	if eq == nil {
		eq = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	return &State[T]{eq: eq}
}

// Update computes the new state and commits it if it differs from
// the cached value. It reports whether the state changed. The first
// Update always commits and reports a change.
func (s *State[T]) Update(compute func() T) bool {
	next := compute()
	if s.valid && s.eq(s.value, next) {
		s.dirty = false
		return false
	}
	s.value = next
	s.valid = true
	s.dirty = true
	return true
}

// Value returns the cached state.
func (s *State[T]) Value() T {
	return s.value
}

// Dirty reports whether the last Update committed a change.
func (s *State[T]) Dirty() bool {
	return s.dirty
}
