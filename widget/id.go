// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget provides stable widget identities and cached widget
state.

An Id is allocated the first time a call site is visited and persists
for the lifetime of its subtree. Identity is keyed by call site, not
by widget content.
*/
package widget

import "errors"

// Id is a stable identifier for one widget instance across update
// cycles. The zero Id is reserved to mean "no widget" and is never
// allocated.
type Id uint32

// ErrExhausted is returned when the id space is used up. With a
// 32-bit index space it is practically unreachable.
var ErrExhausted = errors.New("widget: id space exhausted")

// A Generator allocates Ids. Ids are monotonically increasing and
// never reused within a session. The zero value is ready to use.
type Generator struct {
	last Id
}

// Next allocates the next unused Id.
func (g *Generator) Next() (Id, error) {
	if g.last == ^Id(0) {
		return 0, ErrExhausted
	}
	g.last++
	return g.last, nil
}

// List is a growable ordered sequence of Ids, lazily extended to a
// requested length. Shrinking only narrows the visible window; ids
// allocated for previously occupied slots are retained and reappear
// unchanged when the list grows back.
type List struct {
	ids []Id
	n   int
}

// Len reports the visible length of the list.
func (l *List) Len() int {
	return l.n
}

// Get returns the id at index i. It panics if i is out of range.
func (l *List) Get(i int) Id {
	if i < 0 || i >= l.n {
		panic("widget: List index out of range")
	}
	return l.ids[i]
}

// Resize grows or shrinks the list to exactly n entries. Growing
// allocates ids from gen only for slots that have never been
// occupied. Shrinking truncates without touching the arena.
func (l *List) Resize(n int, gen *Generator) error {
	for len(l.ids) < n {
		id, err := gen.Next()
		if err != nil {
			return err
		}
		l.ids = append(l.ids, id)
	}
	l.n = n
	return nil
}

// Walk returns a forward-only cursor over the list.
func (l *List) Walk() Walk {
	return Walk{list: l}
}

// Walk is a cursor that lazily grows its backing list by at most one
// id per Next call.
type Walk struct {
	list *List
	next int
}

// Next returns the id at the cursor position, extending the list by
// one entry if the cursor has reached its end.
func (w *Walk) Next(gen *Generator) (Id, error) {
	if w.next == w.list.n {
		if err := w.list.Resize(w.list.n+1, gen); err != nil {
			return 0, err
		}
	}
	id := w.list.ids[w.next]
	w.next++
	return id, nil
}
