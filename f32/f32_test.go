// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestDist(t *testing.T) {
	if d := Pt(0, 0).Dist(Pt(3, 4)); d != 5 {
		t.Errorf("got distance %f, expected 5", d)
	}
	if d := Pt(-2, 1).Dist(Pt(-2, 1)); d != 0 {
		t.Errorf("got distance %f, expected 0", d)
	}
}

func TestContains(t *testing.T) {
	r := Rect(10, 10, 20, 20)
	for _, tc := range []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(15, 15), true},
		{Pt(20, 20), false},
		{Pt(9, 15), false},
		{Pt(15, 25), false},
	} {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.want)
		}
	}
}

func TestRectCanon(t *testing.T) {
	r := Rect(20, 20, 10, 10)
	if r.Min != Pt(10, 10) || r.Max != Pt(20, 20) {
		t.Errorf("Rect did not canonicalize: %v", r)
	}
	if r.Empty() {
		t.Error("canonical rect reported empty")
	}
}
