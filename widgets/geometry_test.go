package widgets

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := map[string]struct {
		a, b, want Rect
	}{
		"nested":   {Rect{0, 0, 100, 100}, Rect{10, 10, 20, 20}, Rect{10, 10, 20, 20}},
		"overlap":  {Rect{0, 0, 100, 100}, Rect{50, 50, 100, 100}, Rect{50, 50, 50, 50}},
		"touching": {Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, Rect{10, 0, 0, 10}},
		"disjoint": {Rect{0, 0, 10, 10}, Rect{20, 30, 5, 5}, Rect{20, 30, 0, 0}},
		"empty":    {Rect{5, 5, 0, 0}, Rect{0, 0, 10, 10}, Rect{5, 5, 0, 0}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.a.Intersect(tc.b); got != tc.want {
				t.Errorf("a.Intersect(b) = %v, want %v", got, tc.want)
			}
			if got := tc.b.Intersect(tc.a); got != tc.want {
				t.Errorf("b.Intersect(a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 10, Height: 8}
	got := r.Inset(Edges{Top: 1, Right: 2, Bottom: 3, Left: 4})
	if want := (Rect{X: 5, Y: 3, Width: 4, Height: 4}); got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
	if got := r.Inset(EdgeAll(6)); got.Width != -2 {
		t.Errorf("over-inset width = %d, want -2", got.Width)
	}
}

func TestEdgesAlong(t *testing.T) {
	e := EdgeSymmetric(1, 3)
	if e.Along(Horz) != 6 || e.Along(Vert) != 2 {
		t.Errorf("Along = %d/%d, want 6/2", e.Along(Horz), e.Along(Vert))
	}
}
