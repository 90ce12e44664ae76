package widgets

import (
	"math/rand"
	"testing"

	"boxes/device"
)

func randomTree(rng *rand.Rand, depth int) Widget {
	kind := rng.Intn(7)
	if depth == 0 {
		kind = rng.Intn(3)
	}
	var w Widget
	switch kind {
	case 0:
		n := rng.Intn(10)
		text := NewText("lorem ipsum dolor sit amet"[:n+rng.Intn(17)])
		text.SetWrap(rng.Intn(2) == 0)
		w = text
	case 1:
		w = NewImage(device.Tile{ID: "#", Width: 1 + rng.Intn(3), Height: 1 + rng.Intn(3)})
	case 2:
		n := rng.Intn(10)
		w = newProbe("p", req(n, n+rng.Intn(10)), req(rng.Intn(3), 3+rng.Intn(3)))
	case 3, 4:
		box := NewBox(Direction(rng.Intn(2)))
		box.SetAlignItems(Align(rng.Intn(5)))
		for i := rng.Intn(4); i >= 0; i-- {
			box.Add(randomTree(rng, depth-1))
		}
		w = box
	case 5:
		stack := NewStack()
		for i := rng.Intn(3); i >= 0; i-- {
			stack.Add(randomTree(rng, depth-1))
		}
		w = stack
	case 6:
		// spanning children may be given less than their minimum, so
		// only single cells here
		grid := NewGrid().SetColumnFlex(rng.Intn(3), rng.Intn(3))
		for i := rng.Intn(4); i >= 0; i-- {
			grid.Add(randomTree(rng, depth-1), rng.Intn(3), rng.Intn(3), 1, 1)
		}
		w = grid
	}
	b := w.base()
	b.flexGrow = rng.Intn(3)
	b.margin = Edges{Top: rng.Intn(2), Right: rng.Intn(2), Bottom: rng.Intn(2), Left: rng.Intn(2)}
	switch rng.Intn(4) {
	case 0:
		b.expand[rng.Intn(2)] = true
	case 1:
		b.shrink[rng.Intn(2)] = true
	}
	return w
}

func TestMinimumNeverExceedsNatural(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		w := randomTree(rng, 3)

		horz := Measure(w, Horz, Unconstrained)
		if horz.Min > horz.Nat {
			t.Fatalf("tree %d: horz %v\n%s", i, horz, String(w))
		}
		width := horz.Min + rng.Intn(20)
		vert := Measure(w, Vert, width)
		if vert.Min > vert.Nat {
			t.Fatalf("tree %d: vert at %d = %v\n%s", i, width, vert, String(w))
		}
		Allocate(w, Rect{Width: width, Height: vert.Min + rng.Intn(20)})
	}
}
