package widgets

import (
	"testing"

	"boxes/device/mock_device"

	"github.com/google/go-cmp/cmp"
)

func TestStackAllocate(t *testing.T) {
	a := newProbe("a", req(10, 20), req(1, 1))
	b := newProbe("b", req(5, 30), req(1, 1))
	stack := NewStack(a, b)

	Allocate(stack, Rect{X: 3, Y: 4, Width: 15, Height: 6})

	want := []Rect{
		{X: 3, Y: 4, Width: 15, Height: 1},
		{X: 3, Y: 4, Width: 15, Height: 1},
	}
	if diff := cmp.Diff(want, []Rect{a.Region(), b.Region()}); diff != "" {
		t.Errorf("regions mismatch (-want +got):\n%s", diff)
	}
}

func TestStackClampsChildren(t *testing.T) {
	small := newProbe("small", req(2, 4), req(1, 2))
	big := newProbe("big", req(8, 12), req(3, 3))
	stack := NewStack(small, big)

	Allocate(stack, Rect{Width: 6, Height: 6})

	if got := small.Region(); got != (Rect{Width: 4, Height: 2}) {
		t.Errorf("small = %v, want natural size", got)
	}
	// never below its minimum, even past the stack's own region
	if got := big.Region(); got != (Rect{Width: 8, Height: 3}) {
		t.Errorf("big = %v, want minimum size", got)
	}
}

func TestStackMeasure(t *testing.T) {
	stack := NewStack(
		newProbe("a", req(10, 20), req(1, 6)),
		newProbe("b", req(5, 30), req(4, 4)),
	)
	if got := Measure(stack, Horz, Unconstrained); got != req(10, 30) {
		t.Errorf("horz = %v, want %v", got, req(10, 30))
	}
	if got := Measure(stack, Vert, 30); got != req(4, 6) {
		t.Errorf("vert = %v, want %v", got, req(4, 6))
	}
}

func TestStackPop(t *testing.T) {
	a := newProbe("a", req(1, 1), req(1, 1))
	b := newProbe("b", req(1, 1), req(1, 1))
	stack := NewStack(a, b)

	if got := stack.Pop(); got != b {
		t.Errorf("Pop() = %v, want b", got)
	}
	if stack.Len() != 1 {
		t.Errorf("Len() = %d, want 1", stack.Len())
	}
	// a popped widget can be re-parented
	Row(b)

	stack.Pop()
	mustPanic(t, "pop empty", func() { stack.Pop() })
}

func TestStackRenderOrder(t *testing.T) {
	dev := mock_device.New(10, 1)
	stack := NewStack(
		newProbe("first", req(5, 5), req(1, 1)),
		newProbe("top", req(3, 3), req(1, 1)),
	)
	Allocate(stack, Rect{Width: 10, Height: 1})

	dev.Reset()
	stack.render(NewContext(dev))

	want := []string{`Text("first", 0, 0)`, `Text("top", 0, 0)`}
	if diff := cmp.Diff(want, dev.Calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if got := dev.Line(0); got != "topst     " {
		t.Errorf("line = %q", got)
	}
}
