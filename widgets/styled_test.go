package widgets

import (
	"testing"

	"boxes/device"
	"boxes/device/mock_device"
)

func TestStyled(t *testing.T) {
	dev := mock_device.New(6, 2)
	base := device.Style{FG: 1, BG: 2}
	title := device.Style{FG: 3, BG: 4, Flags: device.Bold}
	dev.SetStyle(base)

	styled := NewStyled(title, NewText("hi"))
	styled.SetMargin(Edges{Left: 1})
	if got := Measure(styled, Horz, Unconstrained); got != req(3, 3) {
		t.Errorf("horz = %v, want %v", got, req(3, 3))
	}
	Allocate(styled, Rect{Width: 6, Height: 1})
	styled.render(NewContext(dev))

	if got := dev.CurrentStyle(); got != base {
		t.Errorf("style not restored: %v", got)
	}
	if got := dev.Styles[device.Position{X: 1, Y: 0}]; got != title {
		t.Errorf("text style = %v, want %v", got, title)
	}
	if got := dev.Styles[device.Position{X: 5, Y: 0}]; got != title {
		t.Errorf("blank fill style = %v, want %v", got, title)
	}
	if _, ok := dev.Styles[device.Position{X: 0, Y: 0}]; ok {
		t.Error("margin was painted")
	}
	if got := dev.Line(0); got != " hi   " {
		t.Errorf("line = %q", got)
	}
}

func TestSpacer(t *testing.T) {
	left := NewText("left")
	right := NewText("right")
	row := Row(left, NewSpacer(true, false), right)

	if got := Measure(row, Horz, Unconstrained); got.Nat != expandSize {
		t.Errorf("row natural width = %d, want expandSize", got.Nat)
	}
	Allocate(row, Rect{Width: 20, Height: 1})
	if got := right.Region().X; got != 15 {
		t.Errorf("right x = %d, want 15", got)
	}
}
