package widgets

import "fmt"

// Direction selects the axis a size requirement refers to.
type Direction int

const (
	Horz Direction = iota
	Vert
)

// Unconstrained is the prospective width passed when measuring horizontally.
const Unconstrained = -1

// expandSize is the natural size reported by expanding widgets.
// It is large enough to win any distribution yet small enough that
// summing a few thousand of them cannot overflow.
const expandSize = 0xffffff

// SizeReq is the minimum and natural extent of a widget along one axis.
type SizeReq struct {
	Min, Nat int
}

type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlap of r and o. Disjoint rectangles
// produce a zero-area result.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.Width, o.X+o.Width), min(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x0, Y: y0, Width: max(x1-x0, 0), Height: max(y1-y0, 0)}
}

// Inset shrinks r by e on each side. The result may have negative extent.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Left - e.Right,
		Height: r.Height - e.Top - e.Bottom,
	}
}

// Edges holds spacing for four sides in CSS order.
type Edges struct {
	Top, Right, Bottom, Left int
}

func EdgeAll(n int) Edges {
	return Edges{n, n, n, n}
}

func EdgeSymmetric(v, h int) Edges {
	return Edges{v, h, v, h}
}

// Along returns the total spacing along dir.
func (e Edges) Along(dir Direction) int {
	if dir == Horz {
		return e.Left + e.Right
	}
	return e.Top + e.Bottom
}

// Align places a child on its container's cross axis.
// AlignUnset defers to the container's default.
type Align int

const (
	AlignUnset Align = iota
	AlignStart
	AlignCenter
	AlignEnd
	AlignStretch
)

// Justify places the packed children of a Box on its main axis.
// The values double as the numerator of the leading-space fraction.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
)

func (d Direction) String() string {
	if d == Horz {
		return "Horz"
	}
	return "Vert"
}

func (s SizeReq) String() string {
	return fmt.Sprintf("SizeReq{Min: %d, Nat: %d}", s.Min, s.Nat)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{X: %d, Y: %d, Width: %d, Height: %d}", r.X, r.Y, r.Width, r.Height)
}

func (a Align) String() string {
	switch a {
	case AlignUnset:
		return "Unset"
	case AlignStart:
		return "Start"
	case AlignCenter:
		return "Center"
	case AlignEnd:
		return "End"
	case AlignStretch:
		return "Stretch"
	}
	return "UNKNOWN ALIGN"
}

func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "Start"
	case JustifyCenter:
		return "Center"
	case JustifyEnd:
		return "End"
	}
	return "UNKNOWN JUSTIFY"
}
