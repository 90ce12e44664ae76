package widgets

import (
	"fmt"
	"strings"

	"boxes/device"
)

// Styled paints its region blank in a device style, draws its child in
// that style and restores the previous style afterwards. It is
// transparent to layout.
type Styled struct {
	Base
	style device.Style
	child Widget
}

func NewStyled(style device.Style, child Widget) *Styled {
	s := &Styled{style: style, child: child}
	s.adopt(child)
	return s
}

func (s *Styled) SetStyle(style device.Style) {
	s.style = style
}

func (s *Styled) Child() Widget { return s.child }

func (s *Styled) measureContent(dir Direction, prospWidth int) SizeReq {
	return Measure(s.child, dir, prospWidth)
}

func (s *Styled) allocateContent() {
	Allocate(s.child, s.region)
}

func (s *Styled) render(ctx *Context) {
	current := ctx.Device.CurrentStyle()
	ctx.Device.SetStyle(s.style)
	if visible := ctx.visible(s.region); !visible.Empty() {
		blank := strings.Repeat(" ", visible.Width)
		for y := visible.Y; y < visible.Y+visible.Height; y++ {
			ctx.Device.Text(blank, device.Position{X: visible.X, Y: y})
		}
	}
	s.child.render(ctx)
	ctx.Device.SetStyle(current)
}

func (s *Styled) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sStyled(%s, region: %s\n", offset, s.style, s.region)
	s.child.ToString(buf, offset+"| ")
}
