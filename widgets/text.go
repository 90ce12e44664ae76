package widgets

import (
	"fmt"
	"strings"

	"boxes/cells"
	"boxes/device"
)

const ellipsis = ".."

// Text is a leaf showing a block of text. With wrapping enabled it is
// as narrow as its longest word; with ellipsizing it can shrink to a
// single truncated line.
type Text struct {
	Base
	metrics   device.TextMeasurer
	content   string
	wrap      bool
	ellipsize bool

	lines       []string
	wrappedSize [2]int
}

func NewText(content string) *Text {
	return &Text{metrics: cells.Metrics{}, content: content, wrappedSize: [2]int{-1, -1}}
}

func (t *Text) SetText(content string) *Text {
	t.content = content
	t.wrappedSize = [2]int{-1, -1}
	t.invalidate()
	return t
}

func (t *Text) Content() string { return t.content }

// SetMetrics replaces the text measurer, for backends that are not cell based.
func (t *Text) SetMetrics(metrics device.TextMeasurer) *Text {
	t.metrics = metrics
	t.wrappedSize = [2]int{-1, -1}
	t.invalidate()
	return t
}

func (t *Text) SetWrap(wrap bool) *Text {
	t.wrap = wrap
	t.wrappedSize = [2]int{-1, -1}
	t.invalidate()
	return t
}

func (t *Text) SetEllipsize(ellipsize bool) *Text {
	t.ellipsize = ellipsize
	t.wrappedSize = [2]int{-1, -1}
	t.invalidate()
	return t
}

// Lines returns the text as wrapped for the last measured or allocated size.
func (t *Text) Lines() []string { return t.lines }

// wrapToSize wraps the text to width. A positive height limits the number
// of lines, ellipsizing the last one that fits.
func (t *Text) wrapToSize(width, height int) {
	if t.wrappedSize == [2]int{width, height} {
		return
	}
	t.wrappedSize = [2]int{width, height}

	wrapWidth := width
	if !t.wrap && !t.ellipsize {
		wrapWidth = 0
	}
	t.lines = t.metrics.Wrap(t.content, wrapWidth)

	if height > 0 && height < len(t.lines) {
		last := t.lines[height-1] + " " + t.lines[height]
		t.lines[height-1] = t.metrics.Cut(last, 0, width-len(ellipsis)) + ellipsis
		t.lines = t.lines[:height]
	}
}

func (t *Text) measureContent(dir Direction, prospWidth int) SizeReq {
	if dir == Horz {
		width := t.metrics.Width(t.content)
		switch {
		case t.ellipsize:
			return SizeReq{Min: min(len(ellipsis), width), Nat: width}
		case t.wrap:
			return SizeReq{Min: min(t.metrics.LongestWord(t.content), width), Nat: width}
		}
		return SizeReq{Min: width, Nat: width}
	}

	t.wrapToSize(prospWidth, 0)
	height := len(t.lines)
	if t.ellipsize {
		return SizeReq{Min: min(1, height), Nat: height}
	}
	return SizeReq{Min: height, Nat: height}
}

func (t *Text) allocateContent() {
	t.wrapToSize(t.region.Width, t.region.Height)
}

func (t *Text) render(ctx *Context) {
	visible := ctx.visible(t.region)
	if visible.Empty() {
		return
	}
	first := visible.Y - t.region.Y
	last := min(first+visible.Height, len(t.lines))
	for i := first; i < last; i++ {
		segment := t.metrics.Cut(t.lines[i], visible.X-t.region.X, visible.Width)
		ctx.Device.Text(segment, device.Position{X: visible.X, Y: t.region.Y + i})
	}
}

func (t *Text) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sText(%q, wrap: %v, ellipsize: %v, region: %s)\n",
		offset, t.content, t.wrap, t.ellipsize, t.region)
}
