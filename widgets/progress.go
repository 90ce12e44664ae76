package widgets

import (
	"fmt"
	"math"
	"strings"

	"boxes/device"
)

var partialBlocks = []rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉'}

// ProgressBar is a one line leaf drawing a fraction with eighth-cell
// precision. It can shrink to nothing and prefers width cells.
type ProgressBar struct {
	Base
	value float64
	width int
}

func NewProgressBar(value float64, width int) *ProgressBar {
	assert(width >= 0, "ProgressBar: negative width %d", width)
	return &ProgressBar{value: clampFraction(value), width: width}
}

// SetValue does not change the requirements, so the layout stays valid.
func (pb *ProgressBar) SetValue(value float64) *ProgressBar {
	pb.value = clampFraction(value)
	return pb
}

func (pb *ProgressBar) Value() float64 { return pb.value }

func (pb *ProgressBar) measureContent(dir Direction, _ int) SizeReq {
	if dir == Horz {
		return SizeReq{Min: 0, Nat: pb.width}
	}
	return SizeReq{Min: 1, Nat: 1}
}

func (pb *ProgressBar) allocateContent() {}

func (pb *ProgressBar) render(ctx *Context) {
	if ctx.visible(pb.region).Empty() {
		return
	}
	width := pb.region.Width
	runes := make([]rune, width)
	progress := int(math.Round(float64(width*8) * pb.value))
	idx := 0
	for ; idx < progress/8; idx++ {
		runes[idx] = '█'
	}
	if progress%8 > 0 {
		runes[idx] = partialBlocks[progress%8]
		idx++
	}
	for ; idx < width; idx++ {
		runes[idx] = ' '
	}
	ctx.Device.Text(string(runes), device.Position{X: pb.region.X, Y: pb.region.Y})
}

func (pb *ProgressBar) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sProgressBar(%.2f, region: %s)\n", offset, pb.value, pb.region)
}

func clampFraction(value float64) float64 {
	return math.Max(0, math.Min(1, value))
}
