package widgets

import (
	"fmt"
	"strings"

	"boxes/device"
)

// Image repeats a tile across its region.
type Image struct {
	Base
	tile device.Tile
}

func NewImage(tile device.Tile) *Image {
	return &Image{tile: tile}
}

func (i *Image) SetTile(tile device.Tile) *Image {
	i.tile = tile
	i.invalidate()
	return i
}

func (i *Image) Tile() device.Tile { return i.tile }

// A shrinking image asks for nothing on that axis; otherwise it asks for one tile.
func (i *Image) measureContent(dir Direction, _ int) SizeReq {
	if i.shrink[dir] {
		return SizeReq{}
	}
	size := i.tile.Width
	if dir == Vert {
		size = i.tile.Height
	}
	return SizeReq{Min: size, Nat: size}
}

func (i *Image) allocateContent() {}

func (i *Image) render(ctx *Context) {
	if ctx.visible(i.region).Empty() || i.tile.Width <= 0 || i.tile.Height <= 0 {
		return
	}
	ctx.Clip.Push(i.region)
	defer ctx.Clip.Pop()
	for y := i.region.Y; y < i.region.Y+i.region.Height; y += i.tile.Height {
		for x := i.region.X; x < i.region.X+i.region.Width; x += i.tile.Width {
			ctx.Device.Tile(i.tile.ID, device.Position{X: x, Y: y})
		}
	}
}

func (i *Image) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sImage(%s, region: %s)\n", offset, i.tile, i.region)
}
