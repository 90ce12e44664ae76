package widgets

import "boxes/device"

// Context carries the device and clip stack through a render pass.
// It belongs to a single Root and must not be shared between goroutines.
type Context struct {
	Device device.Device
	Clip   *ClipStack
}

func NewContext(dev device.Device) *Context {
	return &Context{Device: dev, Clip: NewClipStack(dev)}
}

// visible is the part of region inside the current clip.
func (ctx *Context) visible(region Rect) Rect {
	if top, ok := ctx.Clip.Top(); ok {
		return region.Intersect(top)
	}
	return region
}
