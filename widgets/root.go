package widgets

import (
	"log"

	"boxes/device"
)

// Root owns the stack of top-level screens and drives layout and
// rendering for one device. A Root and everything reachable from it
// belong to one goroutine.
type Root struct {
	ctx    *Context
	layers *Stack
	width  int
	height int
	region Rect
	dirty  bool
}

func NewRoot(dev device.Device) *Root {
	r := &Root{ctx: NewContext(dev), layers: NewStack()}
	r.layers.changed = func() { r.dirty = true }
	return r
}

// Push adds a screen on top. The first screen pulls the viewport size
// from the device.
func (r *Root) Push(screen Widget) {
	r.layers.Add(screen)
	r.dirty = true
	if r.layers.Len() == 1 {
		r.Resize(r.ctx.Device.Size())
	}
}

// Pop removes and returns the top screen.
func (r *Root) Pop() Widget {
	assert(r.layers.Len() > 0, "Root: pop with no screens")
	screen := r.layers.Pop()
	r.dirty = true
	return screen
}

func (r *Root) Len() int { return r.layers.Len() }

func (r *Root) Resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.dirty = true
}

func (r *Root) Dirty() bool { return r.dirty }

func (r *Root) Region() Rect { return r.region }

// Layout recomputes the tree if anything changed since the last call.
// The root is never given less than its minimum size, even when that
// overflows the viewport.
func (r *Root) Layout() {
	if !r.dirty {
		return
	}
	r.dirty = false

	horz := Measure(r.layers, Horz, Unconstrained)
	width := max(horz.Min, r.width)
	vert := Measure(r.layers, Vert, width)
	height := max(vert.Min, r.height)

	r.region = Rect{Width: width, Height: height}
	log.Printf("layout: viewport %dx%d, region %s", r.width, r.height, r.region)
	Allocate(r.layers, r.region)
}

// Render draws every screen, bottom first, and presents the frame.
func (r *Root) Render() {
	r.ctx.Device.Clear()
	r.ctx.Clip.Push(r.region)
	r.layers.render(r.ctx)
	r.ctx.Clip.Pop()
	r.ctx.Device.Show()
}

// Pump lays out and renders if needed, then blocks for one event.
// Resize events are applied before the event is returned.
func (r *Root) Pump() any {
	r.Layout()
	r.Render()

	event := r.ctx.Device.PollEvent()
	if resize, ok := event.(device.ResizeEvent); ok {
		r.Resize(resize.Width, resize.Height)
	}
	return event
}

// String dumps the screen stack.
func (r *Root) String() string {
	return String(r.layers)
}
