package widgets

import "boxes/device"

// ClipStack nests clip rectangles by intersection and keeps the device
// informed of the effective one.
type ClipStack struct {
	device device.Device
	rects  []Rect
}

func NewClipStack(dev device.Device) *ClipStack {
	return &ClipStack{device: dev}
}

// Push makes the intersection of rect and the current clip the new clip.
func (s *ClipStack) Push(rect Rect) {
	if top, ok := s.Top(); ok {
		rect = rect.Intersect(top)
	}
	s.rects = append(s.rects, rect)
	s.device.SetClip(rect.X, rect.Y, rect.Width, rect.Height)
}

// Pop restores the previous clip, or no clipping once the stack is empty.
func (s *ClipStack) Pop() {
	assert(len(s.rects) > 0, "ClipStack: pop from empty stack")
	s.rects = s.rects[:len(s.rects)-1]
	if top, ok := s.Top(); ok {
		s.device.SetClip(top.X, top.Y, top.Width, top.Height)
	} else {
		s.device.ClearClip()
	}
}

func (s *ClipStack) Top() (Rect, bool) {
	if len(s.rects) == 0 {
		return Rect{}, false
	}
	return s.rects[len(s.rects)-1], true
}

func (s *ClipStack) Len() int { return len(s.rects) }
