package widgets

import (
	"fmt"
	"strings"
)

// Stack overlays its children at its own origin. Children are drawn in
// insertion order, so the last one ends up on top.
type Stack struct {
	Base
	children []Widget
}

func NewStack(children ...Widget) *Stack {
	s := &Stack{}
	for _, child := range children {
		s.Add(child)
	}
	return s
}

func (s *Stack) Add(child Widget) {
	s.adopt(child)
	s.children = append(s.children, child)
}

// Pop removes and returns the most recently added child.
func (s *Stack) Pop() Widget {
	assert(len(s.children) > 0, "Stack: pop from empty stack")
	last := s.children[len(s.children)-1]
	s.children[len(s.children)-1] = nil
	s.children = s.children[:len(s.children)-1]
	s.disown(last)
	return last
}

func (s *Stack) Len() int { return len(s.children) }

func (s *Stack) Children() []Widget { return s.children }

func (s *Stack) measureContent(dir Direction, prospWidth int) SizeReq {
	result := SizeReq{}
	for _, child := range s.children {
		req := Measure(child, dir, prospWidth)
		result.Min = max(result.Min, req.Min)
		result.Nat = max(result.Nat, req.Nat)
	}
	return result
}

func (s *Stack) allocateContent() {
	for _, child := range s.children {
		rect := s.region
		w := Measure(child, Horz, Unconstrained)
		rect.Width = min(max(w.Min, s.region.Width), w.Nat)
		h := Measure(child, Vert, rect.Width)
		rect.Height = min(max(h.Min, s.region.Height), h.Nat)
		Allocate(child, rect)
	}
}

func (s *Stack) render(ctx *Context) {
	for _, child := range s.children {
		child.render(ctx)
	}
}

func (s *Stack) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sStack(region: %s\n", offset, s.region)
	for _, child := range s.children {
		child.ToString(buf, offset+"| ")
	}
}
