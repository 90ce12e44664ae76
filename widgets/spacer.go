package widgets

import (
	"fmt"
	"strings"
)

// Spacer is an empty leaf that soaks up spare space along the axes it expands on.
type Spacer struct {
	Base
}

func NewSpacer(horz, vert bool) *Spacer {
	s := &Spacer{}
	s.expand = [2]bool{horz, vert}
	if horz || vert {
		s.flexGrow = 1
	}
	return s
}

func (s *Spacer) measureContent(Direction, int) SizeReq { return SizeReq{} }

func (s *Spacer) allocateContent() {}

func (s *Spacer) render(*Context) {}

func (s *Spacer) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sSpacer(expand: %v, region: %s)\n", offset, s.expand, s.region)
}
