package widgets

import (
	"fmt"
	"strings"
)

// Box lays its children out in a line, distributing spare main-axis
// space by flex grow weight.
type Box struct {
	Base
	direction  Direction
	justify    Justify
	alignItems Align
	children   []Widget
}

func Row(children ...Widget) *Box {
	return NewBox(Horz, children...)
}

func Column(children ...Widget) *Box {
	return NewBox(Vert, children...)
}

func NewBox(direction Direction, children ...Widget) *Box {
	b := &Box{direction: direction}
	for _, child := range children {
		b.Add(child)
	}
	return b
}

func (b *Box) Add(child Widget) {
	b.adopt(child)
	b.children = append(b.children, child)
}

func (b *Box) Children() []Widget { return b.children }

func (b *Box) SetJustify(justify Justify) *Box {
	b.justify = justify
	b.invalidate()
	return b
}

// SetAlignItems sets the cross-axis alignment of children that leave AlignSelf unset.
func (b *Box) SetAlignItems(align Align) *Box {
	b.alignItems = align
	b.invalidate()
	return b
}

func (b *Box) horz() bool { return b.direction == Horz }

func (b *Box) weights() []int {
	weights := make([]int, len(b.children))
	for i, child := range b.children {
		weights[i] = child.base().flexGrow
	}
	return weights
}

func (b *Box) childAlign(child Widget) Align {
	if align := child.base().alignSelf; align != AlignUnset {
		return align
	}
	if b.alignItems != AlignUnset {
		return b.alignItems
	}
	return AlignStart
}

// layoutWidths resolves child widths for a content width.
func (b *Box) layoutWidths(reqs []SizeReq, width int) []int {
	if b.horz() {
		return layoutMainAxis(reqs, b.weights(), width)
	}
	return b.layoutCrossAxis(reqs, width)
}

func (b *Box) measureContent(dir Direction, prospWidth int) SizeReq {
	reqs := make([]SizeReq, len(b.children))
	for i, child := range b.children {
		reqs[i] = Measure(child, Horz, Unconstrained)
	}

	if dir == Vert {
		widths := b.layoutWidths(reqs, prospWidth)
		for i, child := range b.children {
			reqs[i] = Measure(child, Vert, widths[i])
		}
	}

	mainAxis := (dir == Horz) == b.horz()
	result := SizeReq{}
	for _, req := range reqs {
		if mainAxis {
			result.Min += req.Min
			result.Nat += req.Nat
		} else {
			result.Min = max(result.Min, req.Min)
			result.Nat = max(result.Nat, req.Nat)
		}
	}
	result.Min = min(result.Min, expandSize)
	result.Nat = min(result.Nat, expandSize)
	return result
}

func (b *Box) allocateContent() {
	region := b.region
	reqs := make([]SizeReq, len(b.children))
	for i, child := range b.children {
		reqs[i] = Measure(child, Horz, Unconstrained)
	}
	widths := b.layoutWidths(reqs, region.Width)

	for i, child := range b.children {
		reqs[i] = Measure(child, Vert, widths[i])
	}
	var heights []int
	if b.horz() {
		heights = b.layoutCrossAxis(reqs, region.Height)
	} else {
		heights = layoutMainAxis(reqs, b.weights(), region.Height)
	}

	mainSizes, mainSpace := heights, region.Height
	if b.horz() {
		mainSizes, mainSpace = widths, region.Width
	}
	extra := mainSpace
	for _, size := range mainSizes {
		extra -= size
	}
	assert(extra >= 0, "Box: children need %d more cells than %s provides", -extra, region)

	cursor := extra * int(b.justify) / 2
	for i, child := range b.children {
		childRect := Rect{Width: widths[i], Height: heights[i]}
		crossSpace := region.Width - widths[i]
		if b.horz() {
			crossSpace = region.Height - heights[i]
		}
		offset := 0
		switch b.childAlign(child) {
		case AlignCenter:
			offset = crossSpace / 2
		case AlignEnd:
			offset = crossSpace
		}
		if b.horz() {
			childRect.X, childRect.Y = region.X+cursor, region.Y+offset
			cursor += widths[i]
		} else {
			childRect.X, childRect.Y = region.X+offset, region.Y+cursor
			cursor += heights[i]
		}
		Allocate(child, childRect)
	}
}

// layoutCrossAxis sizes each child across the box: stretched children take
// the whole cross size, the others keep within their requirement.
func (b *Box) layoutCrossAxis(reqs []SizeReq, crossSize int) []int {
	sizes := make([]int, len(b.children))
	for i, child := range b.children {
		if b.childAlign(child) == AlignStretch {
			sizes[i] = crossSize
		} else {
			sizes[i] = min(max(reqs[i].Min, crossSize), reqs[i].Nat)
		}
	}
	return sizes
}

// layoutMainAxis starts every child at its minimum and hands out the rest
// in rounds, proportionally to weight among children still below their
// natural size. Space a child cannot take is carried into the next round.
// Each round either spends everything or caps at least one child, so it
// runs at most len(reqs) rounds.
func layoutMainAxis(reqs []SizeReq, weights []int, mainSize int) []int {
	sizes := make([]int, len(reqs))
	extra := mainSize
	for i, req := range reqs {
		sizes[i] = req.Min
		extra -= req.Min
	}
	assert(extra >= 0, "over-constrained: %d cells for children needing %d", mainSize, mainSize-extra)

	for extra > 0 {
		sumWeights := 0
		for i, req := range reqs {
			if sizes[i] < req.Nat {
				sumWeights += weights[i]
			}
		}
		if sumWeights == 0 {
			break
		}

		remainder := 0
		for i, req := range reqs {
			if sizes[i] >= req.Nat {
				continue
			}
			share := extra * weights[i] / sumWeights
			taken := min(share, req.Nat-sizes[i])
			sizes[i] += taken
			remainder += share - taken
		}
		extra = remainder
	}
	return sizes
}

func (b *Box) render(ctx *Context) {
	for _, child := range b.children {
		child.render(ctx)
	}
}

func (b *Box) ToString(buf *strings.Builder, offset string) {
	name := "Column"
	if b.horz() {
		name = "Row"
	}
	fmt.Fprintf(buf, "%s%s(justify: %s, align: %s, flex: %d, region: %s\n",
		offset, name, b.justify, b.alignItems, b.flexGrow, b.region)
	for _, child := range b.children {
		child.ToString(buf, offset+"| ")
	}
}
