package widgets

import (
	"log"
	"strings"
)

// Widget is a node of the layout tree. The set of implementations is
// closed: Box, Stack, Grid, Text, Image, Spacer, Styled and ProgressBar.
type Widget interface {
	base() *Base
	// measureContent reports the requirement of the content box,
	// without margins and without expand/shrink applied.
	measureContent(dir Direction, prospWidth int) SizeReq
	// allocateContent positions children inside base().region.
	allocateContent()
	render(ctx *Context)
	ToString(buf *strings.Builder, offset string)
}

// Base holds the layout properties and caches shared by all widgets.
// It is embedded by every widget type.
type Base struct {
	parent  *Base
	changed func()

	margin    Edges
	expand    [2]bool
	shrink    [2]bool
	alignSelf Align
	flexGrow  int

	cached      [2]SizeReq
	cacheValid  [2]bool
	cachedWidth int

	region Rect
}

func (b *Base) base() *Base { return b }

func (b *Base) SetMargin(margin Edges) {
	b.margin = margin
	b.invalidate()
}

func (b *Base) Margin() Edges { return b.margin }

// SetExpand makes the natural size effectively unbounded along the given axes.
func (b *Base) SetExpand(horz, vert bool) {
	b.expand = [2]bool{horz, vert}
	b.invalidate()
}

// SetShrink pins the natural size to the minimum along the given axes.
func (b *Base) SetShrink(horz, vert bool) {
	b.shrink = [2]bool{horz, vert}
	b.invalidate()
}

func (b *Base) SetAlignSelf(align Align) {
	b.alignSelf = align
	b.invalidate()
}

func (b *Base) AlignSelf() Align { return b.alignSelf }

func (b *Base) SetFlexGrow(weight int) {
	assert(weight >= 0, "negative flex grow %d", weight)
	b.flexGrow = weight
	b.invalidate()
}

func (b *Base) FlexGrow() int { return b.flexGrow }

// Region is the content box assigned by the last Allocate.
func (b *Base) Region() Rect { return b.region }

// invalidate drops the cached requirements of b and of every ancestor.
func (b *Base) invalidate() {
	for w := b; w != nil; w = w.parent {
		w.cacheValid = [2]bool{}
		if w.changed != nil {
			w.changed()
		}
	}
}

func (b *Base) adopt(child Widget) {
	cb := child.base()
	assert(cb.parent == nil, "widget already has a parent")
	cb.parent = b
	b.invalidate()
}

func (b *Base) disown(child Widget) {
	child.base().parent = nil
	b.invalidate()
}

// Measure returns the size requirement of w along dir, margins included.
// Horizontal requests must pass Unconstrained; vertical requests pass the
// width the widget will be given.
func Measure(w Widget, dir Direction, prospWidth int) SizeReq {
	b := w.base()
	assert((dir == Horz) == (prospWidth == Unconstrained),
		"measure %s with prospective width %d", dir, prospWidth)

	if b.cacheValid[dir] && (dir == Horz || b.cachedWidth == prospWidth) {
		return b.cached[dir]
	}

	contentWidth := prospWidth
	if dir == Vert {
		contentWidth = max(prospWidth-b.margin.Along(Horz), 0)
	}
	req := w.measureContent(dir, contentWidth)
	assert(req.Min <= req.Nat, "%T: minimum %d exceeds natural %d", w, req.Min, req.Nat)

	m := b.margin.Along(dir)
	req.Min += m
	req.Nat += m

	assert(!(b.expand[dir] && b.shrink[dir]), "%T: expand and shrink both set on %s axis", w, dir)
	if b.expand[dir] {
		req.Nat = expandSize
	} else if b.shrink[dir] {
		req.Nat = req.Min
	}
	req.Nat = min(req.Nat, expandSize)
	req.Min = min(req.Min, req.Nat)

	b.cached[dir] = req
	b.cacheValid[dir] = true
	if dir == Vert {
		b.cachedWidth = prospWidth
	}
	return req
}

// Allocate assigns region (margins included) to w and lays out its children.
func Allocate(w Widget, region Rect) {
	b := w.base()
	b.region = region.Inset(b.margin)
	assert(b.region.Width >= 0 && b.region.Height >= 0,
		"%T: over-constrained, %s leaves no room for margins %v", w, region, b.margin)
	w.allocateContent()
}

// String dumps the widget tree rooted at w.
func String(w Widget) string {
	buf := &strings.Builder{}
	w.ToString(buf, "")
	return buf.String()
}

func assert(cond bool, format string, args ...any) {
	if !cond {
		log.Panicf("### "+format, args...)
	}
}
