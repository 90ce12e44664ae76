package widgets

import (
	"fmt"
	"strings"
)

// Cell is the position and span of a grid child, in tracks.
type Cell struct {
	Col, Row         int
	ColSpan, RowSpan int
}

type track struct {
	req      SizeReq
	flexGrow int
	size     int
	offset   int
}

// Grid places children on a table of rows and columns. Only children
// spanning a single cell contribute to the size of their tracks; a
// multi-cell child gets whatever its tracks add up to.
//
// Spare space goes to tracks in a single pass by flex weight, without
// the natural-size caps Box applies.
//
// A spanning child must fit within the minimum sizes of the tracks it
// spans: it is measured and allocated with their combined size, and a
// container child given less than its minimum panics.
type Grid struct {
	Base
	children []Widget
	cells    []Cell

	cols, rows       []track
	colFlex, rowFlex []int
	tracksDirty      bool
}

func NewGrid() *Grid {
	return &Grid{}
}

// Add places child at (col, row) spanning colSpan columns and rowSpan rows.
func (g *Grid) Add(child Widget, col, row, colSpan, rowSpan int) {
	assert(col >= 0 && row >= 0, "Grid: negative cell position (%d, %d)", col, row)
	assert(colSpan > 0 && rowSpan > 0, "Grid: non-positive span %dx%d", colSpan, rowSpan)
	g.adopt(child)
	g.children = append(g.children, child)
	g.cells = append(g.cells, Cell{Col: col, Row: row, ColSpan: colSpan, RowSpan: rowSpan})
	g.tracksDirty = true
}

func (g *Grid) SetColumnFlex(col, weight int) *Grid {
	g.colFlex = setFlex(g.colFlex, col, weight)
	g.tracksDirty = true
	g.invalidate()
	return g
}

func (g *Grid) SetRowFlex(row, weight int) *Grid {
	g.rowFlex = setFlex(g.rowFlex, row, weight)
	g.tracksDirty = true
	g.invalidate()
	return g
}

func setFlex(flex []int, idx, weight int) []int {
	assert(idx >= 0 && weight >= 0, "Grid: bad track flex %d for track %d", weight, idx)
	for len(flex) <= idx {
		flex = append(flex, 0)
	}
	flex[idx] = weight
	return flex
}

func (g *Grid) Children() []Widget { return g.children }

func (g *Grid) Cell(i int) Cell { return g.cells[i] }

func (g *Grid) initTracks() {
	if !g.tracksDirty {
		return
	}
	g.tracksDirty = false

	nCols, nRows := 0, 0
	for _, cell := range g.cells {
		nCols = max(nCols, cell.Col+cell.ColSpan)
		nRows = max(nRows, cell.Row+cell.RowSpan)
	}
	g.cols = makeTracks(nCols, g.colFlex)
	g.rows = makeTracks(nRows, g.rowFlex)
}

func makeTracks(n int, flex []int) []track {
	tracks := make([]track, n)
	for i := range tracks {
		if i < len(flex) {
			tracks[i].flexGrow = flex[i]
		}
	}
	return tracks
}

func (g *Grid) tracks(dir Direction) []track {
	if dir == Horz {
		return g.cols
	}
	return g.rows
}

// cellRegion is the union of the tracks a cell spans, relative to the grid origin.
func (g *Grid) cellRegion(cell Cell) Rect {
	first, last := g.cols[cell.Col], g.cols[cell.Col+cell.ColSpan-1]
	top, bottom := g.rows[cell.Row], g.rows[cell.Row+cell.RowSpan-1]
	return Rect{
		X:      first.offset,
		Y:      top.offset,
		Width:  last.offset + last.size - first.offset,
		Height: bottom.offset + bottom.size - top.offset,
	}
}

// spanWidth is the combined width of the columns a cell spans.
func (g *Grid) spanWidth(cell Cell) int {
	width := 0
	for _, col := range g.cols[cell.Col : cell.Col+cell.ColSpan] {
		width += col.size
	}
	return width
}

func (g *Grid) computeTrackReqs(dir Direction) {
	tracks := g.tracks(dir)
	for i := range tracks {
		tracks[i].req = SizeReq{}
	}
	for i, child := range g.children {
		cell := g.cells[i]
		prospWidth := Unconstrained
		if dir == Vert {
			prospWidth = g.spanWidth(cell)
		}
		req := Measure(child, dir, prospWidth)
		if cell.ColSpan != 1 || cell.RowSpan != 1 {
			continue
		}
		idx := cell.Col
		if dir == Vert {
			idx = cell.Row
		}
		tracks[idx].req.Min = max(tracks[idx].req.Min, req.Min)
		tracks[idx].req.Nat = max(tracks[idx].req.Nat, req.Nat)
	}
}

func totalReq(tracks []track) SizeReq {
	result := SizeReq{}
	for _, t := range tracks {
		result.Min += t.req.Min
		result.Nat += t.req.Nat
	}
	result.Min = min(result.Min, expandSize)
	result.Nat = min(result.Nat, expandSize)
	return result
}

// layoutTrack gives every track its minimum plus an equal share of the
// spare space per unit of flex weight.
func layoutTrack(tracks []track, req SizeReq, size int) {
	extra := float64(size - req.Min)
	assert(extra >= 0, "Grid: %d cells for tracks needing %d", size, req.Min)

	sumWeights := 0
	for _, t := range tracks {
		sumWeights += t.flexGrow
	}
	perWeight := 0.0
	if sumWeights > 0 {
		perWeight = extra / float64(sumWeights)
	}
	for i := range tracks {
		tracks[i].size = tracks[i].req.Min + int(perWeight*float64(tracks[i].flexGrow))
	}
}

func setTrackOffsets(tracks []track) {
	acc := 0
	for i := range tracks {
		tracks[i].offset = acc
		acc += tracks[i].size
	}
}

func (g *Grid) measureContent(dir Direction, prospWidth int) SizeReq {
	g.initTracks()

	g.computeTrackReqs(Horz)
	widthReq := totalReq(g.cols)
	if dir == Horz {
		return widthReq
	}

	layoutTrack(g.cols, widthReq, prospWidth)
	setTrackOffsets(g.cols)

	g.computeTrackReqs(Vert)
	return totalReq(g.rows)
}

func (g *Grid) allocateContent() {
	// resolves the columns for the allocated width as a side effect
	heightReq := g.measureContent(Vert, g.region.Width)

	layoutTrack(g.rows, heightReq, g.region.Height)
	setTrackOffsets(g.rows)

	for i, child := range g.children {
		rect := g.cellRegion(g.cells[i])
		rect.X += g.region.X
		rect.Y += g.region.Y
		Allocate(child, rect)
	}
}

func (g *Grid) render(ctx *Context) {
	for _, child := range g.children {
		child.render(ctx)
	}
}

func (g *Grid) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sGrid(%dx%d, region: %s\n", offset, len(g.cols), len(g.rows), g.region)
	for i, child := range g.children {
		cell := g.cells[i]
		fmt.Fprintf(buf, "%s| @(%d, %d) span %dx%d\n", offset, cell.Col, cell.Row, cell.ColSpan, cell.RowSpan)
		child.ToString(buf, offset+"| | ")
	}
}
