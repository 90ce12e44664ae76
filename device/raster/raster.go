// Package raster draws the cell grid into an image, one fixed-size
// character cell per position, so a layout can be saved as a picture.
package raster

import (
	"image"

	"boxes/device"

	"github.com/fogleman/gg"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Cell geometry of gg's default face (basicfont 7x13).
const (
	CellWidth  = 7
	CellHeight = 13
	baseline   = 11
)

// Device is a device.Device that paints into an in-memory image. It has
// no event source: PollEvent always returns nil.
type Device struct {
	dc    *gg.Context
	cols  int
	rows  int
	style device.Style
	tiles map[string]rune
	clip  *[4]int
}

func New(cols, rows int, tiles map[string]rune) *Device {
	if tiles == nil {
		tiles = map[string]rune{}
	}
	return &Device{
		dc:    gg.NewContext(cols*CellWidth, rows*CellHeight),
		cols:  cols,
		rows:  rows,
		tiles: tiles,
	}
}

func (d *Device) SetClip(x, y, width, height int) {
	d.clip = &[4]int{x, y, width, height}
	d.applyClip()
}

func (d *Device) ClearClip() {
	d.clip = nil
	d.dc.ResetClip()
}

func (d *Device) applyClip() {
	d.dc.ResetClip()
	if c := d.clip; c != nil {
		d.dc.DrawRectangle(float64(c[0]*CellWidth), float64(c[1]*CellHeight),
			float64(c[2]*CellWidth), float64(c[3]*CellHeight))
		d.dc.Clip()
	}
}

func (d *Device) Size() (int, int) {
	return d.cols, d.rows
}

func (d *Device) PollEvent() any {
	return nil
}

// Clear paints the whole image in the current background, ignoring the clip.
func (d *Device) Clear() {
	d.dc.ResetClip()
	_, bg := d.colors(d.style)
	d.dc.SetRGB(bg[0], bg[1], bg[2])
	d.dc.Clear()
	d.applyClip()
}

func (d *Device) Show() {}

func (d *Device) SetStyle(style device.Style) {
	d.style = style
}

func (d *Device) CurrentStyle() device.Style {
	return d.style
}

func (d *Device) Text(text string, pos device.Position) {
	x := pos.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		d.cell(r, x, pos.Y, w, d.style)
		x += w
	}
}

// Tile draws the glyph configured for id, or '?' for an unknown tile.
func (d *Device) Tile(id string, pos device.Position) {
	glyph, ok := d.tiles[id]
	if !ok {
		glyph = '?'
	}
	d.cell(glyph, pos.X, pos.Y, 1, d.style)
}

func (d *Device) cell(r rune, col, row, width int, style device.Style) {
	fg, bg := d.colors(style)
	px, py := float64(col*CellWidth), float64(row*CellHeight)

	d.dc.SetRGB(bg[0], bg[1], bg[2])
	d.dc.DrawRectangle(px, py, float64(width*CellWidth), CellHeight)
	d.dc.Fill()

	if r == ' ' {
		return
	}
	d.dc.SetRGB(fg[0], fg[1], fg[2])
	d.dc.DrawString(string(r), px, py+baseline)
	if style.Flags&device.Bold == device.Bold {
		d.dc.DrawString(string(r), px+1, py+baseline)
	}
}

func (d *Device) colors(style device.Style) (fg, bg [3]float64) {
	fg, bg = rgb(style.FG), rgb(style.BG)
	if style.Flags&device.Reverse == device.Reverse {
		fg, bg = bg, fg
	}
	return fg, bg
}

func rgb(index byte) [3]float64 {
	c := termenv.ConvertToRGB(termenv.ANSI256Color(index))
	return [3]float64{c.R, c.G, c.B}
}

func (d *Device) Image() image.Image {
	return d.dc.Image()
}

func (d *Device) SavePNG(path string) error {
	return d.dc.SavePNG(path)
}
