package mock_device

import (
	"fmt"
	"strings"

	"boxes/device"

	"github.com/mattn/go-runewidth"
)

// Device is an in-memory device.Device. It keeps a cell grid, enforces
// the clip rectangle like a real backend would and records every call.
type Device struct {
	Width, Height int
	Calls         []string
	Events        []any
	Shows         int

	cells  [][]rune
	clip   *[4]int
	style  device.Style
	Styles map[device.Position]device.Style
}

func New(width, height int) *Device {
	d := &Device{Width: width, Height: height, Styles: map[device.Position]device.Style{}}
	d.Clear()
	d.Calls = nil
	return d
}

func (d *Device) SetClip(x, y, width, height int) {
	d.clip = &[4]int{x, y, width, height}
	d.record("SetClip(%d, %d, %d, %d)", x, y, width, height)
}

func (d *Device) ClearClip() {
	d.clip = nil
	d.record("ClearClip()")
}

func (d *Device) Size() (int, int) {
	return d.Width, d.Height
}

// PollEvent returns queued events in order, then nil.
func (d *Device) PollEvent() any {
	if len(d.Events) == 0 {
		return nil
	}
	event := d.Events[0]
	d.Events = d.Events[1:]
	return event
}

func (d *Device) Clear() {
	d.cells = make([][]rune, d.Height)
	for y := range d.cells {
		d.cells[y] = []rune(strings.Repeat(" ", d.Width))
	}
	d.Styles = map[device.Position]device.Style{}
	d.record("Clear()")
}

func (d *Device) Show() {
	d.Shows++
	d.record("Show()")
}

func (d *Device) SetStyle(style device.Style) {
	d.style = style
}

func (d *Device) CurrentStyle() device.Style {
	return d.style
}

func (d *Device) Text(text string, pos device.Position) {
	d.record("Text(%q, %d, %d)", text, pos.X, pos.Y)
	x := pos.X
	for _, r := range text {
		d.set(x, pos.Y, r)
		x += runewidth.RuneWidth(r)
	}
}

// Tile draws the first rune of the tile id.
func (d *Device) Tile(id string, pos device.Position) {
	d.record("Tile(%q, %d, %d)", id, pos.X, pos.Y)
	for _, r := range id {
		d.set(pos.X, pos.Y, r)
		break
	}
}

func (d *Device) set(x, y int, r rune) {
	if d.clip != nil {
		c := d.clip
		if x < c[0] || y < c[1] || x >= c[0]+c[2] || y >= c[1]+c[3] {
			return
		}
	}
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return
	}
	d.cells[y][x] = r
	d.Styles[device.Position{X: x, Y: y}] = d.style
}

// Line returns row y of the grid.
func (d *Device) Line(y int) string {
	return string(d.cells[y])
}

// Screen returns the whole grid, rows separated by newlines.
func (d *Device) Screen() string {
	lines := make([]string, len(d.cells))
	for y := range d.cells {
		lines[y] = string(d.cells[y])
	}
	return strings.Join(lines, "\n")
}

func (d *Device) Reset() {
	d.Calls = nil
}

func (d *Device) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}
