package tcell

import (
	"log"

	"boxes/device"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type tcellDevice struct {
	screen tcell.Screen
	tiles  map[string]Glyph
	style  device.Style
	clip   *clipRect
}

type clipRect struct {
	x, y, width, height int
}

// Glyph is how a tile id is drawn on a terminal.
type Glyph struct {
	Rune  rune
	Style device.Style
}

// Device is a device.Device that can be woken from PollEvent.
type Device interface {
	device.Device
	Interrupt()
	Exit()
}

func NewDevice(tiles map[string]Glyph) (Device, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(screen, tiles)
}

// New wraps an existing screen, initialising it.
func New(screen tcell.Screen, tiles map[string]Glyph) (Device, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	if tiles == nil {
		tiles = map[string]Glyph{}
	}
	return &tcellDevice{screen: screen, tiles: tiles}, nil
}

func (d *tcellDevice) PollEvent() any {
	ev := d.screen.PollEvent()
	for {
		if ev, mouseEvent := ev.(*tcell.EventMouse); !mouseEvent || ev.Buttons() != 0 {
			break
		}
		ev = d.screen.PollEvent()
	}
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
		w, h := ev.Size()
		return device.ResizeEvent{Width: w, Height: h}

	case *tcell.EventKey:
		log.Printf("key: name=%v rune=%q mod=%v", ev.Name(), ev.Rune(), ev.Modifiers())
		return device.KeyEvent{Name: ev.Name(), Rune: ev.Rune()}

	case *tcell.EventMouse:
		x, y := ev.Position()
		return device.MouseEvent{Col: x, Line: y}

	case *tcell.EventInterrupt, nil:
		return nil

	default:
		log.Printf("unhandled tcell event: %#v", ev)
		return nil
	}
}

// Interrupt wakes a goroutine blocked in PollEvent.
func (d *tcellDevice) Interrupt() {
	_ = d.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (d *tcellDevice) SetClip(x, y, width, height int) {
	d.clip = &clipRect{x, y, width, height}
}

func (d *tcellDevice) ClearClip() {
	d.clip = nil
}

func (d *tcellDevice) Size() (int, int) {
	return d.screen.Size()
}

func (d *tcellDevice) SetStyle(style device.Style) {
	d.style = style
}

func (d *tcellDevice) CurrentStyle() device.Style {
	return d.style
}

func (d *tcellDevice) Text(text string, pos device.Position) {
	style := tcellStyle(d.style)
	x := pos.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if d.visible(x, pos.Y) && d.visible(x+w-1, pos.Y) {
			d.screen.SetContent(x, pos.Y, r, nil, style)
		}
		x += w
	}
}

func (d *tcellDevice) Tile(id string, pos device.Position) {
	glyph, ok := d.tiles[id]
	if !ok {
		glyph = Glyph{Rune: '?', Style: d.style}
	}
	if d.visible(pos.X, pos.Y) {
		d.screen.SetContent(pos.X, pos.Y, glyph.Rune, nil, tcellStyle(glyph.Style))
	}
}

func (d *tcellDevice) visible(x, y int) bool {
	if c := d.clip; c != nil {
		return x >= c.x && y >= c.y && x < c.x+c.width && y < c.y+c.height
	}
	return true
}

func (d *tcellDevice) Clear() {
	d.screen.Fill(' ', tcellStyle(d.style))
}

func (d *tcellDevice) Show() {
	d.screen.Show()
}

func (d *tcellDevice) Exit() {
	d.screen.Fini()
}

func tcellStyle(style device.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(style.FG))).
		Background(tcell.PaletteColor(int(style.BG))).
		Bold(style.Flags&device.Bold == device.Bold).
		Italic(style.Flags&device.Italic == device.Italic).
		Reverse(style.Flags&device.Reverse == device.Reverse)
}
