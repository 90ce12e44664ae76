package raster

import (
	"image/color"
	"path/filepath"
	"testing"

	"boxes/device"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func pixel(d *Device, x, y int) color.RGBA {
	r, g, b, a := d.Image().At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestSize(t *testing.T) {
	d := New(10, 4, nil)
	if cols, rows := d.Size(); cols != 10 || rows != 4 {
		t.Errorf("Size() = %dx%d, want 10x4", cols, rows)
	}
	if got := d.Image().Bounds().Size(); got.X != 10*CellWidth || got.Y != 4*CellHeight {
		t.Errorf("image size = %v", got)
	}
}

func TestClearAndText(t *testing.T) {
	d := New(4, 2, nil)
	d.SetStyle(device.Style{BG: 16})
	d.Clear()
	d.SetStyle(device.Style{FG: 231, BG: 21})
	d.Text("  ", device.Position{X: 1, Y: 1})

	tests := map[string]struct {
		x, y int
		want color.RGBA
	}{
		"cleared":     {3, 3, black},
		"first cell":  {CellWidth + 3, CellHeight + 6, blue},
		"second cell": {2*CellWidth + 3, CellHeight + 6, blue},
		"after text":  {3*CellWidth + 3, CellHeight + 6, black},
		"row above":   {CellWidth + 3, 6, black},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := pixel(d, tc.x, tc.y); got != tc.want {
				t.Errorf("pixel(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	d := New(4, 1, nil)
	d.SetStyle(device.Style{BG: 16})
	d.Clear()
	d.SetClip(1, 0, 2, 1)
	d.SetStyle(device.Style{BG: 196})
	d.Text("    ", device.Position{})

	for col, want := range []color.RGBA{black, red, red, black} {
		if got := pixel(d, col*CellWidth+3, 6); got != want {
			t.Errorf("cell %d = %v, want %v", col, got, want)
		}
	}

	d.ClearClip()
	d.Text(" ", device.Position{X: 3})
	if got := pixel(d, 3*CellWidth+3, 6); got != red {
		t.Errorf("after ClearClip cell 3 = %v, want %v", got, red)
	}
}

func TestReverse(t *testing.T) {
	d := New(1, 1, nil)
	d.SetStyle(device.Style{FG: 21, BG: 16, Flags: device.Reverse})
	d.Text(" ", device.Position{})
	if got := pixel(d, 3, 6); got != blue {
		t.Errorf("reversed background = %v, want %v", got, blue)
	}
}

func TestSavePNG(t *testing.T) {
	d := New(2, 1, map[string]rune{"wall": '#'})
	d.Tile("wall", device.Position{})
	if err := d.SavePNG(filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Fatal(err)
	}
}
