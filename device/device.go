package device

// Device is everything the layout core needs from a rendering backend.
// All calls happen on the goroutine that owns the widgets.Root.
type Device interface {
	Painter
	// SetClip informs the backend of the effective clip rectangle.
	// The core has already intersected it with the enclosing clips.
	SetClip(x, y, width, height int)
	ClearClip()
	// Size reports the current viewport in cells.
	Size() (width, height int)
	// PollEvent blocks until the next event: ResizeEvent, KeyEvent, MouseEvent or nil.
	PollEvent() any
	Clear()
	Show()
}

type Painter interface {
	SetStyle(style Style)
	CurrentStyle() Style
	Text(text string, pos Position)
	Tile(id string, pos Position)
}

// TextMeasurer lays out text for a given width.
type TextMeasurer interface {
	// Width is the widest line of text, in cells.
	Width(text string) int
	// LongestWord is the width of the widest unbreakable word.
	LongestWord(text string) int
	// Wrap breaks text into lines no wider than width. Width <= 0 disables wrapping.
	Wrap(text string, width int) []string
	// Cut returns the part of line covering cells [start, start+width).
	Cut(line string, start, width int) string
}

type Position struct {
	X int
	Y int
}

type Tile struct {
	ID     string
	Width  int
	Height int
}

type Style struct {
	FG, BG byte
	Flags  Flags
}

type Flags byte

const (
	Bold    Flags = 1
	Italic  Flags = 2
	Reverse Flags = 4
)

type ResizeEvent struct {
	Width  int
	Height int
}

type KeyEvent struct {
	Name string
	Rune rune
}

type MouseEvent struct {
	Col  int
	Line int
}
