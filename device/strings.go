package device

import (
	"fmt"
	"strings"
)

func (s Style) String() string {
	return fmt.Sprintf("Style{FG: %d, BG: %d, Flags: {%s}}", s.FG, s.BG, s.Flags)
}

func (f Flags) String() string {
	flags := []string{}
	if f&Bold == Bold {
		flags = append(flags, "Bold")
	}
	if f&Italic == Italic {
		flags = append(flags, "Italic")
	}
	if f&Reverse == Reverse {
		flags = append(flags, "Reverse")
	}
	return strings.Join(flags, ", ")
}

func (t Tile) String() string {
	return fmt.Sprintf("Tile{%q %dx%d}", t.ID, t.Width, t.Height)
}
