// Package cells measures and wraps text in terminal cells.
//
// Text is normalised to NFC before it is measured, so that decomposed
// accents occupy a single cell. Escape sequences embedded in the text
// (for example colours produced by termenv) do not count towards widths.
package cells

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/text/unicode/norm"
)

// Metrics implements device.TextMeasurer for character-cell backends.
type Metrics struct{}

func (Metrics) Width(text string) int {
	width := 0
	for _, line := range strings.Split(norm.NFC.String(text), "\n") {
		if w := ansi.PrintableRuneWidth(line); w > width {
			width = w
		}
	}
	return width
}

func (Metrics) LongestWord(text string) int {
	longest := 0
	for _, word := range strings.Fields(norm.NFC.String(text)) {
		if w := ansi.PrintableRuneWidth(word); w > longest {
			longest = w
		}
	}
	return longest
}

func (Metrics) Wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	text = norm.NFC.String(text)
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	// wordwrap never breaks inside a word; wrap hard-breaks what is still too wide
	text = wrap.String(wordwrap.String(text, width), width)
	return strings.Split(text, "\n")
}

// Cut returns the cells [start, start+width) of line. Escape sequences
// take no cells and are all kept, so the cut keeps the styling in effect.
func (Metrics) Cut(line string, start, width int) string {
	if width <= 0 {
		return ""
	}
	buf := strings.Builder{}
	col := 0
	escape := false
	for _, r := range line {
		if r == ansi.Marker {
			escape = true
		}
		if escape {
			buf.WriteRune(r)
			if ansi.IsTerminator(r) {
				escape = false
			}
			continue
		}
		w := runewidth.RuneWidth(r)
		if col >= start && col+w <= start+width {
			buf.WriteRune(r)
		}
		col += w
	}
	return buf.String()
}
