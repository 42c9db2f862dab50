package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one entry in a table or grid: its unstyled text, and the
// style it gets rendered in. Widths and padding always work on the
// unstyled text, so alignment survives whatever escape codes the style
// adds.
type cell struct {
	text  string
	style lipgloss.Style
	right bool
}

func (c cell) width() int {
	return displayWidth(c.text)
}

// render pads the cell out to the given width, styling only the text.
func (c cell) render(width int) string {
	pad := width - c.width()
	if pad < 0 {
		pad = 0
	}
	if c.right {
		return strings.Repeat(" ", pad) + c.style.Render(c.text)
	}
	return c.style.Render(c.text) + strings.Repeat(" ", pad)
}

// displayWidth is the number of terminal cells a string occupies,
// which is not its length once wide runes are involved.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
