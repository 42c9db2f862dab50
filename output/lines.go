package output

import (
	"fmt"
	"io"

	"github.com/skade/exa/file"
	"github.com/skade/exa/options"
)

// RenderLines writes one file name per line.
func RenderLines(w io.Writer, view options.Lines, files []*file.File) {
	p := PaletteFor(view.Colours)
	for _, f := range files {
		fmt.Fprintln(w, p.FileName(f))
	}
}
