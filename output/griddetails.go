package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/skade/exa/file"
	"github.com/skade/exa/options"
)

// RenderGridDetails writes details tables side by side: the --long
// --grid view. Each column is its own table with its own widths. When
// not even two tables fit the terminal, it falls back to the ordinary
// details view.
func RenderGridDetails(w io.Writer, view options.GridDetails, dir *file.Dir, files []*file.File) []error {
	n := len(files)
	if n == 0 {
		return nil
	}

	for cols := n; cols >= 2; cols-- {
		rows := (n + cols - 1) / cols
		if (n+rows-1)/rows != cols {
			continue
		}

		chunks := make([][]renderedLine, 0, cols)
		widths := make([]int, 0, cols)
		total := gridGutter * (cols - 1)

		for c := 0; c < cols; c++ {
			start := c * rows
			end := min(start+rows, n)

			r := newDetailsRenderer(view.Details, dir)
			r.addFiles(files[start:end], dir, 0, "")
			lines := r.table.lines()

			width := 0
			for _, line := range lines {
				if line.width > width {
					width = line.width
				}
			}

			chunks = append(chunks, lines)
			widths = append(widths, width)
			total += width
		}

		if total > view.Grid.Width {
			continue
		}

		writeChunks(w, chunks, widths)
		return nil
	}

	return RenderDetails(w, view.Details, dir, files)
}

func writeChunks(w io.Writer, chunks [][]renderedLine, widths []int) {
	height := 0
	for _, chunk := range chunks {
		if len(chunk) > height {
			height = len(chunk)
		}
	}

	for row := 0; row < height; row++ {
		var b strings.Builder
		for c, chunk := range chunks {
			if row >= len(chunk) {
				break
			}
			line := chunk[row]
			b.WriteString(line.text)

			last := c == len(chunks)-1 || row >= len(chunks[c+1])
			if !last {
				b.WriteString(strings.Repeat(" ", widths[c]-line.width+gridGutter))
			}
		}
		fmt.Fprintln(w, b.String())
	}
}
