package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/skade/exa/file"
	"github.com/skade/exa/options"
)

const gridGutter = 2

// RenderGrid flows file names into as many columns as the terminal
// width allows. The default fills columns downwards; Across fills rows
// left-to-right instead.
func RenderGrid(w io.Writer, view options.Grid, files []*file.File) {
	n := len(files)
	if n == 0 {
		return
	}

	p := PaletteFor(view.Colours)
	widths := make([]int, n)
	styled := make([]string, n)
	for i, f := range files {
		widths[i] = displayWidth(f.Name)
		styled[i] = p.FileName(f)
	}

	// Try the widest grid first and narrow until one fits. A single
	// column always "fits", however narrow the terminal claims to be.
	for cols := n; cols >= 1; cols-- {
		rows := (n + cols - 1) / cols
		if (n+rows-1)/rows != cols {
			// Same shape as a wider attempt already tried.
			continue
		}

		colWidths := make([]int, cols)
		for i := 0; i < n; i++ {
			c := i / rows
			if view.Across {
				c = i % cols
			}
			if widths[i] > colWidths[c] {
				colWidths[c] = widths[i]
			}
		}

		total := gridGutter * (cols - 1)
		for _, cw := range colWidths {
			total += cw
		}
		if total > view.Width && cols > 1 {
			continue
		}

		writeGrid(w, styled, widths, colWidths, rows, cols, view.Across)
		return
	}
}

func writeGrid(w io.Writer, styled []string, widths, colWidths []int, rows, cols int, across bool) {
	n := len(styled)
	for r := 0; r < rows; r++ {
		var line strings.Builder
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if across {
				i = r*cols + c
			}
			if i >= n {
				continue
			}
			line.WriteString(styled[i])

			last := c == cols-1
			if !across && (c+1)*rows+r >= n {
				last = true
			}
			if across && r*cols+c+1 >= n {
				last = true
			}
			if !last {
				line.WriteString(strings.Repeat(" ", colWidths[c]-widths[i]+gridGutter))
			}
		}
		fmt.Fprintln(w, line.String())
	}
}
