// Package output renders listed files: as a grid, as lines, as a
// details table, or as grids of details tables.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/skade/exa/file"
	"github.com/skade/exa/options"
)

// Palette holds the style for every kind of thing that gets printed.
// The zero value renders everything unstyled, which is what piped
// output gets.
type Palette struct {
	Dir        lipgloss.Style
	Symlink    lipgloss.Style
	Executable lipgloss.Style
	Regular    lipgloss.Style
	Special    lipgloss.Style

	Permissions lipgloss.Style
	Size        lipgloss.Style
	Blocks      lipgloss.Style
	User        lipgloss.Style
	Group       lipgloss.Style
	Inode       lipgloss.Style
	Links       lipgloss.Style
	Time        lipgloss.Style
	Git         lipgloss.Style

	Header      lipgloss.Style
	Punctuation lipgloss.Style
}

// Colourful is the palette for terminal output.
func Colourful() Palette {
	return Palette{
		Dir:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Symlink:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Executable: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Special:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),

		Permissions: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Size:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Blocks:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		User:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		Group:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Inode:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Links:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Time:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Git:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),

		Header:      lipgloss.NewStyle().Underline(true),
		Punctuation: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// PlainPalette is the palette for output that isn't going to a
// terminal.
func PlainPalette() Palette {
	return Palette{}
}

// PaletteFor picks the palette matching a view's colour mode.
func PaletteFor(mode options.ColourMode) Palette {
	if mode == options.Colourful {
		return Colourful()
	}
	return PlainPalette()
}

// FileStyle picks the style a file's name gets printed in.
func (p Palette) FileStyle(f *file.File) lipgloss.Style {
	mode := f.Metadata.Mode
	switch {
	case f.Metadata.Symlink:
		return p.Symlink
	case f.IsDirectory():
		return p.Dir
	case mode&(os.ModeNamedPipe|os.ModeSocket|os.ModeDevice) != 0:
		return p.Special
	case f.Executable():
		return p.Executable
	}
	return p.Regular
}

// FileName renders a file's name in its style.
func (p Palette) FileName(f *file.File) string {
	return p.FileStyle(f).Render(f.Name)
}
