package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skade/exa/file"
	"github.com/skade/exa/options"
)

func gridFiles(names ...string) []*file.File {
	files := make([]*file.File, len(names))
	for i, name := range names {
		files[i] = testFile(name, 1)
	}
	return files
}

func renderGrid(view options.Grid, files []*file.File) []string {
	var out bytes.Buffer
	RenderGrid(&out, view, files)
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestGridFillsDownwards(t *testing.T) {
	assert := assert.New(t)

	view := options.Grid{Width: 20, Colours: options.Plain}
	lines := renderGrid(view, gridFiles("one", "two", "three", "four", "five", "six"))

	assert.Equal([]string{
		"one  three  five",
		"two  four   six",
	}, lines)
}

func TestGridFillsAcross(t *testing.T) {
	assert := assert.New(t)

	view := options.Grid{Across: true, Width: 20, Colours: options.Plain}
	lines := renderGrid(view, gridFiles("one", "two", "three", "four", "five", "six"))

	assert.Equal([]string{
		"one   two   three",
		"four  five  six",
	}, lines)
}

func TestGridUsesOneRowWhenEverythingFits(t *testing.T) {
	assert := assert.New(t)

	view := options.Grid{Width: 80, Colours: options.Plain}
	lines := renderGrid(view, gridFiles("a", "b", "c"))

	assert.Equal([]string{"a  b  c"}, lines)
}

func TestGridFallsBackToOneColumn(t *testing.T) {
	assert := assert.New(t)

	view := options.Grid{Width: 4, Colours: options.Plain}
	lines := renderGrid(view, gridFiles("first", "second"))

	assert.Equal([]string{"first", "second"}, lines)
}

func TestGridRaggedLastColumn(t *testing.T) {
	assert := assert.New(t)

	// Five names over two rows: the last column only has one entry,
	// and no line carries trailing spaces.
	view := options.Grid{Width: 12, Colours: options.Plain}
	lines := renderGrid(view, gridFiles("aa", "bb", "cc", "dd", "ee"))

	assert.Equal([]string{
		"aa  cc  ee",
		"bb  dd",
	}, lines)
}

func TestGridNothingToShow(t *testing.T) {
	var out bytes.Buffer
	RenderGrid(&out, options.Grid{Width: 80}, nil)
	assert.Zero(t, out.Len())
}

func TestLinesView(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	RenderLines(&out, options.Lines{Colours: options.Plain}, gridFiles("one", "two"))
	assert.Equal("one\ntwo\n", out.String())
}
