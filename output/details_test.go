package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skade/exa/file"
	"github.com/skade/exa/options"
)

func testFile(name string, size int64) *file.File {
	return &file.File{
		Name: name,
		Ext:  file.Ext(name),
		Path: name,
		Metadata: file.Metadata{
			Size: size,
			Mode: 0o644,
		},
	}
}

func testDir(name string) *file.File {
	f := testFile(name, 0)
	f.Metadata.Dir = true
	f.Metadata.Mode = os.ModeDir | 0o755
	return f
}

// bareColumns leaves only the mandatory columns, with raw byte sizes,
// so rows don't depend on the clock.
func bareColumns() *options.Columns {
	return &options.Columns{SizeFormat: options.JustBytes}
}

func TestPermissionsString(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		mode os.FileMode
		text string
	}{
		{0o644, ".rw-r--r--"},
		{0o755, ".rwxr-xr-x"},
		{0o600, ".rw-------"},
		{os.ModeDir | 0o755, "drwxr-xr-x"},
		{os.ModeSymlink | 0o777, "lrwxrwxrwx"},
		{os.ModeNamedPipe | 0o644, "|rw-r--r--"},
		{os.ModeSocket | 0o644, "srw-r--r--"},
		{os.ModeDevice | os.ModeCharDevice | 0o666, "crw-rw-rw-"},
		{os.ModeDevice | 0o660, "brw-rw----"},
		{os.ModeSetuid | 0o755, ".rwsr-xr-x"},
		{os.ModeSetuid | 0o655, ".rwSr-xr-x"},
		{os.ModeSetgid | 0o755, ".rwxr-sr-x"},
		{os.ModeSticky | 0o755, ".rwxr-xr-t"},
		{os.ModeDir | os.ModeSticky | 0o754, "drwxr-xr-T"},
	}

	for _, tc := range cases {
		assert.Equal(tc.text, permissionsString(tc.mode), "mode %v", tc.mode)
	}
}

func TestSizeCells(t *testing.T) {
	assert := assert.New(t)

	tab := newTable(PlainPalette(), nil)

	assert.Equal("999", tab.sizeCell(options.JustBytes, testFile("a", 999)).text)
	assert.Equal("1.5 kB", tab.sizeCell(options.DecimalBytes, testFile("a", 1500)).text)
	assert.Equal("1.5 KiB", tab.sizeCell(options.BinaryBytes, testFile("a", 1536)).text)
	assert.Equal("999 B", tab.sizeCell(options.DecimalBytes, testFile("a", 999)).text)

	// Directories have no meaningful size.
	assert.Equal("-", tab.sizeCell(options.JustBytes, testDir("d")).text)
}

func TestRenderDetailsAlignsColumns(t *testing.T) {
	assert := assert.New(t)

	view := options.Details{
		Columns: bareColumns(),
		Header:  true,
		Colours: options.Plain,
	}
	files := []*file.File{
		testFile("aaa.txt", 3),
		testFile("bb.bin", 12345),
	}
	// Owned by root so the user column is predictable.
	var out bytes.Buffer
	errs := RenderDetails(&out, view, nil, files)
	require.Empty(t, errs)

	assert.Equal([]string{
		"Permissions  Size User Name",
		".rw-r--r--      3 root aaa.txt",
		".rw-r--r--  12345 root bb.bin",
	}, strings.Split(strings.TrimRight(out.String(), "\n"), "\n"))
}

func TestRenderDetailsSymlinkArrow(t *testing.T) {
	assert := assert.New(t)

	link := testFile("link", 1)
	link.Metadata.Symlink = true
	link.Metadata.Mode = os.ModeSymlink | 0o777
	link.Metadata.Target = "/somewhere/else"

	view := options.Details{Columns: bareColumns(), Colours: options.Plain}

	var out bytes.Buffer
	RenderDetails(&out, view, nil, []*file.File{link})

	assert.Equal("lrwxrwxrwx 1 root link -> /somewhere/else\n", out.String())
}

func TestRenderDetailsTree(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "deep.txt"), []byte("d"), 0o644))

	root, err := file.New(dir)
	require.NoError(t, err)

	view := options.Details{
		Recurse: &options.RecurseOptions{Tree: true},
		Filter:  options.FileFilter{SortField: options.SortName},
		Colours: options.Plain,
	}

	var out bytes.Buffer
	errs := RenderDetails(&out, view, nil, []*file.File{root})
	require.Empty(t, errs)

	assert.Equal([]string{
		filepath.Base(dir),
		"├── alpha.txt",
		"└── sub",
		"    └── deep.txt",
	}, strings.Split(strings.TrimRight(out.String(), "\n"), "\n"))
}

func TestRenderDetailsTreeHidesDotfiles(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shown.txt"), []byte("s"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("h"), 0o644))

	root, err := file.New(dir)
	require.NoError(t, err)

	view := options.Details{
		Recurse: &options.RecurseOptions{Tree: true},
		Filter:  options.FileFilter{SortField: options.SortName},
		Colours: options.Plain,
	}

	var out bytes.Buffer
	RenderDetails(&out, view, nil, []*file.File{root})

	assert.NotContains(out.String(), ".hidden")
	assert.Contains(out.String(), "shown.txt")
}

func TestRightAlignment(t *testing.T) {
	assert := assert.New(t)

	assert.True(rightAligned(options.FileSize))
	assert.True(rightAligned(options.HardLinks))
	assert.True(rightAligned(options.Inode))
	assert.True(rightAligned(options.Blocks))
	assert.False(rightAligned(options.Permissions))
	assert.False(rightAligned(options.User))
	assert.False(rightAligned(options.Timestamp))
	assert.False(rightAligned(options.GitStatus))
}
