package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExt(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		name string
		ext  string
	}{
		{"file.txt", "txt"},
		{"photo.JPG", "jpg"},
		{"archive.tar.gz", "gz"},
		{"Makefile", ""},
		{".gitignore", "gitignore"},
		{"trailing.", ""},
	}

	for _, tc := range cases {
		assert.Equal(tc.ext, Ext(tc.name), "ext of %q", tc.name)
	}
}

func TestNewReadsMetadata(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello, world"), 0o644))

	f, err := New(path)
	require.NoError(t, err)

	assert.Equal("hello.txt", f.Name)
	assert.Equal("txt", f.Ext)
	assert.Equal(path, f.Path)
	assert.Equal(int64(12), f.Metadata.Size)
	assert.False(f.IsDirectory())
	assert.False(f.IsDotfile())
	assert.False(f.Executable())
	assert.NotZero(f.Metadata.Modified)
	assert.NotZero(f.Metadata.Inode)
}

func TestNewOnDirectory(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	f, err := New(dir)
	require.NoError(t, err)

	assert.True(f.IsDirectory())
	assert.False(f.Executable(), "directories aren't executable files")
}

func TestNewOnMissingPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestExecutable(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))

	f, err := New(path)
	require.NoError(t, err)
	assert.True(f.Executable())
}

func TestDotfile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".profile")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	f, err := New(path)
	require.NoError(t, err)
	assert.True(f.IsDotfile())
}

func TestSymlink(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	targetPath := filepath.Join(dir, "target.txt")
	linkPath := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(targetPath, []byte("x"), 0o644))
	require.NoError(t, os.Symlink(targetPath, linkPath))

	f, err := New(linkPath)
	require.NoError(t, err)

	assert.True(f.Metadata.Symlink)
	assert.Equal(targetPath, f.Metadata.Target)
	assert.False(f.IsDirectory(), "the link itself is not a directory")
}
