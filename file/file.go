// Package file holds the records the listing works on: a File is a name
// plus the metadata the sort comparators and detail columns read, and a
// Dir is a directory's contents plus its (optional) git repository.
package file

import (
	"os"
	"path/filepath"
	"strings"
)

// File is one directory entry. The fields are filled once from lstat and
// never change afterwards.
type File struct {
	// Name is the base name, exactly as it appears in the listing.
	Name string

	// Ext is the lowercased text after the final dot of the name, or ""
	// when the name has no extension. "Makefile" has none; "photo.JPG"
	// has "jpg".
	Ext string

	// Path is the path the file was reached by, suitable for lstat and
	// for recursing into when the file is a directory.
	Path string

	Metadata Metadata
}

// Metadata carries the stat fields the listing reads. The unix-only
// numbers (inode, links, blocks, uid, gid, the three timestamps) come
// from the platform stat structure; on other platforms they stay zero.
type Metadata struct {
	Size   int64
	Inode  uint64
	Links  uint64
	Blocks uint64
	UID    uint32
	GID    uint32
	Mode   os.FileMode

	// Seconds since the epoch. Created is the status-change time on
	// platforms without a birth time, matching what ls -lc shows.
	Modified int64
	Accessed int64
	Created  int64

	Dir     bool
	Symlink bool

	// Target is the link destination when Symlink is set.
	Target string
}

// New lstats path and builds a File from what it finds.
func New(path string) (*File, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return FromInfo(path, info), nil
}

// FromInfo builds a File from an already-gathered os.FileInfo, avoiding a
// second lstat when the caller walked a directory.
func FromInfo(path string, info os.FileInfo) *File {
	name := info.Name()
	if name == "" || name == "." {
		name = filepath.Base(path)
	}

	f := &File{
		Name: name,
		Ext:  Ext(name),
		Path: path,
		Metadata: Metadata{
			Size:     info.Size(),
			Mode:     info.Mode(),
			Modified: info.ModTime().Unix(),
			Dir:      info.IsDir(),
			Symlink:  info.Mode()&os.ModeSymlink != 0,
		},
	}

	fillSys(&f.Metadata, info)

	if f.Metadata.Symlink {
		if target, err := os.Readlink(path); err == nil {
			f.Metadata.Target = target
		}
	}
	return f
}

// IsDirectory reports whether the entry is a directory.
func (f *File) IsDirectory() bool { return f.Metadata.Dir }

// IsDotfile reports whether the name starts with a dot, which is what
// the filter hides unless --all is given.
func (f *File) IsDotfile() bool { return strings.HasPrefix(f.Name, ".") }

// Executable reports whether any execute bit is set on a regular file.
func (f *File) Executable() bool {
	return !f.Metadata.Dir && f.Metadata.Mode&0o111 != 0
}

// Ext extracts the lowercased extension from a name, "" when there is
// none. The dot itself is not included.
func Ext(name string) string {
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return ""
	}
	return strings.ToLower(name[dot+1:])
}
