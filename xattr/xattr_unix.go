//go:build linux || darwin

package xattr

import (
	"bytes"

	"golang.org/x/sys/unix"
)

// Enabled reports whether extended attributes can be read on this
// platform.
const Enabled = true

// List returns the extended attributes of the file at path, without
// following symlinks.
func List(path string) ([]Attribute, error) {
	size, err := unix.Llistxattr(path, nil)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	read, err := unix.Llistxattr(path, buf)
	if err != nil {
		return nil, err
	}

	var attrs []Attribute
	for _, name := range bytes.Split(buf[:read], []byte{0}) {
		if len(name) == 0 {
			continue
		}
		// The value size can change between the two calls; that just
		// makes the reported size approximate.
		valueSize, err := unix.Lgetxattr(path, string(name), nil)
		if err != nil {
			valueSize = 0
		}
		attrs = append(attrs, Attribute{Name: string(name), Size: valueSize})
	}
	return attrs, nil
}
