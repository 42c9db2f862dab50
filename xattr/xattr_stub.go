//go:build !linux && !darwin

package xattr

// Enabled reports whether extended attributes can be read on this
// platform.
const Enabled = false

// List returns nothing on platforms without extended attribute
// support.
func List(path string) ([]Attribute, error) {
	return nil, nil
}
