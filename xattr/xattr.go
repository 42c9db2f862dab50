// Package xattr reads extended attributes, on the platforms that have
// them.
package xattr

// Attribute is one extended attribute: its name and the size of its
// value in bytes. The values themselves never get displayed, so they
// never get read.
type Attribute struct {
	Name string
	Size int
}
