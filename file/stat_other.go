//go:build !linux && !darwin

package file

import "os"

// fillSys has nothing extra to copy on platforms without a unix stat
// structure; the inode, link, block and ownership columns stay zero and
// the accessed/created clocks fall back to the modified time.
func fillSys(md *Metadata, info os.FileInfo) {
	md.Accessed = md.Modified
	md.Created = md.Modified
}
