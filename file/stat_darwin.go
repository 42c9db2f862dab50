//go:build darwin

package file

import (
	"os"
	"syscall"
)

// fillSys copies the stat fields the portable FileInfo surface does not
// expose. Created is the status-change time rather than the darwin
// birth time, so the column means the same thing it does on linux.
func fillSys(md *Metadata, info os.FileInfo) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	md.Inode = st.Ino
	md.Links = uint64(st.Nlink)
	md.Blocks = uint64(st.Blocks)
	md.UID = st.Uid
	md.GID = st.Gid
	md.Modified = st.Mtimespec.Sec
	md.Accessed = st.Atimespec.Sec
	md.Created = st.Ctimespec.Sec
}
