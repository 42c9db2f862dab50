//go:build linux

package file

import (
	"os"
	"syscall"
)

// fillSys copies the stat fields the portable FileInfo surface does not
// expose. Field widths vary across linux architectures, hence the
// conversions.
func fillSys(md *Metadata, info os.FileInfo) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	md.Inode = uint64(st.Ino)
	md.Links = uint64(st.Nlink)
	md.Blocks = uint64(st.Blocks)
	md.UID = st.Uid
	md.GID = st.Gid
	md.Modified = int64(st.Mtim.Sec)
	md.Accessed = int64(st.Atim.Sec)
	md.Created = int64(st.Ctim.Sec)
}
