package output

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/skade/exa/file"
	"github.com/skade/exa/options"
	"github.com/skade/exa/xattr"
)

// RenderDetails writes the --long table: one file per row, metadata in
// columns, the file name last. When the view recurses tree-style, each
// directory's contents nest under it with connector lines.
//
// dir provides git context for the files and may be nil when plain
// file arguments are being listed. Unreadable entries don't interrupt
// the table; their errors come back for the caller to report.
func RenderDetails(w io.Writer, view options.Details, dir *file.Dir, files []*file.File) []error {
	r := newDetailsRenderer(view, dir)
	r.addFiles(files, dir, 0, "")
	r.table.write(w)
	return r.errs
}

type detailsRenderer struct {
	view  options.Details
	table *table
	errs  []error
}

func newDetailsRenderer(view options.Details, dir *file.Dir) *detailsRenderer {
	p := PaletteFor(view.Colours)

	var columns []options.Column
	if view.Columns != nil {
		columns = view.Columns.ForDir(dir)
	}

	t := newTable(p, columns)
	if view.Columns != nil {
		t.scanGit = view.Columns.ShouldScanForGit()
	}

	if view.Header && len(columns) > 0 {
		t.addHeader()
	}

	return &detailsRenderer{view: view, table: t}
}

func (r *detailsRenderer) addFiles(files []*file.File, dir *file.Dir, depth int, prefix string) {
	for i, f := range files {
		last := i == len(files)-1

		rowPrefix := ""
		childPrefix := ""
		if depth > 0 {
			rowPrefix, childPrefix = treePrefixes(prefix, last)
		}

		r.table.addFile(f, dir, rowPrefix)

		if r.view.Xattr {
			r.addAttributes(f, rowPrefix)
		}

		if r.recursesInto(f, depth) {
			sub, err := file.ReadDir(f.Path, r.table.scanGit)
			if err != nil {
				r.errs = append(r.errs, err)
				continue
			}
			children, errs := sub.Files()
			r.errs = append(r.errs, errs...)

			children = r.view.Filter.FilterFiles(children)
			r.view.Filter.SortFiles(children)
			r.addFiles(children, sub, depth+1, childPrefix)
		}
	}
}

func (r *detailsRenderer) recursesInto(f *file.File, depth int) bool {
	return r.view.Recurse != nil &&
		r.view.Recurse.Tree &&
		!r.view.Recurse.IsTooDeep(depth) &&
		f.IsDirectory()
}

func (r *detailsRenderer) addAttributes(f *file.File, rowPrefix string) {
	attrs, err := xattr.List(f.Path)
	if err != nil || len(attrs) == 0 {
		return
	}
	indent := strings.Repeat(" ", displayWidth(rowPrefix))
	for _, attr := range attrs {
		text := fmt.Sprintf("%s (%d)", attr.Name, attr.Size)
		r.table.addContinuation(indent+r.table.palette.Punctuation.Render(text), displayWidth(indent+text))
	}
}

// table lays rows of cells out with per-column widths. The name sits
// after all the columns and never gets padded, so it can run as long
// as it likes.
type table struct {
	palette Palette
	columns []options.Column
	rows    []row
	scanGit bool
}

type row struct {
	// cells is nil for continuation rows, which carry no metadata and
	// start where the name column does.
	cells     []cell
	name      string
	nameWidth int
}

func newTable(p Palette, columns []options.Column) *table {
	return &table{palette: p, columns: columns}
}

func (t *table) addHeader() {
	cells := make([]cell, len(t.columns))
	for i, col := range t.columns {
		cells[i] = cell{text: col.Header(), style: t.palette.Header, right: rightAligned(col.Kind)}
	}
	t.rows = append(t.rows, row{
		cells:     cells,
		name:      t.palette.Header.Render("Name"),
		nameWidth: len("Name"),
	})
}

func (t *table) addFile(f *file.File, dir *file.Dir, prefix string) {
	cells := make([]cell, len(t.columns))
	for i, col := range t.columns {
		cells[i] = t.fileCell(col, f, dir)
	}

	name := t.palette.Punctuation.Render(prefix) + t.palette.FileName(f)
	width := displayWidth(prefix) + displayWidth(f.Name)
	if f.Metadata.Symlink && f.Metadata.Target != "" {
		name += t.palette.Punctuation.Render(" -> ") + f.Metadata.Target
		width += displayWidth(" -> ") + displayWidth(f.Metadata.Target)
	}

	t.rows = append(t.rows, row{cells: cells, name: name, nameWidth: width})
}

func (t *table) addContinuation(name string, width int) {
	t.rows = append(t.rows, row{name: name, nameWidth: width})
}

func (t *table) fileCell(col options.Column, f *file.File, dir *file.Dir) cell {
	m := f.Metadata

	switch col.Kind {
	case options.FileSize:
		return t.sizeCell(col.Size, f)
	case options.Timestamp:
		return cell{text: timestamp(timeFor(col.Time, f)), style: t.palette.Time}
	case options.Blocks:
		if !m.Mode.IsRegular() {
			return cell{text: "-", style: t.palette.Punctuation, right: true}
		}
		return cell{text: strconv.FormatUint(m.Blocks, 10), style: t.palette.Blocks, right: true}
	case options.User:
		return cell{text: userName(m.UID), style: t.palette.User}
	case options.Group:
		return cell{text: groupName(m.GID), style: t.palette.Group}
	case options.HardLinks:
		return cell{text: strconv.FormatUint(m.Links, 10), style: t.palette.Links, right: true}
	case options.Inode:
		return cell{text: strconv.FormatUint(m.Inode, 10), style: t.palette.Inode, right: true}
	case options.GitStatus:
		text := "--"
		if dir != nil {
			text = dir.GitStatusFor(f)
		}
		return cell{text: text, style: t.palette.Git}
	}
	return cell{text: permissionsString(m.Mode), style: t.palette.Permissions}
}

func (t *table) sizeCell(format options.SizeFormat, f *file.File) cell {
	if f.IsDirectory() {
		return cell{text: "-", style: t.palette.Punctuation, right: true}
	}

	size := uint64(f.Metadata.Size)
	var text string
	switch format {
	case options.JustBytes:
		text = strconv.FormatInt(f.Metadata.Size, 10)
	case options.BinaryBytes:
		text = humanize.IBytes(size)
	default:
		text = humanize.Bytes(size)
	}
	return cell{text: text, style: t.palette.Size, right: true}
}

func (t *table) write(w io.Writer) {
	for _, line := range t.lines() {
		fmt.Fprintln(w, line.text)
	}
}

type renderedLine struct {
	text  string
	width int
}

func (t *table) lines() []renderedLine {
	widths := make([]int, len(t.columns))
	for _, r := range t.rows {
		for i, c := range r.cells {
			if c.width() > widths[i] {
				widths[i] = c.width()
			}
		}
	}

	offset := 0
	for _, wd := range widths {
		offset += wd + 1
	}

	lines := make([]renderedLine, 0, len(t.rows))
	for _, r := range t.rows {
		var b strings.Builder
		if r.cells == nil {
			b.WriteString(strings.Repeat(" ", offset))
		} else {
			for i, c := range r.cells {
				b.WriteString(c.render(widths[i]))
				b.WriteByte(' ')
			}
		}
		b.WriteString(r.name)
		lines = append(lines, renderedLine{text: b.String(), width: offset + r.nameWidth})
	}
	return lines
}

func rightAligned(kind options.ColumnKind) bool {
	switch kind {
	case options.FileSize, options.HardLinks, options.Inode, options.Blocks:
		return true
	}
	return false
}

func timeFor(t options.TimeType, f *file.File) int64 {
	switch t {
	case options.TimeAccessed:
		return f.Metadata.Accessed
	case options.TimeCreated:
		return f.Metadata.Created
	}
	return f.Metadata.Modified
}

// timestamp renders a unix time the short way: time of day for this
// year, the year itself for anything older.
func timestamp(secs int64) string {
	t := time.Unix(secs, 0)
	if t.Year() == time.Now().Year() {
		return t.Format("_2 Jan 15:04")
	}
	return t.Format("_2 Jan  2006")
}

func userName(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(id); err == nil && u.Username != "" {
		return u.Username
	}
	return id
}

func groupName(gid uint32) string {
	id := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(id); err == nil && g.Name != "" {
		return g.Name
	}
	return id
}

// permissionsString is the classic ten-character mode column, except
// that regular files get '.' rather than '-' for their type.
func permissionsString(m os.FileMode) string {
	var b [10]byte
	b[0] = typeChar(m)

	perms := []struct {
		bit os.FileMode
		ch  byte
	}{
		{0o400, 'r'}, {0o200, 'w'}, {0o100, 'x'},
		{0o040, 'r'}, {0o020, 'w'}, {0o010, 'x'},
		{0o004, 'r'}, {0o002, 'w'}, {0o001, 'x'},
	}
	for i, p := range perms {
		if m&p.bit != 0 {
			b[i+1] = p.ch
		} else {
			b[i+1] = '-'
		}
	}

	if m&os.ModeSetuid != 0 {
		b[3] = setuidChar(b[3])
	}
	if m&os.ModeSetgid != 0 {
		b[6] = setuidChar(b[6])
	}
	if m&os.ModeSticky != 0 {
		if b[9] == 'x' {
			b[9] = 't'
		} else {
			b[9] = 'T'
		}
	}

	return string(b[:])
}

func setuidChar(ch byte) byte {
	if ch == 'x' {
		return 's'
	}
	return 'S'
}

func typeChar(m os.FileMode) byte {
	switch {
	case m&os.ModeSymlink != 0:
		return 'l'
	case m.IsDir():
		return 'd'
	case m&os.ModeNamedPipe != 0:
		return '|'
	case m&os.ModeSocket != 0:
		return 's'
	case m&os.ModeCharDevice != 0:
		return 'c'
	case m&os.ModeDevice != 0:
		return 'b'
	}
	return '.'
}
