// Package options turns command-line arguments into a description of
// what to list and how to show it. Parsing here is all-or-nothing: any
// flag combination that doesn't make sense is reported as a Misfire
// before a single file gets touched.
package options

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/skade/exa/file"
)

// Capabilities describes the environment the program is running in.
// Flags that the environment can't honour — git status without git
// support, extended attributes on a platform without them — aren't
// even registered, so using them reads as an unknown option.
type Capabilities struct {
	// TerminalWidth is the width of the terminal stdout is connected
	// to, or 0 when it isn't connected to one.
	TerminalWidth int

	// Xattr is whether extended attributes can be read here.
	Xattr bool

	// Git is whether git status support is available.
	Git bool
}

// Options is the parsed version of the user's command-line options.
type Options struct {
	DirAction DirAction
	Filter    FileFilter
	View      View
}

// matches wraps the parsed flag set so the deduce functions can ask
// about presence the same way whether or not a capability-gated flag
// got registered at all.
type matches struct {
	flags *pflag.FlagSet
	caps  Capabilities
}

func (m matches) present(name string) bool {
	f := m.flags.Lookup(name)
	return f != nil && f.Changed
}

func (m matches) value(name string) string {
	f := m.flags.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

func flagSet(caps Capabilities) *pflag.FlagSet {
	fs := pflag.NewFlagSet("exa", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolP("oneline", "1", false, "display one entry per line")
	fs.BoolP("all", "a", false, "show dot-files")
	fs.BoolP("binary", "b", false, "use binary prefixes in file sizes")
	fs.BoolP("bytes", "B", false, "list file sizes in bytes, without prefixes")
	fs.BoolP("list-dirs", "d", false, "list directories as regular files")
	fs.BoolP("group", "g", false, "show group as well as user")
	fs.BoolP("grid", "G", false, "display entries in a grid view (default)")
	fs.Bool("group-directories-first", false, "list directories before other files")
	fs.BoolP("header", "h", false, "show a header row at the top")
	fs.BoolP("links", "H", false, "show number of hard links")
	fs.BoolP("inode", "i", false, "show each file's inode number")
	fs.BoolP("long", "l", false, "display extended details and attributes")
	fs.StringP("level", "L", "", "maximum depth of recursion")
	fs.BoolP("modified", "m", false, "display timestamp of most recent modification")
	fs.BoolP("reverse", "r", false, "reverse order of files")
	fs.BoolP("recurse", "R", false, "recurse into directories")
	fs.StringP("sort", "s", "", "field to sort by")
	fs.BoolP("blocks", "S", false, "show number of file system blocks")
	fs.StringP("time", "t", "", "which timestamp to show for a file")
	fs.BoolP("tree", "T", false, "recurse into subdirectories in a tree view")
	fs.BoolP("accessed", "u", false, "display timestamp of last access for a file")
	fs.BoolP("created", "U", false, "display timestamp of creation for a file")
	fs.BoolP("across", "x", false, "sort multi-column view entries across")

	fs.Bool("version", false, "display version of exa")
	fs.BoolP("help", "?", false, "show list of command-line options")

	if caps.Git {
		fs.Bool("git", false, "show git status")
	}
	if caps.Xattr {
		fs.BoolP("extended", "@", false, "display extended attribute keys and sizes in long (-l) output")
	}

	return fs
}

func usage(fs *pflag.FlagSet) string {
	return "Usage:\n  exa [options] [files...]\n\nOptions:\n" + fs.FlagUsages()
}

// Parse reads the command-line arguments (without the program name)
// and produces the options along with the paths to list. An empty path
// list never comes back: with no paths given, the current directory is
// listed.
//
// A non-nil Misfire means nothing should be listed. That covers both
// mistakes and the help and version screens; IsError tells them apart.
func Parse(args []string, caps Capabilities) (*Options, []string, *Misfire) {
	fs := flagSet(caps)

	if err := fs.Parse(args); err != nil {
		return nil, nil, InvalidOptions(err)
	}

	m := matches{flags: fs, caps: caps}

	if m.present("help") {
		return nil, nil, helpMisfire(usage(fs))
	}
	if m.present("version") {
		return nil, nil, versionMisfire()
	}

	sortField := SortName
	if m.present("sort") {
		var mis *Misfire
		if sortField, mis = sortFieldFromWord(m.value("sort")); mis != nil {
			return nil, nil, mis
		}
	}

	filter := FileFilter{
		ListDirsFirst:  m.present("group-directories-first"),
		Reverse:        m.present("reverse"),
		ShowInvisibles: m.present("all"),
		SortField:      sortField,
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	// The column vocabulary resolves before the view gets composed, so a
	// size-format or timestamp conflict is reported as itself even when
	// --long never entered the picture.
	columns, mis := deduceColumns(m)
	if mis != nil {
		return nil, nil, mis
	}

	action, mis := deduceDirAction(m)
	if mis != nil {
		return nil, nil, mis
	}

	view, mis := deduceView(m, filter, action, columns)
	if mis != nil {
		return nil, nil, mis
	}

	return &Options{
		DirAction: action,
		Filter:    filter,
		View:      view,
	}, paths, nil
}

// SortFiles sorts files the way the options ask for.
func (o *Options) SortFiles(files []*file.File) {
	o.Filter.SortFiles(files)
}

// FilterFiles drops the files the options say not to list.
func (o *Options) FilterFiles(files []*file.File) []*file.File {
	return o.Filter.FilterFiles(files)
}

// ShouldScanForGit reports whether the view includes a git status
// column. It's only worth trying to discover a repository if the
// results end up being displayed.
func (o *Options) ShouldScanForGit() bool {
	switch v := o.View.(type) {
	case Details:
		return v.Columns != nil && v.Columns.ShouldScanForGit()
	case GridDetails:
		return v.Details.Columns != nil && v.Details.Columns.ShouldScanForGit()
	}
	return false
}
