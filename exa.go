// Package exa lists files. The command-line arguments pick the paths
// and the view; this package walks the paths, hands each directory's
// contents through the filter, and renders the result.
package exa

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/skade/exa/file"
	"github.com/skade/exa/options"
	"github.com/skade/exa/output"
	"github.com/skade/exa/term"
	"github.com/skade/exa/xattr"
)

// App is one invocation of the program: parsed options, the paths to
// list, and the streams to write to.
type App struct {
	Options *options.Options
	Paths   []string
	Out     io.Writer
	Err     io.Writer
	Logger  *slog.Logger
}

// DetectCapabilities inspects the environment the process actually has:
// whether stdout is a terminal and how wide, and whether this build can
// read extended attributes.
func DetectCapabilities() options.Capabilities {
	caps := options.Capabilities{
		Xattr: xattr.Enabled,
		Git:   true,
	}
	if width, _, ok := term.Dimensions(); ok {
		caps.TerminalWidth = width
	}
	return caps
}

// Main parses the arguments (without the program name) against the
// detected capabilities, runs, and returns the process exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	return Run(args, DetectCapabilities(), stdout, stderr)
}

// Run is Main with the capabilities supplied by the caller, which is
// what tests want.
func Run(args []string, caps options.Capabilities, stdout, stderr io.Writer) int {
	opts, paths, misfire := options.Parse(args, caps)
	if misfire != nil {
		if misfire.IsError() {
			fmt.Fprintln(stderr, misfire.Error())
		} else {
			fmt.Fprintln(stdout, misfire.Error())
		}
		return misfire.ExitStatus()
	}

	app := &App{
		Options: opts,
		Paths:   paths,
		Out:     stdout,
		Err:     stderr,
		Logger:  newLogger(os.Getenv("EXA_DEBUG"), stderr),
	}
	return app.List()
}

// newLogger builds a logger that stays quiet unless debugging was
// asked for. It never touches the global logger.
func newLogger(debug string, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type target struct {
	path  string
	depth int
}

// List stats every path, prints the ones that are plain files, then
// lists each directory in turn. Recursion appends further directories
// to the queue rather than nesting, so deep trees print breadth-first
// the way -R output traditionally reads.
//
// A path that can't be statted is reported on stderr and skipped; it
// doesn't stop the rest of the listing.
func (a *App) List() int {
	treatAsFiles := a.Options.DirAction.TreatDirsAsFiles()

	var files []*file.File
	var queue []target
	for _, path := range a.Paths {
		f, err := file.New(path)
		if err != nil {
			fmt.Fprintf(a.Err, "%s: %s\n", path, err)
			continue
		}
		if f.IsDirectory() && !treatAsFiles {
			queue = append(queue, target{path: path})
		} else {
			files = append(files, f)
		}
	}

	count := len(files) + len(queue)
	first := true

	// File arguments keep their command-line order; only directory
	// contents get sorted.
	if len(files) > 0 {
		first = false
		a.render(nil, files)
	}

	recurse, recursing := a.Options.DirAction.Recursion()
	flatRecursion := recursing && !recurse.Tree
	scanGit := a.Options.ShouldScanForGit()

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		a.Logger.Debug("listing directory", "path", t.path, "depth", t.depth)

		d, err := file.ReadDir(t.path, scanGit)
		if err != nil {
			fmt.Fprintf(a.Err, "%s: %s\n", t.path, err)
			continue
		}
		children, errs := d.Files()
		for _, e := range errs {
			fmt.Fprintln(a.Err, e)
		}

		children = a.Options.FilterFiles(children)
		a.Options.SortFiles(children)

		if flatRecursion && !recurse.IsTooDeep(t.depth) {
			for _, child := range children {
				if child.IsDirectory() {
					queue = append(queue, target{path: child.Path, depth: t.depth + 1})
					count++
				}
			}
		}

		if !first {
			fmt.Fprintln(a.Out)
		}
		first = false

		if count > 1 || flatRecursion {
			fmt.Fprintf(a.Out, "%s:\n", t.path)
		}

		a.render(d, children)
	}

	return 0
}

func (a *App) render(dir *file.Dir, files []*file.File) {
	switch v := a.Options.View.(type) {
	case options.Lines:
		output.RenderLines(a.Out, v, files)
	case options.Grid:
		output.RenderGrid(a.Out, v, files)
	case options.Details:
		for _, err := range output.RenderDetails(a.Out, v, dir, files) {
			fmt.Fprintln(a.Err, err)
		}
	case options.GridDetails:
		for _, err := range output.RenderGridDetails(a.Out, v, dir, files) {
			fmt.Fprintln(a.Err, err)
		}
	}
}
