package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	git "github.com/go-git/go-git/v5"
)

// Dir is a directory that is being listed: its entries, and the git
// repository containing it when the caller asked for one to be found.
type Dir struct {
	Path string

	entries []os.DirEntry

	repo     *git.Repository
	worktree *git.Worktree
	root     string // worktree root, absolute

	status func() (git.Status, error) // memoized; expensive on big repos
}

// ReadDir lists path. Repository detection walks upwards from path the
// way git itself does, but only when scanGit is set — discovering a
// repository is only worth it if a git column will be displayed.
func ReadDir(path string, scanGit bool) (*Dir, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", path, err)
	}

	d := &Dir{Path: path, entries: entries}
	if scanGit {
		d.detectRepo()
	}
	d.status = sync.OnceValues(d.loadStatus)
	return d, nil
}

// Files stats every entry and returns the resulting records, plus the
// errors for entries that could not be statted. One unreadable entry
// does not fail the rest of the listing.
func (d *Dir) Files() ([]*File, []error) {
	files := make([]*File, 0, len(d.entries))
	var errs []error

	for _, entry := range d.entries {
		path := filepath.Join(d.Path, entry.Name())
		info, err := entry.Info()
		if err != nil {
			errs = append(errs, fmt.Errorf("stat %s: %w", path, err))
			continue
		}
		files = append(files, FromInfo(path, info))
	}
	return files, errs
}

// HasGitRepo reports whether a repository was found for this directory.
func (d *Dir) HasGitRepo() bool { return d.repo != nil }

// GitStatusFor returns the two-character staging/worktree status for a
// file in this directory, or "--" when the file is unmodified, outside
// the repository, or no repository was found.
func (d *Dir) GitStatusFor(f *File) string {
	if d.worktree == nil {
		return "--"
	}
	st, err := d.status()
	if err != nil {
		return "--"
	}

	abs, err := filepath.Abs(f.Path)
	if err != nil {
		return "--"
	}
	rel, err := filepath.Rel(d.root, abs)
	if err != nil {
		return "--"
	}

	entry, ok := st[filepath.ToSlash(rel)]
	if !ok {
		return "--"
	}
	return string([]byte{statusChar(entry.Staging), statusChar(entry.Worktree)})
}

func (d *Dir) detectRepo() {
	repo, err := git.PlainOpenWithOptions(d.Path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return // includes git.ErrRepositoryNotExists
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return // bare repository: nothing to show a status for
	}
	d.repo = repo
	d.worktree = worktree
	d.root = worktree.Filesystem.Root()
}

func (d *Dir) loadStatus() (git.Status, error) {
	if d.worktree == nil {
		return git.Status{}, nil
	}
	return d.worktree.Status()
}

func statusChar(code git.StatusCode) byte {
	switch code {
	case git.Unmodified:
		return '-'
	case git.Untracked:
		return 'N'
	default:
		return byte(code)
	}
}
