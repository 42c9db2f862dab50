package options

import "strconv"

// DirAction is what to do when a directory turns up among the paths
// being listed: list its contents, recurse into it, or treat it like
// any other file.
type DirAction struct {
	kind    dirActionKind
	recurse RecurseOptions
}

type dirActionKind uint8

const (
	dirList dirActionKind = iota
	dirAsFile
	dirRecurse
)

// The cases have to be checked in this order: both conflicts first,
// then plain recursion, then tree (which also recurses), and only then
// the two non-recursive actions.
func deduceDirAction(m matches) (DirAction, *Misfire) {
	recurse := m.present("recurse")
	list := m.present("list-dirs")
	tree := m.present("tree")

	switch {
	case recurse && list:
		return DirAction{}, Conflict("recurse", "list-dirs")
	case list && tree:
		return DirAction{}, Conflict("tree", "list-dirs")
	case recurse && !list && !tree:
		opts, mis := deduceRecurseOptions(m, false)
		if mis != nil {
			return DirAction{}, mis
		}
		return DirAction{kind: dirRecurse, recurse: opts}, nil
	case tree:
		opts, mis := deduceRecurseOptions(m, true)
		if mis != nil {
			return DirAction{}, mis
		}
		return DirAction{kind: dirRecurse, recurse: opts}, nil
	case list:
		return DirAction{kind: dirAsFile}, nil
	}
	return DirAction{kind: dirList}, nil
}

// TreatDirsAsFiles reports whether directories should be displayed as
// plain entries rather than having their contents listed. Tree mode
// counts, because the tree itself does the entering.
func (a DirAction) TreatDirsAsFiles() bool {
	return a.kind == dirAsFile || (a.kind == dirRecurse && a.recurse.Tree)
}

// Recursion returns the recursion settings, if this action recurses.
func (a DirAction) Recursion() (RecurseOptions, bool) {
	if a.kind == dirRecurse {
		return a.recurse, true
	}
	return RecurseOptions{}, false
}

func (a DirAction) recursion() *RecurseOptions {
	if a.kind == dirRecurse {
		opts := a.recurse
		return &opts
	}
	return nil
}

// RecurseOptions controls how deep recursion goes, and whether it is
// rendered as a tree or as one flat block per directory.
type RecurseOptions struct {
	Tree bool

	maxDepth uint64
	depthSet bool
}

func deduceRecurseOptions(m matches, tree bool) (RecurseOptions, *Misfire) {
	opts := RecurseOptions{Tree: tree}

	if m.present("level") {
		depth, err := strconv.ParseUint(m.value("level"), 10, 64)
		if err != nil {
			return RecurseOptions{}, FailedParse(err)
		}
		opts.maxDepth = depth
		opts.depthSet = true
	}

	return opts, nil
}

// MaxDepth returns the recursion bound, if one was given.
func (o RecurseOptions) MaxDepth() (uint64, bool) {
	return o.maxDepth, o.depthSet
}

// IsTooDeep reports whether a directory at the given depth is past the
// bound. The roots being listed are at depth 0.
func (o RecurseOptions) IsTooDeep(depth int) bool {
	return o.depthSet && o.maxDepth <= uint64(depth)
}
