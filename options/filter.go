package options

import (
	"cmp"
	"slices"

	"github.com/maruel/natural"

	"github.com/skade/exa/file"
)

// FileFilter decides which files get listed and in what order. It is
// deduced once from the command line and then applied to every
// directory's contents, so recursing into a subdirectory sorts and
// filters it the same way as its parent.
type FileFilter struct {
	ListDirsFirst  bool
	Reverse        bool
	ShowInvisibles bool
	SortField      SortField
}

// FilterFiles drops the files that shouldn't be listed, returning the
// survivors in their original order. The slice is filtered in place.
func (f FileFilter) FilterFiles(files []*file.File) []*file.File {
	if f.ShowInvisibles {
		return files
	}
	kept := files[:0]
	for _, fl := range files {
		if !fl.IsDotfile() {
			kept = append(kept, fl)
		}
	}
	return kept
}

// SortFiles sorts the slice in place: first by the sort field, then
// reversed if asked, then with directories grouped at the front. The
// grouping pass runs last and is stable, so directories keep their
// sorted order among themselves but always beat the reversal.
func (f FileFilter) SortFiles(files []*file.File) {
	slices.SortStableFunc(files, f.Compare)

	if f.Reverse {
		slices.Reverse(files)
	}

	if f.ListDirsFirst {
		// Relies on the sort being stable.
		slices.SortStableFunc(files, func(a, b *file.File) int {
			return compareBool(b.IsDirectory(), a.IsDirectory())
		})
	}
}

// Compare orders two files by the filter's sort field. Ties are left
// alone, which keeps the overall ordering stable.
func (f FileFilter) Compare(a, b *file.File) int {
	switch f.SortField {
	case SortUnsorted:
		return 0
	case SortName:
		return compareNatural(a.Name, b.Name)
	case SortSize:
		return cmp.Compare(a.Metadata.Size, b.Metadata.Size)
	case SortInode:
		return cmp.Compare(a.Metadata.Inode, b.Metadata.Inode)
	case SortModified:
		return cmp.Compare(a.Metadata.Modified, b.Metadata.Modified)
	case SortAccessed:
		return cmp.Compare(a.Metadata.Accessed, b.Metadata.Accessed)
	case SortCreated:
		return cmp.Compare(a.Metadata.Created, b.Metadata.Created)
	case SortExtension:
		if c := cmp.Compare(a.Ext, b.Ext); c != 0 {
			return c
		}
		return compareNatural(a.Name, b.Name)
	}
	return 0
}

// compareNatural orders strings so that "file10" comes after "file2".
func compareNatural(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

// SortField is the user-supplied field to sort by.
type SortField uint8

const (
	SortName SortField = iota // the default
	SortUnsorted
	SortExtension
	SortSize
	SortInode
	SortModified
	SortAccessed
	SortCreated
)

// sortFieldFromWord finds which field to use based on a user-supplied
// word. Each field has a long name and most have a short alias.
func sortFieldFromWord(word string) (SortField, *Misfire) {
	switch word {
	case "name", "filename":
		return SortName, nil
	case "size", "filesize":
		return SortSize, nil
	case "ext", "extension":
		return SortExtension, nil
	case "mod", "modified":
		return SortModified, nil
	case "acc", "accessed":
		return SortAccessed, nil
	case "cr", "created":
		return SortCreated, nil
	case "none":
		return SortUnsorted, nil
	case "inode":
		return SortInode, nil
	}
	return SortName, UnrecognizedOption("--sort " + word)
}
