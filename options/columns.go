package options

import "github.com/skade/exa/file"

// SizeFormat says how to render a file's size in the details view.
type SizeFormat uint8

const (
	// DecimalBytes renders sizes with powers-of-1000 prefixes: "9.6k".
	DecimalBytes SizeFormat = iota

	// BinaryBytes renders sizes with powers-of-1024 prefixes: "9.4KiB".
	BinaryBytes

	// JustBytes renders the raw byte count with no prefix at all.
	JustBytes
)

func deduceSizeFormat(m matches) (SizeFormat, *Misfire) {
	binary := m.present("binary")
	bytes := m.present("bytes")

	switch {
	case binary && bytes:
		return DecimalBytes, Conflict("binary", "bytes")
	case binary:
		return BinaryBytes, nil
	case bytes:
		return JustBytes, nil
	}
	return DecimalBytes, nil
}

// TimeType is one of the three timestamps a file carries.
type TimeType uint8

const (
	TimeModified TimeType = iota
	TimeAccessed
	TimeCreated
)

// Header is the column title shown for this timestamp.
func (t TimeType) Header() string {
	switch t {
	case TimeAccessed:
		return "Date Accessed"
	case TimeCreated:
		return "Date Created"
	}
	return "Date Modified"
}

// TimeTypes records which timestamp columns to show. More than one can
// be on at once.
type TimeTypes struct {
	Accessed bool
	Modified bool
	Created  bool
}

func defaultTimeTypes() TimeTypes {
	return TimeTypes{Modified: true}
}

// deduceTimeTypes resolves the --time word against the three discrete
// timestamp flags. A word and a discrete flag together is a mistake,
// since the word overrides everything.
func deduceTimeTypes(m matches) (TimeTypes, *Misfire) {
	modified := m.present("modified")
	created := m.present("created")
	accessed := m.present("accessed")

	if m.present("time") {
		if modified {
			return TimeTypes{}, Useless("modified", true, "time")
		}
		if created {
			return TimeTypes{}, Useless("created", true, "time")
		}
		if accessed {
			return TimeTypes{}, Useless("accessed", true, "time")
		}

		switch word := m.value("time"); word {
		case "mod", "modified":
			return TimeTypes{Modified: true}, nil
		case "acc", "accessed":
			return TimeTypes{Accessed: true}, nil
		case "cr", "created":
			return TimeTypes{Created: true}, nil
		default:
			return TimeTypes{}, UnrecognizedOption("--time " + word)
		}
	}

	if modified || created || accessed {
		return TimeTypes{Accessed: accessed, Modified: modified, Created: created}, nil
	}
	return defaultTimeTypes(), nil
}

// Columns records which optional columns the details view should show.
// The mandatory ones (permissions, size, user) are always there.
type Columns struct {
	SizeFormat SizeFormat
	TimeTypes  TimeTypes

	Inode  bool
	Links  bool
	Blocks bool
	Group  bool
	Git    bool
}

func deduceColumns(m matches) (Columns, *Misfire) {
	sizeFormat, mis := deduceSizeFormat(m)
	if mis != nil {
		return Columns{}, mis
	}
	timeTypes, mis := deduceTimeTypes(m)
	if mis != nil {
		return Columns{}, mis
	}

	return Columns{
		SizeFormat: sizeFormat,
		TimeTypes:  timeTypes,
		Inode:      m.present("inode"),
		Links:      m.present("links"),
		Blocks:     m.present("blocks"),
		Group:      m.present("group"),
		Git:        m.caps.Git && m.present("git"),
	}, nil
}

// ShouldScanForGit reports whether listing these columns involves
// finding a git repository first.
func (c Columns) ShouldScanForGit() bool { return c.Git }

// ForDir turns the column selection into the concrete columns for one
// directory, in display order. The git column only materializes when
// the directory is actually inside a repository; dir may be nil for
// files listed outside any directory.
func (c Columns) ForDir(dir *file.Dir) []Column {
	var columns []Column

	if c.Inode {
		columns = append(columns, Column{Kind: Inode})
	}

	columns = append(columns, Column{Kind: Permissions})

	if c.Links {
		columns = append(columns, Column{Kind: HardLinks})
	}

	columns = append(columns, Column{Kind: FileSize, Size: c.SizeFormat})

	if c.Blocks {
		columns = append(columns, Column{Kind: Blocks})
	}

	columns = append(columns, Column{Kind: User})

	if c.Group {
		columns = append(columns, Column{Kind: Group})
	}

	if c.TimeTypes.Modified {
		columns = append(columns, Column{Kind: Timestamp, Time: TimeModified})
	}

	if c.TimeTypes.Created {
		columns = append(columns, Column{Kind: Timestamp, Time: TimeCreated})
	}

	if c.TimeTypes.Accessed {
		columns = append(columns, Column{Kind: Timestamp, Time: TimeAccessed})
	}

	if c.Git && dir != nil && dir.HasGitRepo() {
		columns = append(columns, Column{Kind: GitStatus})
	}

	return columns
}

// Column is one vertical slice of the details table.
type Column struct {
	Kind ColumnKind
	Size SizeFormat // set for FileSize
	Time TimeType   // set for Timestamp
}

type ColumnKind uint8

const (
	Permissions ColumnKind = iota
	FileSize
	Timestamp
	Blocks
	User
	Group
	HardLinks
	Inode
	GitStatus
)

// Header is the title this column gets in a header row.
func (c Column) Header() string {
	switch c.Kind {
	case FileSize:
		return "Size"
	case Timestamp:
		return c.Time.Header()
	case Blocks:
		return "Blocks"
	case User:
		return "User"
	case Group:
		return "Group"
	case HardLinks:
		return "Links"
	case Inode:
		return "inode"
	case GitStatus:
		return "Git"
	}
	return "Permissions"
}
