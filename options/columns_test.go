package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(columns []Column) []ColumnKind {
	out := make([]ColumnKind, len(columns))
	for i, c := range columns {
		out[i] = c.Kind
	}
	return out
}

func TestColumnsMinimal(t *testing.T) {
	assert := assert.New(t)

	columns := Columns{TimeTypes: TimeTypes{Modified: true}}.ForDir(nil)
	assert.Equal([]ColumnKind{Permissions, FileSize, User, Timestamp}, kinds(columns))
}

func TestColumnsEverything(t *testing.T) {
	assert := assert.New(t)

	all := Columns{
		TimeTypes: TimeTypes{Modified: true, Created: true, Accessed: true},
		Inode:     true,
		Links:     true,
		Blocks:    true,
		Group:     true,
		Git:       true,
	}

	// Even with the git column asked for, no directory means no
	// repository, so it never materializes.
	columns := all.ForDir(nil)
	assert.Equal([]ColumnKind{
		Inode, Permissions, HardLinks, FileSize, Blocks, User, Group,
		Timestamp, Timestamp, Timestamp,
	}, kinds(columns))

	// The three timestamps come out modified, created, accessed.
	assert.Equal(TimeModified, columns[7].Time)
	assert.Equal(TimeCreated, columns[8].Time)
	assert.Equal(TimeAccessed, columns[9].Time)
}

func TestColumnsCarrySizeFormat(t *testing.T) {
	assert := assert.New(t)

	columns := Columns{SizeFormat: BinaryBytes}.ForDir(nil)
	for _, c := range columns {
		if c.Kind == FileSize {
			assert.Equal(BinaryBytes, c.Size)
			return
		}
	}
	t.Fatal("no size column found")
}

func TestColumnHeaders(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		column Column
		header string
	}{
		{Column{Kind: Permissions}, "Permissions"},
		{Column{Kind: FileSize}, "Size"},
		{Column{Kind: Blocks}, "Blocks"},
		{Column{Kind: User}, "User"},
		{Column{Kind: Group}, "Group"},
		{Column{Kind: HardLinks}, "Links"},
		{Column{Kind: Inode}, "inode"},
		{Column{Kind: GitStatus}, "Git"},
		{Column{Kind: Timestamp, Time: TimeModified}, "Date Modified"},
		{Column{Kind: Timestamp, Time: TimeAccessed}, "Date Accessed"},
		{Column{Kind: Timestamp, Time: TimeCreated}, "Date Created"},
	}

	for _, tc := range cases {
		assert.Equal(tc.header, tc.column.Header())
	}
}
