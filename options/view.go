package options

// ColourMode says whether output gets coloured at all. Colour is for
// terminals; piping output into a file gets the plain mode.
type ColourMode uint8

const (
	Plain ColourMode = iota
	Colourful
)

// View is how the files get displayed: a details table, a grid, a grid
// of details tables, or one name per line.
type View interface {
	isView()
}

// Details is the --long view: one file per row, metadata in columns.
// It also serves as the tree view, which is a details table with no
// columns.
type Details struct {
	// Columns to show. nil means no metadata at all, which is what the
	// tree view uses.
	Columns *Columns

	// Header adds a title row above the table.
	Header bool

	// Recurse is set when subdirectories get entered, either tree-style
	// or block-by-block.
	Recurse *RecurseOptions

	// Filter applies to each directory's contents as it gets listed.
	Filter FileFilter

	// Xattr adds a row of extended attributes under each file.
	Xattr bool

	Colours ColourMode
}

// Grid is the default view: names flowed into as many columns as fit
// the terminal.
type Grid struct {
	// Across fills the grid left-to-right instead of downwards.
	Across bool

	// Width of the terminal in columns.
	Width int

	Colours ColourMode
}

// GridDetails is --long --grid: details tables side by side.
type GridDetails struct {
	Grid    Grid
	Details Details
}

// Lines is one file name per line: the view for --oneline, and the
// fallback when stdout isn't a terminal.
type Lines struct {
	Colours ColourMode
}

func (Details) isView()     {}
func (Grid) isView()        {}
func (GridDetails) isView() {}
func (Lines) isView()       {}

// deduceView picks the view from the flags and the already-resolved
// columns. The --long flag splits the world in two: with it, the details
// options all mean something; without it, any of them being present is a
// mistake worth telling the user about rather than silently ignoring.
func deduceView(m matches, filter FileFilter, action DirAction, columns Columns) (View, *Misfire) {
	if m.present("long") {
		details, mis := deduceLongView(m, filter, action, columns)
		if mis != nil {
			return nil, mis
		}

		if m.present("grid") {
			base, mis := deduceBaseView(m, filter, action)
			if mis != nil {
				return nil, mis
			}
			if grid, ok := base.(Grid); ok {
				return GridDetails{Grid: grid, Details: details}, nil
			}
			// No terminal, or tree mode: the base view wins and the
			// details get dropped.
			return base, nil
		}

		return details, nil
	}

	if mis := scanLongOnlyOptions(m); mis != nil {
		return nil, mis
	}

	return deduceBaseView(m, filter, action)
}

// deduceLongView builds the details view for --long.
func deduceLongView(m matches, filter FileFilter, action DirAction, columns Columns) (Details, *Misfire) {
	if m.present("across") && !m.present("grid") {
		return Details{}, Useless("across", true, "long")
	}
	if m.present("oneline") {
		return Details{}, Useless("oneline", true, "long")
	}

	colours := Plain
	if m.caps.TerminalWidth > 0 {
		colours = Colourful
	}

	return Details{
		Columns: &columns,
		Header:  m.present("header"),
		Recurse: action.recursion(),
		Filter:  filter,
		Xattr:   m.caps.Xattr && m.present("extended"),
		Colours: colours,
	}, nil
}

// scanLongOnlyOptions catches options that only mean something in
// --long mode being used without it.
func scanLongOnlyOptions(m matches) *Misfire {
	for _, name := range []string{"binary", "bytes", "inode", "links", "header", "blocks", "time", "group"} {
		if m.present(name) {
			return Useless(name, false, "long")
		}
	}

	if m.caps.Git && m.present("git") {
		return Useless("git", false, "long")
	}
	if m.present("level") && !m.present("recurse") && !m.present("tree") {
		return Useless2("level", "recurse", "tree")
	}
	if m.caps.Xattr && m.present("extended") {
		return Useless("extended", false, "long")
	}
	return nil
}

// deduceBaseView picks between the grid, lines, and tree views. With no
// terminal width to flow a grid into — stdout connected to a file, say —
// everything falls back to one name per line.
func deduceBaseView(m matches, filter FileFilter, action DirAction) (View, *Misfire) {
	if m.caps.TerminalWidth <= 0 {
		return Lines{Colours: Plain}, nil
	}

	if m.present("oneline") {
		if m.present("across") {
			return nil, Useless("across", true, "oneline")
		}
		return Lines{Colours: Colourful}, nil
	}

	if m.present("tree") {
		return Details{
			Columns: nil,
			Header:  false,
			Recurse: action.recursion(),
			Filter:  filter,
			Xattr:   false,
			Colours: Colourful,
		}, nil
	}

	return Grid{
		Across:  m.present("across"),
		Width:   m.caps.TerminalWidth,
		Colours: Colourful,
	}, nil
}
