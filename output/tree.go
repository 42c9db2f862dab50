package output

// treePrefixes returns the connector prefix for an entry's own row and
// the prefix its children inherit, one nesting level down from prefix.
func treePrefixes(prefix string, last bool) (row, child string) {
	connector := "├── "
	childPart := "│   "
	if last {
		connector = "└── "
		childPart = "    "
	}
	return prefix + connector, prefix + childPart
}
