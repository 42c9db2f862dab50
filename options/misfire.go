package options

import "fmt"

// Version of the program, as reported by --version.
const Version = "0.4.1"

// Misfire is anything that can stop the program before a single file
// gets listed: a bad combination of options, or a request for the help
// or version screen. Help isn't strictly an error, which is why this
// type isn't called Error.
type Misfire struct {
	kind misfireKind
	text string
	err  error
}

type misfireKind uint8

const (
	misfireError misfireKind = iota
	misfireHelp
	misfireVersion
)

// Error returns exactly the text to show the user, with no prefix.
func (m *Misfire) Error() string { return m.text }

// Unwrap exposes the underlying cause for misfires that carry one,
// such as a number that failed to parse.
func (m *Misfire) Unwrap() error { return m.err }

// IsError distinguishes genuine mistakes from the help and version
// screens, which the user asked for on purpose. Errors go to stderr,
// the screens to stdout.
func (m *Misfire) IsError() bool { return m.kind == misfireError }

// ExitStatus is the code the process should exit with when options
// parsing ends here: 2 for help, 3 for everything else.
func (m *Misfire) ExitStatus() int {
	if m.kind == misfireHelp {
		return 2
	}
	return 3
}

// Conflict reports two options that cannot be used together.
func Conflict(flag, other string) *Misfire {
	return &Misfire{text: fmt.Sprintf("Option --%s conflicts with option %s.", flag, other)}
}

// Useless reports an option that does nothing when another option
// either is (present) or isn't present.
func Useless(flag string, present bool, other string) *Misfire {
	if present {
		return &Misfire{text: fmt.Sprintf("Option --%s is useless given option --%s.", flag, other)}
	}
	return &Misfire{text: fmt.Sprintf("Option --%s is useless without option --%s.", flag, other)}
}

// Useless2 reports an option that does nothing unless one of two other
// options is present.
func Useless2(flag, first, second string) *Misfire {
	return &Misfire{text: fmt.Sprintf("Option --%s is useless without options --%s or --%s.", flag, first, second)}
}

// FailedParse reports a numeric argument that would not parse.
func FailedParse(err error) *Misfire {
	return &Misfire{text: fmt.Sprintf("Failed to parse number: %s", err), err: err}
}

// InvalidOptions wraps an error straight out of the flag parser.
func InvalidOptions(err error) *Misfire {
	return &Misfire{text: err.Error(), err: err}
}

// UnrecognizedOption reports an option whose argument wasn't one of
// the words it accepts, such as "--sort xyz".
func UnrecognizedOption(option string) *Misfire {
	return &Misfire{text: fmt.Sprintf("Unrecognized option: '%s'", option)}
}

func helpMisfire(usage string) *Misfire {
	return &Misfire{kind: misfireHelp, text: usage}
}

func versionMisfire() *Misfire {
	return &Misfire{kind: misfireVersion, text: "exa " + Version}
}
