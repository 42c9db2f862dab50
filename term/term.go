// Package term asks the terminal how big it is.
package term

import (
	"os"

	xterm "golang.org/x/term"
)

// Dimensions returns the width and height of the terminal stdout is
// connected to. ok is false when stdout isn't a terminal, such as when
// output is being piped somewhere.
func Dimensions() (width, height int, ok bool) {
	w, h, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}
