package output

import (
	"os"

	"golang.org/x/term"
)

// IsOutputPiped reports whether stdout is not a terminal.
func IsOutputPiped() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}
