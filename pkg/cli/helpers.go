package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const clearSequence = "\x1b[H\x1b[2J"

// ClearScreen wipes the terminal; output that is not a terminal is left alone.
func ClearScreen() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}

	_, _ = fmt.Fprint(Output, clearSequence)
}
