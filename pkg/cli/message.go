package cli

import (
	"fmt"
	"io"
	"os"
)

// Output receives every message; tests swap it for a buffer.
var Output io.Writer = os.Stdout

func writeln(colour, message string) {
	_, _ = fmt.Fprintln(Output, Paint(colour, message))
}

func Errorln(message string) {
	writeln(RedColour, message)
}

func Successln(message string) {
	writeln(GreenColour, message)
}

func Warningln(message string) {
	writeln(YellowColour, message)
}

func Magentaln(message string) {
	writeln(MagentaColour, message)
}

func Blueln(message string) {
	writeln(BlueColour, message)
}

func Cyanln(message string) {
	writeln(CyanColour, message)
}

func Grayln(message string) {
	writeln(GrayColour, message)
}
