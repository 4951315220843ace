package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// report prints a labelled value, highlighted if out is a terminal.
func report(out io.Writer, label string, value interface{}) {
	key := color.New(color.FgCyan)
	val := color.New(color.FgGreen, color.Bold)
	if !isTerminal(out) {
		key.DisableColor()
		val.DisableColor()
	}
	key.Fprintf(out, "%-9s", label+":")
	val.Fprintln(out, fmt.Sprint(value))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
