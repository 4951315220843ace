/*
Command digitring sums the digits of a digit file which match their circular
successor.

Usage:

	digitring sum [--start N] [--end N] [--frag-size N] FILE
	digitring bench [--size N] [--seed S]

Global flag --trace sets the trace level (Error, Info, Debug). Tracing may
also be configured in a NestedText file, e.g. ~/.config/digitring/config.nt:

	tracelevel:
	  root: Info
	  digitring: Debug

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "digitring: %v\n", err)
		os.Exit(1)
	}
}
