/*
Package textfile provides API helpers to read files of decimal digits and to
form digit rings from them.

Digit files are plain text files holding a single run of digits, usually
followed by a line terminator. Trailing whitespace is not part of the digit
sequence; whitespace anywhere else is reported as an invalid digit.

Files are read fragment by fragment by a prefetch goroutine, which broadcasts
fragments to the consumer and to optional observers. The API is synchronous:
every goroutine has terminated when a call returns.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'digitring'
func tracer() tracing.Trace {
	return tracing.Select("digitring")
}
