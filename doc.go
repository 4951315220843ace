/*
Package digitring sums digits of a decimal digit sequence which match their
successor, treating the sequence as a ring.

# Digit Rings

Given a sequence of decimal digits, every digit is compared to the digit
following it. The last digit is followed by the first one, closing the ring.
All digits which equal their successor are summed up:

	1122      →  3    (1 + 2)
	1111      →  4    (the last 1 wraps around to the first one)
	1234      →  0
	91212129  →  9    (only the wrapping 9 matches)

The ring may be restricted to a half-open range [start, end) of the sequence,
in which case the digit at end-1 is compared to the digit at start.

# Scanning and Streaming

SumMatching and SumMatchingRange operate on in-memory sequences (strings or
byte slices). They perform a single forward pass plus one extra comparison for
the wraparound pair, using constant stack and heap space, even for sequences of
hundreds of millions of digits.

For sequences arriving in fragments (files, pipes, network streams) an
Accumulator folds fragments into a digit-run summary (see package chunk) and
closes the ring at the very end. Both ways produce identical results.

# Errors

Ranges outside the sequence are reported as *RangeError, non-digits as
*InvalidDigitError carrying the offending position. Non-digits are never
skipped or coerced.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package digitring

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'digitring'
func tracer() tracing.Trace {
	return tracing.Select("digitring")
}

// DigitError is an error type for the digitring module.
type DigitError string

func (e DigitError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a range does not fit into
// a digit sequence.
const ErrIndexOutOfBounds = DigitError("index out of bounds")

// ErrNotADigit is flagged whenever a character in range is not one of '0'…'9'.
const ErrNotADigit = DigitError("not a decimal digit")

// ErrAccumulatorFailed is flagged for writes to an accumulator which already
// has seen an error.
const ErrAccumulatorFailed = DigitError("accumulator stopped after previous error")

// RangeError reports a range [Start, End) which is not a valid slice of a
// sequence of length Length. It matches ErrIndexOutOfBounds.
type RangeError struct {
	Start, End uint64
	Length     uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d) invalid for sequence of length %d: %s",
		e.Start, e.End, e.Length, ErrIndexOutOfBounds)
}

func (e *RangeError) Unwrap() error {
	return ErrIndexOutOfBounds
}

// InvalidDigitError reports a non-digit character at position Pos. It matches
// ErrNotADigit.
type InvalidDigitError struct {
	Pos  uint64
	Char byte
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("character %q at position %d: %s", e.Char, e.Pos, ErrNotADigit)
}

func (e *InvalidDigitError) Unwrap() error {
	return ErrNotADigit
}
