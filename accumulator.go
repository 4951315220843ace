package digitring

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/digitring/chunk"
)

// Accumulator forms a digit ring from a sequence delivered in fragments.
//
// Accumulator implements io.Writer. Every fragment written is cut into chunks
// and folded into a running digit-run summary; no digits are retained. The
// ring is closed when Sum is called, so writing more digits afterwards
// continues the sequence:
//
//	acc := NewAccumulator()
//	acc.Write([]byte("11"))
//	acc.Write([]byte("22"))
//	sum, err := acc.Sum()    // 3, as for "1122"
//
// The first non-digit stops accumulation. Its position within the overall
// stream is reported as *InvalidDigitError, by Write as well as by Sum.
//
// An Accumulator is not safe for concurrent use.
type Accumulator struct {
	run chunk.Summary
	pos uint64 // bytes consumed so far
	err error
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{run: chunk.Monoid{}.Zero()}
}

// Write folds a fragment of digits into the accumulator.
func (acc *Accumulator) Write(p []byte) (int, error) {
	if acc.err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAccumulatorFailed, acc.err)
	}
	m := chunk.Monoid{}
	for off := 0; off < len(p); off += chunk.MaxBase {
		end := min(off+chunk.MaxBase, len(p))
		c, err := chunk.NewBytes(p[off:end])
		if err != nil {
			var nd *chunk.NotADigitError
			if !errors.As(err, &nd) {
				acc.err = err
				return off, err
			}
			n := off + nd.Offset
			acc.pos += uint64(n)
			acc.err = &InvalidDigitError{Pos: acc.pos, Char: nd.Char}
			tracer().Debugf("digit accumulator stopped: %v", acc.err)
			return n, acc.err
		}
		acc.run = m.Add(acc.run, c.Summary())
	}
	acc.pos += uint64(len(p))
	return len(p), nil
}

// Len returns the number of digits accumulated so far.
func (acc *Accumulator) Len() uint64 {
	return acc.run.Digits
}

// Summary returns the digit-run summary of all digits accumulated so far.
func (acc *Accumulator) Summary() chunk.Summary {
	return acc.run
}

// Sum closes the ring and returns the sum of all digits matching their
// circular successor. If accumulation has been stopped by an error, this
// error is returned.
func (acc *Accumulator) Sum() (uint64, error) {
	if acc.err != nil {
		return 0, acc.err
	}
	return acc.run.Circular(), nil
}

// Reset clears the accumulator, including any error.
func (acc *Accumulator) Reset() {
	*acc = Accumulator{run: chunk.Monoid{}.Zero()}
}

// SumReader reads r until EOF and returns the sum of all digits matching
// their circular successor. It is equivalent to SumMatching on the complete
// content of r, but needs constant space only.
func SumReader(r io.Reader) (uint64, error) {
	acc := NewAccumulator()
	n, err := io.Copy(acc, r)
	tracer().Debugf("digit accumulator consumed %d bytes", n)
	if err != nil {
		return 0, err
	}
	return acc.Sum()
}
